package taskerrors

import (
	"net/http"

	"clarityflow/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
)
