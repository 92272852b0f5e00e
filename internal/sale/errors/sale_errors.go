package saleerrors

import (
	"net/http"

	"clarityflow/internal/shared/apperror"
)

var (
	ErrSaleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sale not found",
		http.StatusNotFound,
	)
)
