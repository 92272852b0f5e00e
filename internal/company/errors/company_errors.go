package companyerrors

import (
	"net/http"

	"clarityflow/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
)
