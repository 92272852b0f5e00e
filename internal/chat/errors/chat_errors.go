package chaterrors

import (
	"net/http"

	"clarityflow/internal/shared/apperror"
)

var (
	ErrRemoteService = apperror.New(
		apperror.CodeServiceUnavailable,
		"Remote reasoning service request failed",
		http.StatusServiceUnavailable,
	)
)
