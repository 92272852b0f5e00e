package appointmenterrors

import (
	"net/http"

	"clarityflow/internal/shared/apperror"
)

var (
	ErrAppointmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appointment not found",
		http.StatusNotFound,
	)
)
