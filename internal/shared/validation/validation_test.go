package validation_test

import (
	"errors"
	"net/http"
	"testing"

	"clarityflow/internal/shared/apperror"
	"clarityflow/internal/shared/validation"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title  string `json:"title" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof='To Do' 'Done'"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, validation.Struct(sampleRequest{Title: "Laporan", Status: "Done"}))
}

func TestStructReportsOffendingFields(t *testing.T) {
	err := validation.Struct(sampleRequest{})

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "Title is required")

	details, ok := appErr.Details.(map[string]any)
	assert.True(t, ok)
	// Nama field mengikuti tag json, bukan nama field Go.
	assert.Contains(t, details["fields"], "title")
}

func TestStructNonStructInput(t *testing.T) {
	// Nilai yang bukan struct tetap menghasilkan AppError 400, dengan
	// error asli validator terbungkus di dalamnya.
	err := validation.Struct(42)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Error(t, appErr.Unwrap())
}
