package validation

import (
	"net/http"
	"reflect"
	"strings"

	"clarityflow/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Pakai nama field dari tag json (contoh: `json:"dueDate"`)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// Struct menjalankan validasi tag pada DTO dan memetakan hasilnya ke
// AppError INVALID_INPUT yang menyebut field yang bermasalah. Dipanggil di
// service layer supaya jalur non-HTTP (chat dispatcher) ikut tervalidasi.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError dan sejenisnya: bukan kesalahan input,
		// tapi DTO yang tidak bisa divalidasi sama sekali.
		return apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid request payload", http.StatusBadRequest)
	}

	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		field := formatFieldName(e.Field())
		fields = append(fields, e.Field())
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, field+" must be one of: "+strings.ReplaceAll(e.Param(), " ", ", "))
		case "gte", "min":
			messages = append(messages, field+" must be at least "+e.Param())
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return apperror.New(
		apperror.CodeInvalidInput,
		strings.Join(messages, "; "),
		http.StatusBadRequest,
	).WithDetails(map[string]any{"fields": fields})
}
