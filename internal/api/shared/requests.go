package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// MaxRequestBodyBytes caps the size of JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("date", validateDate); err != nil {
		panic(fmt.Sprintf("failed to register date validation: %v", err))
	}

	return v
}

// validateDate accepts strings in domain.DueDateLayout.
func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DueDateLayout, fl.Field().String())
	return err == nil
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	body := http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package and
// translates the first failure into a domain error:
//
//   - required becomes a MissingFieldError
//   - date becomes a FormatError
//   - everything else becomes a ValidationError
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return TranslateValidationError(err)
	}
	return nil
}

// TranslateValidationError converts validator errors into domain errors.
// Errors of any other type are returned unchanged.
func TranslateValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return domain.NewMissingFieldError(field)
	case "date":
		return domain.NewFormatError(field, fmt.Sprint(fe.Value()), domain.DueDateFormat)
	case "min":
		if fe.Param() == "1" {
			return domain.NewValidationError(field, "cannot be empty", domain.ErrValidation)
		}
		return domain.NewValidationError(field, fmt.Sprintf("must be at least %s characters", fe.Param()), domain.ErrValidation)
	case "max":
		return domain.NewValidationError(field, fmt.Sprintf("must be at most %s characters", fe.Param()), domain.ErrValidation)
	case "oneof":
		sentinel := domain.ErrValidation
		if field == domain.FieldStatus {
			sentinel = domain.ErrInvalidTaskStatus
		}
		return domain.NewValidationError(
			field,
			"must be one of "+strings.Join(strings.Fields(fe.Param()), ", "),
			sentinel,
		)
	default:
		return domain.NewValidationError(field, "is invalid", domain.ErrValidation)
	}
}
