package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	app_errors "chatbuilder/backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	dtoValidator     *validator.Validate
	dtoValidatorOnce sync.Once
)

// requestValidator returns the shared validator. Field errors are reported
// under the DTO's JSON names (title, enabled_models, price_id...) so clients
// can map them back to what they sent.
func requestValidator() *validator.Validate {
	dtoValidatorOnce.Do(func() {
		dtoValidator = validator.New(validator.WithRequiredStructEnabled())
		dtoValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return dtoValidator
}

// validateRequest runs the `validate` tags of a request DTO. Failures come
// back as ErrValidation listing every rejected field, e.g.
// "validation failed: enabled_models[2] failed on 'max'".
func validateRequest(payload interface{}) error {
	err := requestValidator().Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: could not validate request: %v", app_errors.ErrValidation, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Namespace is "SetEnabledModelsRequest.enabled_models[2]"; drop the type.
		_, field, found := strings.Cut(fe.Namespace(), ".")
		if !found {
			field = fe.Field()
		}
		problems = append(problems, fmt.Sprintf("%s failed on '%s'", field, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(problems, "; "))
}
