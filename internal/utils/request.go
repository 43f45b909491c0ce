package utils

import (
	"errors"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the body into dest and validates it, writing the
// error response itself. It reports whether the handler may continue.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data"))

		return false
	}

	return true
}
