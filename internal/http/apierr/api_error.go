package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/trananhhq/shopbill/pkg/validator"
	"github.com/trananhhq/shopbill/pkg/zerror"
)

// ErrorResponse is the JSON error body. Every failure, whatever the layer it
// came from, is reported as {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Error:      zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = fmt.Sprintf("%s: %s", fe.Field(), validator.ValidationErrorMessage(fe))
		}

		return ErrorResponse{
			Error:      strings.Join(details, "; "),
			StatusCode: http.StatusBadRequest,
		}
	}

	// Unclassified errors surface the underlying message to the caller.
	return ErrorResponse{
		Error:      err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
