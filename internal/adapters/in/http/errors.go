package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"delivery-order/internal/generated/servers"
	"delivery-order/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorResponse maps an error to its status code and body. Domain
// validation failures are client errors, missing objects are 404, and
// everything else is hidden behind a generic 500 message.
func errorResponse(err error) servers.Error {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErr):
		return servers.Error{Code: http.StatusBadRequest, Message: validationMessage(validationErr)}
	case errors.As(err, &httpErr):
		return servers.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return servers.Error{Code: http.StatusBadRequest, Message: strings.ReplaceAll(err.Error(), "\n", "; ")}
	default:
		return servers.Error{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
