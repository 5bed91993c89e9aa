package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the error taxonomy to an HTTP response:
//
//	invalid input        -> 400
//	access denied        -> 403
//	not found            -> 404
//	business rule,
//	illegal transition,
//	version conflict     -> 409
//	collaborator down    -> 503
//
// Anything unclassified is a 500 with a generic message; internals never
// leak to callers.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errMissingActor):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, queries.ErrOrderAccessDenied):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrBusinessRuleViolated),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrDependencyUnavailable):
		code = http.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
