package http

import (
	"errors"
	"net/http"

	"catalog/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err; internal errors are logged and hidden from the client.
func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err,
			"method", ctx.Request().Method,
			"route", ctx.Path(),
		)
		return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message, Details: []string{err.Error()}})
}

func (s *Server) badRequest(ctx echo.Context, message string, details ...string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
		Details: details,
	})
}

// bindAndValidate decodes the JSON body into req and runs the validator tags.
// It writes the 400 response itself and reports whether the caller may go on.
func (s *Server) bindAndValidate(ctx echo.Context, req any) (bool, error) {
	if err := ctx.Bind(req); err != nil {
		return false, s.badRequest(ctx, "Invalid request body")
	}

	if err := s.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, s.badRequest(ctx, "Validation failed", err.Error())
		}
		details := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, e.Error())
		}
		return false, s.badRequest(ctx, "Validation failed", details...)
	}

	return true, nil
}
