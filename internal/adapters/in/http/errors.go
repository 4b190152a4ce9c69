package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errMissingCustomerID is returned when a customer endpoint is called
// without the identity header.
var errMissingCustomerID = errors.New("X-Customer-ID header is required")

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// jsonError renders a JSON error response with the given status.
func jsonError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

// mapDomainError translates application errors into a JSON error response.
// The errs sentinels decide the status; unclassified errors become opaque
// 500s so internal details never leak to clients.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidState):
		return jsonError(ctx, http.StatusConflict, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "internal error")
	}
}
