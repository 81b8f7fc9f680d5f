package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/domain/fault"
)

// respondErr maps a usecase error to an HTTP status via its fault kind.
// Server faults never leak their message.
func respondErr(c echo.Context, err error) error {
	switch fault.KindOf(err) {
	case fault.KindUnauthorized:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case fault.KindForbidden:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case fault.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case fault.KindValidation:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case fault.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func respondBindErr(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func respondValidationErr(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
