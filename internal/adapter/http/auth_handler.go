package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authUC "lppm-backend/internal/usecase/auth"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.auth.Login(c.Request().Context(), authUC.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
