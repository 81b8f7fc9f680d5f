package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	kontrakUC "lppm-backend/internal/usecase/kontrak"
)

type signKontrakRequest struct {
	FileKontrak string `json:"file_kontrak" validate:"required"`
	FileSK      string `json:"file_sk" validate:"required"`
}

func (h *Handler) SignKontrak(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req signKontrakRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.kontrak.Sign(c.Request().Context(), kontrakUC.SignInput{
		Actor:       actor,
		ProposalID:  c.Param("id"),
		FileKontrak: req.FileKontrak,
		FileSK:      req.FileSK,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetKontrak(c echo.Context) error {
	out, err := h.kontrak.GetByProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
