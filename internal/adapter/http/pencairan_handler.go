package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
)

type verifyPencairanRequest struct {
	Approve    bool   `json:"approve"`
	BuktiPath  string `json:"bukti_path"`
	Keterangan string `json:"keterangan"`
}

func (h *Handler) VerifyPencairan(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req verifyPencairanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	out, err := h.pencairan.Verify(c.Request().Context(), pencairanUC.VerifyInput{
		Actor:       actor,
		PencairanID: c.Param("pencairanId"),
		Approve:     req.Approve,
		BuktiPath:   req.BuktiPath,
		Keterangan:  req.Keterangan,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListPencairan(c echo.Context) error {
	out, err := h.pencairan.ListByProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) RecheckPencairan(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	n, err := h.pencairan.Recheck(c.Request().Context(), actor)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"created": n})
}
