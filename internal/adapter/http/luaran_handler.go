package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	luaranUC "lppm-backend/internal/usecase/luaran"
)

type createLuaranRequest struct {
	Jenis     string `json:"jenis" validate:"required"`
	Judul     string `json:"judul" validate:"required,max=255"`
	Deskripsi string `json:"deskripsi"`
	FilePath  string `json:"file_path" validate:"required"`
}

func (h *Handler) CreateLuaran(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req createLuaranRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.luaran.Create(c.Request().Context(), luaranUC.CreateInput{
		Actor:      actor,
		ProposalID: c.Param("id"),
		Jenis:      req.Jenis,
		Judul:      req.Judul,
		Deskripsi:  req.Deskripsi,
		FilePath:   req.FilePath,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type verifyLuaranRequest struct {
	Approve bool   `json:"approve"`
	Catatan string `json:"catatan"`
}

func (h *Handler) VerifyLuaran(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req verifyLuaranRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	out, err := h.luaran.Verify(c.Request().Context(), luaranUC.VerifyInput{
		Actor:    actor,
		LuaranID: c.Param("luaranId"),
		Approve:  req.Approve,
		Catatan:  req.Catatan,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteLuaran(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	l, err := h.luaran.Delete(c.Request().Context(), actor, c.Param("luaranId"))
	if err != nil {
		return respondErr(c, err)
	}
	// best effort, the record is already gone
	_ = h.files.Remove(l.FilePath)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListLuaran(c echo.Context) error {
	out, err := h.luaran.ListByProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
