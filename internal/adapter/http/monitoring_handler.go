package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	monitoringUC "lppm-backend/internal/usecase/monitoring"
)

type uploadKemajuanRequest struct {
	Laporan    string `json:"laporan"`
	FilePath   string `json:"file_path" validate:"required"`
	Persentase int    `json:"persentase" validate:"gte=0,lte=100"`
}

func (h *Handler) UploadKemajuan(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req uploadKemajuanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.monitoring.UploadKemajuan(c.Request().Context(), monitoringUC.UploadKemajuanInput{
		Actor:      actor,
		ProposalID: c.Param("id"),
		Laporan:    req.Laporan,
		FilePath:   req.FilePath,
		Persentase: req.Persentase,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type uploadAkhirRequest struct {
	Laporan  string `json:"laporan"`
	FilePath string `json:"file_path" validate:"required"`
}

func (h *Handler) UploadAkhir(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req uploadAkhirRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.monitoring.UploadAkhir(c.Request().Context(), monitoringUC.UploadAkhirInput{
		Actor:      actor,
		ProposalID: c.Param("id"),
		Laporan:    req.Laporan,
		FilePath:   req.FilePath,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type verifyLaporanRequest struct {
	Approve bool   `json:"approve"`
	Catatan string `json:"catatan"`
}

func (h *Handler) VerifyKemajuan(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req verifyLaporanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	out, err := h.monitoring.VerifyKemajuan(c.Request().Context(), monitoringUC.VerifyInput{
		Actor:      actor,
		ProposalID: c.Param("id"),
		Approve:    req.Approve,
		Catatan:    req.Catatan,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) VerifyAkhir(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req verifyLaporanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	out, err := h.monitoring.VerifyAkhir(c.Request().Context(), monitoringUC.VerifyInput{
		Actor:      actor,
		ProposalID: c.Param("id"),
		Approve:    req.Approve,
		Catatan:    req.Catatan,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetMonitoring(c echo.Context) error {
	out, err := h.monitoring.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
