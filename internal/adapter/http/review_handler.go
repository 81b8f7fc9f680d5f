package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	reviewDomain "lppm-backend/internal/domain/review"
	reviewUC "lppm-backend/internal/usecase/review"
)

type submitReviewRequest struct {
	NilaiKriteria1 int    `json:"nilai_kriteria1" validate:"nilai"`
	NilaiKriteria2 int    `json:"nilai_kriteria2" validate:"nilai"`
	NilaiKriteria3 int    `json:"nilai_kriteria3" validate:"nilai"`
	NilaiKriteria4 int    `json:"nilai_kriteria4" validate:"nilai"`
	Rekomendasi    string `json:"rekomendasi" validate:"required,oneof=DITERIMA REVISI DITOLAK"`
	Catatan        string `json:"catatan"`
	FilePath       string `json:"file_path"`
}

func (h *Handler) SubmitReview(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	out, err := h.review.Submit(c.Request().Context(), reviewUC.SubmitInput{
		Actor:          actor,
		ProposalID:     c.Param("id"),
		NilaiKriteria1: req.NilaiKriteria1,
		NilaiKriteria2: req.NilaiKriteria2,
		NilaiKriteria3: req.NilaiKriteria3,
		NilaiKriteria4: req.NilaiKriteria4,
		Rekomendasi:    reviewDomain.Rekomendasi(req.Rekomendasi),
		Catatan:        req.Catatan,
		FilePath:       req.FilePath,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) ReviewSummary(c echo.Context) error {
	s, err := h.review.Summary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) ListReviews(c echo.Context) error {
	out, err := h.review.ListByProposal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
