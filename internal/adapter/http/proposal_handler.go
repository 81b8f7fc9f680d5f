package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/adapter/middleware"
	proposalDomain "lppm-backend/internal/domain/proposal"
	proposalUC "lppm-backend/internal/usecase/proposal"
)

type createProposalRequest struct {
	Judul        string  `json:"judul" validate:"required,max=500"`
	Abstrak      string  `json:"abstrak" validate:"max=500"`
	PeriodeID    string  `json:"periode_id" validate:"required,hex32"`
	SkemaID      string  `json:"skema_id" validate:"omitempty,hex32"`
	DanaDiajukan float64 `json:"dana_diajukan" validate:"gte=0,intlike"`
	FilePath     string  `json:"file_path"`
}

func (h *Handler) CreateProposal(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req createProposalRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	dto, err := h.proposal.CreateDraft(c.Request().Context(), actor, proposalUC.CreateInput{
		Judul:        req.Judul,
		Abstrak:      req.Abstrak,
		PeriodeID:    req.PeriodeID,
		SkemaID:      req.SkemaID,
		DanaDiajukan: req.DanaDiajukan,
		FilePath:     req.FilePath,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) GetProposal(c echo.Context) error {
	dto, err := h.proposal.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateProposalRequest struct {
	Judul        string  `json:"judul" validate:"required,max=500"`
	Abstrak      string  `json:"abstrak" validate:"max=500"`
	SkemaID      string  `json:"skema_id" validate:"omitempty,hex32"`
	DanaDiajukan float64 `json:"dana_diajukan" validate:"gte=0,intlike"`
	FilePath     string  `json:"file_path"`
}

func (h *Handler) UpdateProposal(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req updateProposalRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	dto, err := h.proposal.UpdateDraft(c.Request().Context(), actor, c.Param("id"), proposalUC.UpdateInput{
		Judul:        req.Judul,
		Abstrak:      req.Abstrak,
		SkemaID:      req.SkemaID,
		DanaDiajukan: req.DanaDiajukan,
		FilePath:     req.FilePath,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type addMemberRequest struct {
	Tipe     string `json:"tipe" validate:"required,oneof=DOSEN MAHASISWA"`
	PersonID string `json:"person_id" validate:"required,hex32"`
}

func (h *Handler) AddMember(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	err := h.proposal.AddMember(c.Request().Context(), actor, c.Param("id"), proposalUC.AddMemberInput{
		Tipe:     proposalDomain.MemberType(req.Tipe),
		PersonID: req.PersonID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) RemoveMember(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	err := h.proposal.RemoveMember(c.Request().Context(), actor, c.Param("id"), c.Param("memberId"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SubmitProposal(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	dto, err := h.proposal.Submit(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type adminCheckRequest struct {
	Status    string                      `json:"status" validate:"required,oneof=LOLOS TIDAK_LOLOS"`
	Catatan   string                      `json:"catatan"`
	Checklist proposalDomain.Checklist    `json:"checklist"`
}

func (h *Handler) AdminCheck(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req adminCheckRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	err := h.proposal.AdminCheck(c.Request().Context(), actor, c.Param("id"), proposalUC.AdminCheckInput{
		Status:    proposalDomain.StatusAdministrasi(req.Status),
		Catatan:   req.Catatan,
		Checklist: req.Checklist,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type assignReviewersRequest struct {
	ReviewerIDs []string `json:"reviewer_ids" validate:"required,len=2,dive,hex32"`
}

func (h *Handler) AssignReviewers(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req assignReviewersRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	err := h.proposal.AssignReviewers(c.Request().Context(), actor, c.Param("id"), proposalUC.AssignReviewersInput{
		ReviewerIDs: req.ReviewerIDs,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

type approveRequest struct {
	Catatan       string  `json:"catatan"`
	DanaDisetujui float64 `json:"dana_disetujui" validate:"gte=0,intlike"`
}

func (h *Handler) ApproveProposal(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	dto, err := h.proposal.Approve(c.Request().Context(), actor, c.Param("id"), proposalUC.ApproveInput{
		Catatan:       req.Catatan,
		DanaDisetujui: req.DanaDisetujui,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type catatanRequest struct {
	Catatan string `json:"catatan" validate:"required"`
}

func (h *Handler) RejectProposal(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req catatanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	if err := h.proposal.Reject(c.Request().Context(), actor, c.Param("id"), req.Catatan); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RequestRevision(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req catatanRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	if err := h.proposal.RequestRevision(c.Request().Context(), actor, c.Param("id"), req.Catatan); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusOK)
}

type revisionUploadRequest struct {
	FilePath      string `json:"file_path" validate:"required"`
	CatatanRevisi string `json:"catatan_revisi"`
}

func (h *Handler) UploadRevision(c echo.Context) error {
	actor, _ := middleware.ActorFrom(c)
	var req revisionUploadRequest
	if err := c.Bind(&req); err != nil {
		return respondBindErr(c)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidationErr(c, err)
	}
	err := h.proposal.UploadRevision(c.Request().Context(), actor, c.Param("id"), proposalUC.RevisionUploadInput{
		FilePath:      req.FilePath,
		CatatanRevisi: req.CatatanRevisi,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusOK)
}
