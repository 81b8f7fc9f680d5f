package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lppm-backend/internal/infrastructure/storage"
	authUC "lppm-backend/internal/usecase/auth"
	kontrakUC "lppm-backend/internal/usecase/kontrak"
	luaranUC "lppm-backend/internal/usecase/luaran"
	monitoringUC "lppm-backend/internal/usecase/monitoring"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
	proposalUC "lppm-backend/internal/usecase/proposal"
	reviewUC "lppm-backend/internal/usecase/review"
)

type Handler struct {
	auth       *authUC.Usecase
	proposal   *proposalUC.Usecase
	review     *reviewUC.Usecase
	kontrak    *kontrakUC.Usecase
	pencairan  *pencairanUC.Usecase
	monitoring *monitoringUC.Usecase
	luaran     *luaranUC.Usecase
	files      *storage.Local
}

func NewHandler(
	auth *authUC.Usecase,
	proposal *proposalUC.Usecase,
	review *reviewUC.Usecase,
	kontrak *kontrakUC.Usecase,
	pencairan *pencairanUC.Usecase,
	monitoring *monitoringUC.Usecase,
	luaran *luaranUC.Usecase,
	files *storage.Local,
) *Handler {
	return &Handler{
		auth:       auth,
		proposal:   proposal,
		review:     review,
		kontrak:    kontrak,
		pencairan:  pencairan,
		monitoring: monitoring,
		luaran:     luaran,
		files:      files,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
