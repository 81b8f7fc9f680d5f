package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"lppm-backend/internal/adapter/middleware"
	"lppm-backend/internal/domain/master"
)

// RegisterRoutes wires every endpoint. All lifecycle routes sit behind JWT
// auth; mutating ones additionally pass the Redis idempotency layer.
func RegisterRoutes(e *echo.Echo, h *Handler, secret []byte, rdb *redis.Client, idempTTL time.Duration) {
	e.Validator = NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())

	e.GET("/health", h.Health)
	e.POST("/auth/login", h.Login)

	api := e.Group("/api", middleware.Auth(secret), middleware.IdempotencyMiddleware(rdb, idempTTL))

	admin := middleware.RequireRole(master.RoleAdmin)
	dosen := middleware.RequireRole(master.RoleDosen)
	reviewer := middleware.RequireRole(master.RoleReviewer)

	api.POST("/upload", h.UploadFile)

	// proposal lifecycle
	api.POST("/proposal", h.CreateProposal, dosen)
	api.GET("/proposal/:id", h.GetProposal)
	api.PUT("/proposal/:id", h.UpdateProposal, dosen)
	api.POST("/proposal/:id/member", h.AddMember, dosen)
	api.DELETE("/proposal/:id/member/:memberId", h.RemoveMember, dosen)
	api.POST("/proposal/:id/submit", h.SubmitProposal, dosen)
	api.POST("/proposal/:id/admin-check", h.AdminCheck, admin)
	api.POST("/proposal/:id/reviewers", h.AssignReviewers, admin)
	api.POST("/proposal/:id/approve", h.ApproveProposal, admin)
	api.POST("/proposal/:id/reject", h.RejectProposal, admin)
	api.POST("/proposal/:id/request-revision", h.RequestRevision, admin)
	api.POST("/proposal/:id/revision", h.UploadRevision, dosen)

	// review round
	api.POST("/proposal/:id/review", h.SubmitReview, reviewer)
	api.GET("/proposal/:id/review/summary", h.ReviewSummary)
	api.GET("/proposal/:id/review", h.ListReviews)

	// contract
	api.POST("/proposal/:id/kontrak/sign", h.SignKontrak, admin)
	api.GET("/proposal/:id/kontrak", h.GetKontrak)

	// disbursement
	api.GET("/proposal/:id/pencairan", h.ListPencairan)
	api.POST("/pencairan/:pencairanId/verify", h.VerifyPencairan, admin)
	api.POST("/pencairan/recheck", h.RecheckPencairan, admin)

	// monitoring
	api.POST("/proposal/:id/monitoring/kemajuan", h.UploadKemajuan, dosen)
	api.POST("/proposal/:id/monitoring/akhir", h.UploadAkhir, dosen)
	api.POST("/proposal/:id/monitoring/kemajuan/verify", h.VerifyKemajuan, admin)
	api.POST("/proposal/:id/monitoring/akhir/verify", h.VerifyAkhir, admin)
	api.GET("/proposal/:id/monitoring", h.GetMonitoring)

	// research outputs
	api.POST("/proposal/:id/luaran", h.CreateLuaran, dosen)
	api.GET("/proposal/:id/luaran", h.ListLuaran)
	api.POST("/luaran/:luaranId/verify", h.VerifyLuaran, admin)
	api.DELETE("/luaran/:luaranId", h.DeleteLuaran)
}
