package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	httpadp "lppm-backend/internal/adapter/http"
	"lppm-backend/internal/adapter/repository/mysql"
	"lppm-backend/internal/config"
	"lppm-backend/internal/infrastructure/cache"
	"lppm-backend/internal/infrastructure/db"
	"lppm-backend/internal/infrastructure/storage"
	authUC "lppm-backend/internal/usecase/auth"
	kontrakUC "lppm-backend/internal/usecase/kontrak"
	luaranUC "lppm-backend/internal/usecase/luaran"
	monitoringUC "lppm-backend/internal/usecase/monitoring"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
	proposalUC "lppm-backend/internal/usecase/proposal"
	reviewUC "lppm-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	files, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	unit := mysql.NewGormUoW(gdb)
	users := mysql.NewUserRepository(gdb)
	dosen := mysql.NewDosenRepository(gdb)
	reviewers := mysql.NewReviewerRepository(gdb)
	periodes := mysql.NewPeriodeRepository(gdb)

	engine := pencairanUC.NewEngine()
	secret := []byte(cfg.JWTSecret)

	h := httpadp.NewHandler(
		authUC.NewUsecase(users, secret, cfg.JWTTTL),
		proposalUC.NewUsecase(unit, periodes, reviewers, dosen),
		reviewUC.NewUsecase(unit, reviewers),
		kontrakUC.NewUsecase(unit, engine),
		pencairanUC.NewUsecase(unit, engine),
		monitoringUC.NewUsecase(unit, engine),
		luaranUC.NewUsecase(unit, engine),
		files,
	)

	e := echo.New()
	e.HideBanner = true
	httpadp.RegisterRoutes(e, h, secret, rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
