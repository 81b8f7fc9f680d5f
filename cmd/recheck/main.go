package main

import (
	"context"
	"log"

	"lppm-backend/internal/adapter/repository/mysql"
	"lppm-backend/internal/config"
	"lppm-backend/internal/domain/master"
	"lppm-backend/internal/infrastructure/db"
	pencairanUC "lppm-backend/internal/usecase/pencairan"
)

// recheck backfills disbursement tranches whose preconditions are met but
// whose rows are missing, e.g. after a data restore. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	uc := pencairanUC.NewUsecase(mysql.NewGormUoW(gdb), pencairanUC.NewEngine())
	n, err := uc.Recheck(context.Background(), master.Actor{UserID: "system", Role: master.RoleAdmin})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recheck: %d tranche(s) created", n)
}
