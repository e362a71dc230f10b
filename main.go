package main

import (
	"Culinary-Alchemy/cmd/config"
	migration "Culinary-Alchemy/cmd/database/migrate"
	"Culinary-Alchemy/cmd/database/seed"
	"Culinary-Alchemy/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	var admin *seed.Admin
	if utils.IsProduction() {
		admin = &seed.Admin{
			Username: utils.GetConfig("ADMIN_USERNAME"),
			Email:    utils.GetConfig("ADMIN_EMAIL"),
			Password: utils.GetConfig("ADMIN_PASSWORD"),
		}
	}
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = seed.Seed(seedCtx, db, admin)
	cancel()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("%v", err)
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorw("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
