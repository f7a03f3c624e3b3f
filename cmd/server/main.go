package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kedai/config"
	"kedai/internal/database"
	"kedai/internal/router"
	"kedai/internal/ws"
	"kedai/pkg/cloudinary"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	log.SetDefault(logger)

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("database", "err", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate", "err", err)
	}
	if err := database.SeedAdmin(db, &cfg.Admin); err != nil {
		log.Fatal("seed admin", "err", err)
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.Enabled() {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatal("cloudinary", "err", err)
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	engine, err := router.Setup(ctx, cfg, db, cloud, ws.NewAboutUsNotifier())
	if err != nil {
		log.Fatal("router", "err", err)
	}
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", "port", cfg.Server.Port, "db", cfg.Database.Driver, "images", cfg.Images.Offload)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", "err", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown", "err", err)
	}
	log.Info("server stopped")
}
