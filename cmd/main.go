package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gbfmachado/gkpro-system/config"
	"github.com/gbfmachado/gkpro-system/db"
	"github.com/gbfmachado/gkpro-system/handlers"
	"github.com/gbfmachado/gkpro-system/narrative"
	"github.com/gbfmachado/gkpro-system/realtime"
	"github.com/gbfmachado/gkpro-system/repositories"
	api "github.com/gbfmachado/gkpro-system/routes"
	"github.com/gbfmachado/gkpro-system/services"
	"github.com/gbfmachado/gkpro-system/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabasePath, 5*time.Second)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	logger.Info("database opened", slog.String("path", cfg.DatabasePath))

	var uploader storage.FileUploader
	localUploads := ""
	if cfg.UseR2() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("photo storage: Cloudflare R2", slog.String("bucket", cfg.R2BucketName))
	} else {
		uploader, err = storage.NewLocalUploader(cfg.UploadDir, "/uploads")
		if err != nil {
			logger.Error("failed to initialize local uploader", slog.Any("error", err))
			os.Exit(1)
		}
		localUploads = cfg.UploadDir
		logger.Info("photo storage: local directory", slog.String("dir", cfg.UploadDir))
	}

	ctx := context.Background()
	repo := repositories.New(ctx, storage.NewSQLiteCollectionStore(dbConn))
	logger.Info("collections loaded")

	hub := realtime.NewHub(logger)
	go hub.Run()
	repo.Subscribe(func(collection string) {
		hub.Broadcast(realtime.CollectionUpdated(collection))
	})

	summarizer := narrative.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)

	goalkeeperService := services.NewGoalkeeperService(repo.Goalkeepers, uploader)
	coachService := services.NewCoachService(repo.Coaches, uploader)
	evaluationService := services.NewEvaluationService(repo.Evaluations)
	scoutService := services.NewScoutService(repo.Scouts, repo.Goalkeepers)
	trainingService := services.NewTrainingService(repo.Trainings)
	supportService := services.NewSupportService(repo.SupportRecords)
	dashboardService := services.NewDashboardService(repo.Goalkeepers, repo.Scouts)
	reportService := services.NewReportService(repo.Goalkeepers, repo.Evaluations, repo.Scouts, summarizer)

	router := api.SetupRoutes(api.Handlers{
		Goalkeepers: handlers.NewGoalkeeperHandler(goalkeeperService),
		Coaches:     handlers.NewCoachHandler(coachService),
		Evaluations: handlers.NewEvaluationHandler(evaluationService),
		Scouts:      handlers.NewScoutHandler(scoutService),
		Trainings:   handlers.NewTrainingHandler(trainingService),
		Support:     handlers.NewSupportHandler(supportService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Reports:     handlers.NewReportHandler(reportService),
		WebSocket:   handlers.NewWebSocketHandler(hub),
	}, localUploads)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
