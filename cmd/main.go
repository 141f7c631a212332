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

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/kalimuthu765/sports-connect/config"
	"github.com/kalimuthu765/sports-connect/db"
	"github.com/kalimuthu765/sports-connect/handlers"
	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/realtime"
	"github.com/kalimuthu765/sports-connect/repositories"
	api "github.com/kalimuthu765/sports-connect/routes"
	"github.com/kalimuthu765/sports-connect/services"
	"github.com/kalimuthu765/sports-connect/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2Configured() {
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
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 storage not configured, avatar uploads disabled")
	}

	hub := realtime.NewHub(logger)
	go hub.Run()
	logger.Info("realtime hub started")

	accountRepo := repositories.NewPostgresAccountRepository(dbConn)
	followRepo := repositories.NewPostgresFollowRepository(dbConn)
	statRepo := repositories.NewPostgresStatRepository(dbConn)
	competitionRepo := repositories.NewPostgresCompetitionRepository(dbConn)
	registrationRepo := repositories.NewPostgresRegistrationRepository(dbConn)
	joinRequestRepo := repositories.NewPostgresJoinRequestRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	txRunner := repositories.NewTxRunner(dbConn)
	logger.Info("repositories initialized")

	vocabulary := models.DefaultRoleVocabulary

	authService := services.NewAuthService(accountRepo, vocabulary)
	accountService := services.NewAccountService(txRunner, accountRepo, followRepo, statRepo, uploader, vocabulary)
	relationshipService := services.NewRelationshipService(accountRepo, followRepo)
	joinRequestService := services.NewJoinRequestService(txRunner, joinRequestRepo, accountRepo)
	competitionService := services.NewCompetitionService(competitionRepo, registrationRepo, matchRepo, accountRepo, vocabulary)
	registrationService := services.NewRegistrationService(registrationRepo, competitionRepo, accountRepo)
	matchService := services.NewMatchService(matchRepo, competitionRepo, registrationRepo, hub)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	accountHandler := handlers.NewAccountHandler(accountService, relationshipService)
	teamHandler := handlers.NewTeamHandler(accountService, relationshipService, joinRequestService)
	competitionHandler := handlers.NewCompetitionHandler(competitionService, registrationService)
	matchHandler := handlers.NewMatchHandler(matchService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		accountHandler,
		teamHandler,
		competitionHandler,
		matchHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
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
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
