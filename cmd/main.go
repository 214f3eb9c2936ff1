package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	mongoadapter "github.com/voicebridge/server/adapters/mongo"
	"github.com/voicebridge/server/adapters/stt"
	"github.com/voicebridge/server/adapters/translator"
	"github.com/voicebridge/server/adapters/tts"
	"github.com/voicebridge/server/domain/repositories"
	"github.com/voicebridge/server/internal/api"
	"github.com/voicebridge/server/internal/config"
	"github.com/voicebridge/server/usecase"
)

func main() {
	// Load .env for local development; in deployment the environment is set
	// by the platform.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == config.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Provider adapters, selected per environment
	speechToText, err := stt.NewFromEnv(logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech-to-text provider", zap.Error(err))
	}
	textTranslator, err := translator.NewFromEnv(logger)
	if err != nil {
		logger.Fatal("Failed to initialize translator provider", zap.Error(err))
	}
	textToSpeech, err := tts.NewFromEnv(logger)
	if err != nil {
		logger.Fatal("Failed to initialize text-to-speech provider", zap.Error(err))
	}

	// Optional outcome log; the server runs fine without it
	var outcomes repositories.OutcomeRepository
	if cfg.MongoURI != "" {
		client, err := mongoadapter.NewClient(cfg.MongoURI, cfg.MongoDatabase, logger)
		if err != nil {
			logger.Warn("Failed to connect to MongoDB, continuing without outcome log", zap.Error(err))
		} else {
			outcomes = mongoadapter.NewOutcomeRepository(client.Database)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				client.Close(ctx)
			}()
		}
	}

	translationService := usecase.NewTranslationService(
		speechToText, textTranslator, textToSpeech, outcomes, logger)

	api.InitRoutes(e, translationService, outcomes, cfg, logger)

	// Start server
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Translation server started",
		zap.String("port", cfg.Port),
		zap.String("environment", string(cfg.Env)))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
