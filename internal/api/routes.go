package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
	"github.com/voicebridge/server/internal/auth"
	"github.com/voicebridge/server/internal/config"
	"github.com/voicebridge/server/usecase"
)

const serviceName = "voicebridge-server"

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, svc *usecase.TranslationService, outcomes repositories.OutcomeRepository, cfg *config.Config, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HomeResponse{
			Status:      "success",
			Message:     "Translation API is running",
			Version:     "1.0.0",
			Environment: string(cfg.Env),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:      "healthy",
			Service:     serviceName,
			Environment: string(cfg.Env),
		})
	})

	v1 := e.Group("/api/v1")
	if cfg.AuthJWTSecret != "" {
		v1.Use(requireAuth([]byte(cfg.AuthJWTSecret), logger))
	}

	// Built once; immutable for the process lifetime.
	pipelineCfg := cfg.PipelineConfig()

	v1.POST("/translate", func(c echo.Context) error {
		return translate(c, svc, pipelineCfg, logger)
	})

	if outcomes != nil {
		v1.GET("/translations", func(c echo.Context) error {
			return listTranslations(c, outcomes, logger)
		})
	}
}

// translate handles one synchronous pipeline invocation: multipart audio in,
// translated audio (or a structured failure) out.
func translate(c echo.Context, svc *usecase.TranslationService, cfg entities.PipelineConfig, logger *zap.Logger) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		logger.Warn("No audio file in request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No audio file provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read audio file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read audio file"})
	}

	in := &entities.AudioInput{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	out := svc.Translate(c.Request().Context(), in, cfg)

	if !out.Success {
		status := http.StatusInternalServerError
		if out.RequiresRetry {
			status = http.StatusBadRequest
		}
		return c.JSON(status, ErrorResponse{
			Error:                 out.ErrorMessage,
			RequiresRetry:         out.RequiresRetry,
			HallucinationDetected: out.HallucinationDetected,
			DetectedLanguage:      out.DetectedLanguage,
			OriginalText:          out.OriginalText,
			TranslatedText:        out.TranslatedText,
		})
	}

	header := c.Response().Header()
	header.Set("Content-Disposition", `attachment; filename=translated.mp3`)
	header.Set("X-Original-Text", out.OriginalText)
	header.Set("X-Translated-Text", out.TranslatedText)
	header.Set("X-Detected-Language", out.DetectedLanguage)
	header.Set("X-Target-Language", out.TargetLanguage)

	return c.Blob(http.StatusOK, "audio/mpeg", out.AudioBytes)
}

// listTranslations returns recent invocation traces from the outcome log.
func listTranslations(c echo.Context, outcomes repositories.OutcomeRepository, logger *zap.Logger) error {
	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}

	records, err := outcomes.ListRecent(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to list translation outcomes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve history"})
	}
	if records == nil {
		records = []*entities.OutcomeRecord{}
	}

	return c.JSON(http.StatusOK, records)
}

// requireAuth guards a route group with bearer-token validation.
func requireAuth(secret []byte, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				logger.Warn("Rejected API token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			}

			c.Set("client_id", claims.ClientID)
			return next(c)
		}
	}
}
