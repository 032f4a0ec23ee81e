package main

import (
	"context"
	"fmt"

	"nutrition-agent/config"
	_ "nutrition-agent/docs" // Swagger docs
	"nutrition-agent/internal/httpserver"
	"nutrition-agent/internal/middleware"
	nutritionHTTP "nutrition-agent/internal/nutrition/delivery/http"
	"nutrition-agent/internal/nutrition/usecase"
	"nutrition-agent/internal/session"
	"nutrition-agent/pkg/clarifai"
	"nutrition-agent/pkg/log"
	"nutrition-agent/pkg/openaichat"
)

// @title       Nutrition Agent API
// @description AI nutrition assistant: intent classification, food recognition, meal analysis and planning.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Nutrition Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. External clients
	recognizer, err := clarifai.New(clarifai.Config{
		PAT:        cfg.Clarifai.PAT,
		UserID:     cfg.Clarifai.UserID,
		AppID:      cfg.Clarifai.AppID,
		WorkflowID: cfg.Clarifai.WorkflowID,
		BaseURL:    cfg.Clarifai.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Clarifai client: ", err)
		return
	}

	llm, err := openaichat.New(openaichat.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		VisionModel: cfg.OpenAI.VisionModel,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. Session store
	store := session.New(session.Config{
		MaxEntries: cfg.Session.MaxEntries,
		TTL:        cfg.Session.TTL,
	})

	// 5. Nutrition domain
	nutritionUC := usecase.New(logger, llm, recognizer, store, cfg.OpenAI.IntentModel)
	nutritionHandler := nutritionHTTP.New(logger, nutritionUC)

	// 6. Middleware
	mw := middleware.New(logger, cfg.RateLimit)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		NutritionHandler: nutritionHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
