// Consilium server — multi-agent deliberation over an HTTP API: protocol
// runs, pipelines, and live SSE progress streams.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/consilium-ai/consilium/pkg/api"
	"github.com/consilium-ai/consilium/pkg/config"
	"github.com/consilium-ai/consilium/pkg/database"
	"github.com/consilium-ai/consilium/pkg/llm"
	_ "github.com/consilium-ai/consilium/pkg/protocol/protocols" // register protocol catalog
	"github.com/consilium-ai/consilium/pkg/runner"
	"github.com/consilium-ai/consilium/pkg/services"
	"github.com/consilium-ai/consilium/pkg/tools"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Tool surface shared by every run.
	registry := tools.NewRegistry()
	tools.RegisterBuiltins(registry)
	executor := tools.NewExecutor(registry, tools.Settings{
		SearchAPIKey: cfg.SearchAPIKey,
		ReportsDir:   cfg.ReportsDir,
	})

	var primary llm.Provider = llm.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL)
	if cfg.TracingEnabled {
		primary = llm.NewTracingProvider(primary, cfg.TracingDir)
		slog.Info("LLM tracing enabled", "dir", cfg.TracingDir)
	}
	compat := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	gateway := llm.NewGateway(primary, compat, registry, executor, cfg.ThinkingModel)

	agentService := services.NewAgentService(dbClient.Client)
	teamService := services.NewTeamService(dbClient.Client, agentService)
	pipelineService := services.NewPipelineService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)

	controller := runner.New(runService, agentService, pipelineService, gateway, runner.Config{
		ThinkingModel:      cfg.ThinkingModel,
		OrchestrationModel: cfg.OrchestrationModel,
		ReasoningBudget:    cfg.ReasoningBudget,
	})

	server := api.NewServer(dbClient, agentService, teamService, pipelineService, runService, controller, api.Config{
		APIKey:     cfg.APIKey,
		DevMode:    cfg.DevMode,
		CORSOrigin: cfg.CORSOrigin,
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Consilium stopped")
}
