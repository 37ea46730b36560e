// Package config loads the process configuration from the environment.
// Database settings live in pkg/database, loaded the same way.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for the model routing. Overridable per environment; agents can
// additionally pin their own model id per record.
const (
	DefaultThinkingModel      = "claude-sonnet-4-5"
	DefaultOrchestrationModel = "claude-haiku-4-5"
	DefaultReasoningBudget    = 2048
)

// Config is the non-database process configuration.
type Config struct {
	HTTPAddr string

	AnthropicAPIKey  string
	AnthropicBaseURL string
	OpenAIAPIKey     string
	OpenAIBaseURL    string

	ThinkingModel      string
	OrchestrationModel string
	ReasoningBudget    int

	// APIKey is the shared secret for the HTTP API; DevMode bypasses it.
	APIKey     string
	DevMode    bool
	CORSOrigin string

	SearchAPIKey string
	ReportsDir   string

	TracingEnabled bool
	TracingDir     string
}

// Load reads configuration from environment variables, applying defaults
// and validating the combinations that would otherwise fail at first use.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:           getEnvOrDefault("HTTP_ADDR", ":8080"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBaseURL:   os.Getenv("ANTHROPIC_BASE_URL"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		ThinkingModel:      getEnvOrDefault("THINKING_MODEL", DefaultThinkingModel),
		OrchestrationModel: getEnvOrDefault("ORCHESTRATION_MODEL", DefaultOrchestrationModel),
		ReasoningBudget:    DefaultReasoningBudget,
		APIKey:             os.Getenv("CONSILIUM_API_KEY"),
		DevMode:            boolEnv("CONSILIUM_DEV_MODE"),
		CORSOrigin:         os.Getenv("CORS_ORIGIN"),
		SearchAPIKey:       os.Getenv("SEARCH_API_KEY"),
		ReportsDir:         getEnvOrDefault("REPORTS_DIR", "./reports"),
		TracingEnabled:     boolEnv("TRACING_ENABLED"),
		TracingDir:         getEnvOrDefault("TRACING_DIR", "./traces"),
	}

	if v := os.Getenv("REASONING_BUDGET"); v != "" {
		budget, err := strconv.Atoi(v)
		if err != nil || budget < 0 {
			return nil, fmt.Errorf("invalid REASONING_BUDGET: %q", v)
		}
		cfg.ReasoningBudget = budget
	}

	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if cfg.APIKey == "" && !cfg.DevMode {
		return nil, fmt.Errorf("CONSILIUM_API_KEY is required unless CONSILIUM_DEV_MODE is set")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
