package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CONSILIUM_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DefaultThinkingModel, cfg.ThinkingModel)
	assert.Equal(t, DefaultOrchestrationModel, cfg.OrchestrationModel)
	assert.Equal(t, DefaultReasoningBudget, cfg.ReasoningBudget)
	assert.False(t, cfg.DevMode)
}

func TestLoadRequiresProviderKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("CONSILIUM_API_KEY", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoadRequiresAPIKeyOutsideDevMode(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CONSILIUM_API_KEY", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("CONSILIUM_DEV_MODE", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
}

func TestLoadRejectsBadReasoningBudget(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("CONSILIUM_API_KEY", "secret")
	t.Setenv("REASONING_BUDGET", "lots")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("REASONING_BUDGET", "4096")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.ReasoningBudget)
}
