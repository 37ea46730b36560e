package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T) (*Executor, *Registry) {
	t.Helper()
	r := NewRegistry()
	return NewExecutor(r, Settings{ReportsDir: t.TempDir()}), r
}

func TestExecute_UnknownToolReturnsErrorObject(t *testing.T) {
	e, _ := newTestExecutor(t)

	res := e.Execute(context.Background(), "nope", nil)
	require.True(t, res.IsError)

	var obj map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Content), &obj))
	assert.Contains(t, obj["error"], "unknown tool")
}

func TestExecute_HandlerErrorReturnsErrorObject(t *testing.T) {
	e, r := newTestExecutor(t)
	r.Register(Definition{Name: "boom"}, func(context.Context, map[string]any, Settings) (string, error) {
		return "", fmt.Errorf("backend unavailable")
	})

	res := e.Execute(context.Background(), "boom", nil)
	require.True(t, res.IsError)
	assert.Contains(t, res.Content, "backend unavailable")
}

func TestExecute_HandlerPanicIsContained(t *testing.T) {
	e, r := newTestExecutor(t)
	r.Register(Definition{Name: "panic"}, func(context.Context, map[string]any, Settings) (string, error) {
		panic("oh no")
	})

	res := e.Execute(context.Background(), "panic", nil)
	require.True(t, res.IsError)
	assert.Contains(t, res.Content, "panicked")
}

func TestExecute_SuccessIsSanitizedAndTimed(t *testing.T) {
	e, r := newTestExecutor(t)
	r.Register(Definition{Name: "echo"}, func(_ context.Context, input map[string]any, _ Settings) (string, error) {
		return input["text"].(string), nil
	})

	res := e.Execute(context.Background(), "echo", map[string]any{"text": "hello"})
	assert.False(t, res.IsError)
	assert.Equal(t, "hello", res.Content)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

func TestSanitize_CapsOutput(t *testing.T) {
	small := "tiny"
	assert.Equal(t, small, Sanitize(small))

	big := strings.Repeat("line of output\n", 10_000) // ~150KB
	got := Sanitize(big)
	assert.Less(t, len(got), MaxOutputBytes+200)
	assert.Contains(t, got, "[TRUNCATED: tool output exceeded limit")
	// cut lands on a line boundary
	assert.True(t, strings.HasSuffix(got[:strings.Index(got, "\n\n[TRUNCATED")], "line of output"))
}

func TestSanitize_DoesNotSplitUTF8(t *testing.T) {
	big := strings.Repeat("é", MaxOutputBytes) // 2 bytes each, no newlines
	got := Sanitize(big)
	assert.True(t, strings.HasPrefix(got, "é"))
	cut := got[:strings.Index(got, "\n\n[TRUNCATED")]
	for _, r := range cut {
		assert.NotEqual(t, '�', r, "truncation must not split a rune")
	}
}

func TestBuiltinCalculator(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)
	e := NewExecutor(r, Settings{})

	res := e.Execute(context.Background(), "calculator", map[string]any{"a": 6.0, "b": 7.0, "op": "*"})
	require.False(t, res.IsError)
	assert.Equal(t, "42", res.Content)

	res = e.Execute(context.Background(), "calculator", map[string]any{"a": 1.0, "b": 0.0, "op": "/"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "division by zero")
}

func TestBuiltinSaveReport(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)
	dir := t.TempDir()
	e := NewExecutor(r, Settings{ReportsDir: dir})

	res := e.Execute(context.Background(), "save_report",
		map[string]any{"name": "../sneaky", "content": "body"})
	require.False(t, res.IsError, res.Content)
	assert.True(t, strings.HasPrefix(res.Content, dir), "report must stay inside the reports dir")

	data, err := os.ReadFile(res.Content)
	require.NoError(t, err)
	assert.Equal(t, "body", string(data))
}

func TestBuiltinWebSearch_Unconfigured(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)
	e := NewExecutor(r, Settings{})

	res := e.Execute(context.Background(), "web_search", map[string]any{"query": "market size"})
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "not configured")
}

func TestRegistrySchemas(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	defs := r.Schemas([]string{"web_search", "missing", "calculator"})
	require.Len(t, defs, 2)
	assert.Equal(t, "web_search", defs[0].Name)
	assert.Equal(t, "calculator", defs[1].Name)

	assert.Equal(t, []string{"calculator", "save_report", "web_search"}, r.Names())
}
