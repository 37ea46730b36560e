package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Executor looks tools up by name, runs their handlers, and sanitizes the
// output. Execute never returns a Go error for tool-level failures: unknown
// tools and handler errors come back as JSON error objects in the result
// content so the agent loop can continue.
type Executor struct {
	registry *Registry
	settings Settings
}

// Result is the outcome of one tool execution.
type Result struct {
	Name    string
	Content string
	IsError bool
	Elapsed time.Duration
}

// NewExecutor creates an executor over the given registry and settings.
func NewExecutor(registry *Registry, settings Settings) *Executor {
	return &Executor{registry: registry, settings: settings}
}

// Execute runs one tool call. The returned Result always carries content —
// tool output, a truncation-marked prefix of it, or a JSON error object.
func (e *Executor) Execute(ctx context.Context, name string, input map[string]any) *Result {
	start := time.Now()

	handler, ok := e.registry.Get(name)
	if !ok {
		return &Result{
			Name:    name,
			Content: errorObject(fmt.Sprintf("unknown tool: %s", name)),
			IsError: true,
			Elapsed: time.Since(start),
		}
	}

	content, err := invoke(ctx, handler, input, e.settings)
	elapsed := time.Since(start)
	if err != nil {
		return &Result{
			Name:    name,
			Content: errorObject(err.Error()),
			IsError: true,
			Elapsed: elapsed,
		}
	}

	return &Result{
		Name:    name,
		Content: Sanitize(content),
		Elapsed: elapsed,
	}
}

// invoke shields the executor from panicking handlers.
func invoke(ctx context.Context, h Handler, input map[string]any, settings Settings) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool handler panicked: %v", r)
		}
	}()
	return h(ctx, input, settings)
}

// errorObject wraps a failure message in the JSON envelope returned as the
// tool's result content.
func errorObject(msg string) string {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return string(data)
}
