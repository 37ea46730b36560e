package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TracingProvider decorates a Provider with an NDJSON call log: one record
// per completion, appended to a per-day file under the trace directory.
// Tracing failures are logged and never fail the call.
type TracingProvider struct {
	inner Provider
	dir   string

	mu sync.Mutex
}

// NewTracingProvider wraps inner. dir is created lazily on first write.
func NewTracingProvider(inner Provider, dir string) *TracingProvider {
	return &TracingProvider{inner: inner, dir: dir}
}

func (p *TracingProvider) Name() string { return p.inner.Name() }

type traceRecord struct {
	Timestamp    string `json:"timestamp"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	RunID        string `json:"run_id,omitempty"`
	ProtocolID   string `json:"protocol_id,omitempty"`
	Agent        string `json:"agent,omitempty"`
	Messages     int    `json:"messages"`
	Tools        int    `json:"tools"`
	LatencyMS    int64  `json:"latency_ms"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	StopReason   string `json:"stop_reason,omitempty"`
	ToolCalls    int    `json:"tool_calls"`
	Error        string `json:"error,omitempty"`
}

// Complete delegates to the wrapped provider and records the call.
func (p *TracingProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Complete(ctx, req)

	rec := traceRecord{
		Timestamp:  start.UTC().Format(time.RFC3339Nano),
		Provider:   p.inner.Name(),
		Model:      req.Model,
		RunID:      req.Meta.RunID,
		ProtocolID: req.Meta.ProtocolID,
		Agent:      req.Meta.AgentName,
		Messages:   len(req.Messages),
		Tools:      len(req.Tools),
		LatencyMS:  time.Since(start).Milliseconds(),
	}
	if err != nil {
		rec.Error = err.Error()
	} else {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.StopReason = resp.StopReason
		rec.ToolCalls = len(resp.ToolCalls)
	}
	p.append(rec)

	return resp, err
}

func (p *TracingProvider) append(rec traceRecord) {
	line, err := json.Marshal(rec)
	if err != nil {
		slog.Warn("failed to encode trace record", "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		slog.Warn("failed to create trace directory", "dir", p.dir, "error", err)
		return
	}
	path := filepath.Join(p.dir, fmt.Sprintf("llm-%s.ndjson", time.Now().UTC().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("failed to open trace file", "path", path, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		slog.Warn("failed to write trace record", "path", path, "error", err)
	}
}
