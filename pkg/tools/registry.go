// Package tools provides the externally supplied tool registry and the
// executor that runs handlers on behalf of agent tool loops. Handlers never
// surface errors to the loop: every failure becomes a JSON error object the
// model can react to.
package tools

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Handler executes one tool call. input is the decoded tool-call arguments;
// settings is the process-wide tool configuration.
type Handler func(ctx context.Context, input map[string]any, settings Settings) (string, error)

// Settings holds process-wide tool configuration. Initialized once at
// startup and never mutated thereafter.
type Settings struct {
	SearchAPIKey string
	ReportsDir   string
}

// Definition is the schema advertised to the LLM for one tool.
type Definition struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParametersSchema string `json:"parameters_schema"` // JSON Schema
}

// Registry is the name → handler lookup table.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	schemas  map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		schemas:  make(map[string]Definition),
	}
}

// Register adds a tool. Later registrations under the same name replace
// earlier ones.
func (r *Registry) Register(def Definition, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[def.Name] = h
	r.schemas[def.Name] = def
}

// Get returns the handler for a tool name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Schema returns the definition for a tool name.
func (r *Registry) Schema(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.schemas[name]
	return d, ok
}

// Schemas resolves a list of tool names to their definitions, skipping
// unknown names.
func (r *Registry) Schemas(names []string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var defs []Definition
	for _, n := range names {
		if d, ok := r.schemas[n]; ok {
			defs = append(defs, d)
		}
	}
	return defs
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for n := range r.handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// mustSchema serializes a JSON-schema object literal; panics on programmer
// error (builtin registration only).
func mustSchema(v map[string]any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
