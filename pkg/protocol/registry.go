package protocol

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/consilium-ai/consilium/pkg/roster"
)

// Protocol categories. Meta protocols advise on process rather than answer
// the question; they never get tools.
const (
	CategoryCore       = "core"
	CategoryDecision   = "decision"
	CategoryAnalysis   = "analysis"
	CategoryAdversary  = "adversarial"
	CategoryEstimation = "estimation"
	CategorySystems    = "systems"
	CategoryMeta       = "meta"
)

// Manifest is the catalog record for one protocol.
type Manifest struct {
	Key            string   `json:"key"`
	ProtocolID     string   `json:"protocol_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ProblemTypes   []string `json:"problem_types"`
	CostTier       string   `json:"cost_tier"` // low | medium | high
	MinAgents      int      `json:"min_agents"`
	MaxAgents      int      `json:"max_agents"`
	SupportsRounds bool     `json:"supports_rounds"`
	Description    string   `json:"description"`
	WhenToUse      string   `json:"when_to_use"`
	WhenNotToUse   string   `json:"when_not_to_use"`
}

// ToolsEnabled is structural: every non-meta protocol may use tools.
func (m Manifest) ToolsEnabled() bool {
	return m.Category != CategoryMeta
}

// Runner executes one protocol end to end.
type Runner interface {
	Run(ctx context.Context, question string, agents []*roster.Agent, cfg Config) (*Result, error)
}

// Constructor builds a protocol runner over the gateway.
type Constructor func(caller Caller) Runner

type registryEntry struct {
	manifest Manifest
	ctor     Constructor
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registryEntry)
)

// Register adds a protocol under its manifest key. Protocol packages call
// this from init; duplicate keys are a programmer error.
func Register(manifest Manifest, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[manifest.Key]; exists {
		panic(fmt.Sprintf("protocol %q registered twice", manifest.Key))
	}
	registry[manifest.Key] = registryEntry{manifest: manifest, ctor: ctor}
}

// Lookup resolves a protocol key to its manifest and constructor.
func Lookup(key string) (Manifest, Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[key]
	return e.manifest, e.ctor, ok
}

// Manifests returns the catalog sorted by key.
func Manifests() []Manifest {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Manifest, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.manifest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Keys returns all registered protocol keys, sorted.
func Keys() []string {
	manifests := Manifests()
	keys := make([]string, len(manifests))
	for i, m := range manifests {
		keys[i] = m.Key
	}
	return keys
}
