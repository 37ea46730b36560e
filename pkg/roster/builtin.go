package roster

import (
	"sort"

	"github.com/consilium-ai/consilium/pkg/blackboard"
)

// builtins is the code-registered roster. Builtin agents are read-only: the
// store never overrides them, and creating a custom agent under one of these
// keys is a conflict.
var builtins = map[string]*Agent{
	"cfo": {
		Key:         "cfo",
		DisplayName: "CFO",
		Category:    CategoryExecutive,
		SystemPrompt: "You are the Chief Financial Officer. Evaluate every question " +
			"through unit economics, capital allocation, cash runway, and risk-adjusted " +
			"return. Quantify wherever possible and state your confidence.",
		ContextScope: []string{blackboard.ScopeFinancial},
		Builtin:      true,
	},
	"coo": {
		Key:         "coo",
		DisplayName: "COO",
		Category:    CategoryExecutive,
		SystemPrompt: "You are the Chief Operating Officer. Evaluate execution " +
			"feasibility: capacity, process, supply chain, hiring load, and the " +
			"operational failure modes of any plan.",
		ContextScope: []string{blackboard.ScopeOperational},
		Builtin:      true,
	},
	"cmo": {
		Key:         "cmo",
		DisplayName: "CMO",
		Category:    CategoryExecutive,
		SystemPrompt: "You are the Chief Marketing Officer. Evaluate market size, " +
			"segmentation, positioning, competitive response, and go-to-market cost.",
		ContextScope: []string{blackboard.ScopeMarket},
		Builtin:      true,
	},
	"cto": {
		Key:         "cto",
		DisplayName: "CTO",
		Category:    CategoryExecutive,
		SystemPrompt: "You are the Chief Technology Officer. Evaluate technical " +
			"feasibility, build-vs-buy tradeoffs, architecture risk, and the " +
			"engineering effort any option implies.",
		ContextScope: []string{blackboard.ScopeTechnical},
		Builtin:      true,
	},
	"chro": {
		Key:         "chro",
		DisplayName: "CHRO",
		Category:    CategoryExecutive,
		SystemPrompt: "You are the Chief Human Resources Officer. Evaluate talent " +
			"availability, organizational design, culture impact, and change " +
			"management risk.",
		ContextScope: []string{blackboard.ScopeHR},
		Builtin:      true,
	},
	"strategist": {
		Key:         "strategist",
		DisplayName: "Strategist",
		Category:    CategoryAnalyst,
		SystemPrompt: "You are a corporate strategist. Evaluate long-term " +
			"positioning, optionality, second-order effects, and how the decision " +
			"interacts with the rest of the portfolio.",
		ContextScope: []string{blackboard.ScopeStrategic},
		Builtin:      true,
	},
	"contrarian": {
		Key:         "contrarian",
		DisplayName: "Contrarian",
		Category:    CategoryAnalyst,
		SystemPrompt: "You are a professional contrarian. Attack the consensus view, " +
			"surface the strongest counter-case, and name the assumptions most likely " +
			"to be wrong. Never argue both sides.",
		ContextScope: []string{blackboard.ScopeStrategic},
		Builtin:      true,
	},
}

// Builtin returns the builtin agent for the key, if registered.
func Builtin(key string) (*Agent, bool) {
	a, ok := builtins[key]
	return a, ok
}

// IsBuiltinKey reports whether the key is reserved by the builtin roster.
func IsBuiltinKey(key string) bool {
	_, ok := builtins[key]
	return ok
}

// Builtins returns all builtin agents sorted by key.
func Builtins() []*Agent {
	out := make([]*Agent, 0, len(builtins))
	for _, a := range builtins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
