package protocols

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// scriptedCaller answers every call through a respond function and records
// the requests it saw. Parallel stages call it concurrently.
type scriptedCaller struct {
	mu       sync.Mutex
	requests []llm.CallRequest
	respond  func(req llm.CallRequest) string
}

func (s *scriptedCaller) Call(_ context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return &llm.CallResult{
		Text:  s.respond(req),
		Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5},
	}, nil
}

func (s *scriptedCaller) recorded() []llm.CallRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.CallRequest(nil), s.requests...)
}

func testConfig() protocol.Config {
	return protocol.Config{
		RunID:              "run-1",
		ThinkingModel:      "thinking-model",
		OrchestrationModel: "orchestration-model",
	}
}

func testAgents() []*roster.Agent {
	return []*roster.Agent{
		{Key: "cfo", DisplayName: "CFO", Category: roster.CategoryExecutive},
		{Key: "cto", DisplayName: "CTO", Category: roster.CategoryExecutive},
		{Key: "coo", DisplayName: "COO", Category: roster.CategoryExecutive},
	}
}

func runProtocol(t *testing.T, key string, caller protocol.Caller, question string, agents []*roster.Agent, cfg protocol.Config) *protocol.Result {
	t.Helper()
	_, ctor, ok := protocol.Lookup(key)
	require.True(t, ok, "protocol %s not registered", key)

	result, err := ctor(caller).Run(context.Background(), question, agents, cfg)
	require.NoError(t, err)
	return result
}

func TestParallelSynthesisRun(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		if req.Agent == nil {
			return "joint recommendation"
		}
		return "view from " + req.Agent.Key
	}}

	result := runProtocol(t, "parallel-synthesis", caller, "Should we expand to Brazil?", testAgents(), testConfig())

	assert.Equal(t, protocol.KindPerspectives, result.Kind)
	require.Len(t, result.Perspectives, 3)
	names := make(map[string]string, 3)
	for _, p := range result.Perspectives {
		names[p.Name] = p.Response
	}
	assert.Equal(t, "view from cfo", names["CFO"])
	assert.Equal(t, "view from cto", names["CTO"])
	assert.Equal(t, "joint recommendation", result.Synthesis)

	// 3 perspective calls plus 1 synthesis.
	assert.Len(t, caller.recorded(), 4)
	for _, req := range caller.recorded() {
		assert.Contains(t, req.Prompt, "Should we expand to Brazil?")
	}
}

func TestDebateScopeIsolation(t *testing.T) {
	agents := []*roster.Agent{
		{Key: "finance", DisplayName: "Finance", ContextScope: []string{blackboard.ScopeFinancial}},
		{Key: "market", DisplayName: "Market", ContextScope: []string{blackboard.ScopeMarket}},
	}
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		switch {
		case req.Agent == nil:
			return "adjudicated"
		case strings.Contains(req.Prompt, "Open the debate"):
			return strings.ToUpper(req.Agent.Key) + "-OPENING-ARGUMENT"
		default:
			return "rebuttal from " + req.Agent.Key
		}
	}}

	result := runProtocol(t, "debate", caller, "Raise prices 10%?", agents, testConfig())

	assert.Equal(t, protocol.KindRounds, result.Kind)
	require.Len(t, result.Rounds, 2)
	assert.Equal(t, "adjudicated", result.Synthesis)

	// The finance agent's round-2 prompt sees its own round-1 entry but not
	// the market-scoped one.
	var financeRebuttal string
	for _, req := range caller.recorded() {
		if req.Agent != nil && req.Agent.Key == "finance" && strings.Contains(req.Prompt, "Rebut") {
			financeRebuttal = req.Prompt
		}
	}
	require.NotEmpty(t, financeRebuttal)
	assert.Contains(t, financeRebuttal, "FINANCE-OPENING-ARGUMENT")
	assert.NotContains(t, financeRebuttal, "MARKET-OPENING-ARGUMENT")
}

func TestDelphiStopsWhenConverged(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		if req.Agent == nil {
			return "Converged at 100"
		}
		return `{"estimate": 100, "low": 90, "high": 110, "reasoning": "base rate"}`
	}}

	result := runProtocol(t, "delphi", caller, "Units sold in year one?", testAgents(), testConfig())

	assert.Equal(t, protocol.KindRounds, result.Kind)
	require.Len(t, result.Rounds, 1, "identical estimates converge after round one")
	assert.Len(t, result.Rounds[0].Responses, 3)
	assert.Equal(t, "Converged at 100", result.Synthesis)

	// Round one fan-out plus synthesis; rounds two and three never fire.
	assert.Len(t, caller.recorded(), 4)
}

func TestCynefinSelectsDomainPlaybook(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		switch {
		case strings.Contains(req.Prompt, "Classify this situation"):
			return `{"domain": "complex", "reasoning": "emergent behavior"}`
		case req.Agent == nil:
			return "probe-first plan"
		default:
			return "probes from " + req.Agent.Key
		}
	}}

	result := runProtocol(t, "cynefin", caller, "Why is churn spiking?", testAgents(), testConfig())

	assert.Equal(t, protocol.KindPerspectives, result.Kind)
	require.Len(t, result.Perspectives, 3)
	assert.Equal(t, "probe-first plan", result.Synthesis)

	var playbookPrompts int
	for _, req := range caller.recorded() {
		if strings.Contains(req.Prompt, "safe-to-fail probes") {
			playbookPrompts++
		}
	}
	assert.Equal(t, 3, playbookPrompts, "unanimous complex vote selects the probe playbook")
}

func TestFalsificationDedupsAndRulesVerdict(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		switch {
		case strings.Contains(req.Prompt, "falsify this recommendation"):
			return `["the market is shrinking", "The Market Is Shrinking"]`
		case strings.Contains(req.Prompt, "Merge duplicates"):
			return `["the market is shrinking"]`
		case strings.Contains(req.Prompt, "Falsification condition to investigate"):
			return "no evidence found; market grew 4% YoY"
		default:
			return "Verdict: SURVIVES. No condition was substantiated."
		}
	}}

	result := runProtocol(t, "falsification", caller, "Acquire the competitor.", testAgents()[:2], testConfig())

	assert.Equal(t, protocol.KindStages, result.Kind)
	outputs := make(map[string]string, len(result.Stages))
	for _, s := range result.Stages {
		outputs[s.Name] = s.Output
	}
	assert.Equal(t, VerdictSurvives, outputs["verdict"])
	assert.Contains(t, outputs["evidence"], "market grew 4% YoY")
	assert.Contains(t, result.Synthesis, "SURVIVES")

	var hunts int
	for _, req := range caller.recorded() {
		if strings.Contains(req.Prompt, "Falsification condition to investigate") {
			hunts++
		}
	}
	assert.Equal(t, 1, hunts, "one hunt per deduplicated condition")
}

func TestVickreyNoValidBidsStillSynthesizes(t *testing.T) {
	caller := &scriptedCaller{respond: func(req llm.CallRequest) string {
		if req.Agent == nil {
			return "no position won the auction"
		}
		return "I abstain" // no parseable bid
	}}

	result := runProtocol(t, "vickrey", caller, "Enter the enterprise segment?", testAgents(), testConfig())

	// With no bids there is no winner and no re-justification call, but the
	// justification entry still lands so the synthesis stage fires.
	assert.Equal(t, "no position won the auction", result.Synthesis)
	for _, req := range caller.recorded() {
		assert.NotContains(t, req.Prompt, "You won the confidence auction")
	}
	assert.Len(t, caller.recorded(), 4, "3 bid calls plus synthesis")
}

func TestVickreyJustifyAlwaysWritesEntry(t *testing.T) {
	caller := &scriptedCaller{respond: func(llm.CallRequest) string { return "x" }}
	p := &vickrey{caller: caller}

	// Auction outcome naming a winner that is not in the roster.
	bb := blackboard.New("vickrey")
	bb.Write("auction", &AuctionOutcome{
		Bids:      map[string]float64{"Departed": 80},
		Positions: map[string]string{"Departed": "expand"},
		Winner:    "Departed",
		Price:     70,
	}, blackboard.AuthorSystem, "auction", map[string]any{"scope": blackboard.ScopeAll})

	require.NoError(t, p.justify(context.Background(), bb, testAgents(), testConfig()))

	entry := bb.ReadLatest("justification", nil)
	require.NotNil(t, entry, "justification must land even without a matching agent")
	assert.Contains(t, stages.ContentText(entry), "Departed")
	assert.Empty(t, caller.recorded())
}

func TestMetaAdvisorRecommendsFromCatalog(t *testing.T) {
	caller := &scriptedCaller{respond: func(llm.CallRequest) string {
		return "Use delphi; runner-up borda."
	}}

	result := runProtocol(t, "meta-advisor", caller, "Estimate next-year revenue.", testAgents()[:1], testConfig())

	assert.Equal(t, protocol.KindOutputs, result.Kind)
	assert.Equal(t, "Use delphi; runner-up borda.", result.Outputs["advice"])

	reqs := caller.recorded()
	require.Len(t, reqs, 1)
	assert.True(t, reqs[0].NoTools, "meta protocols never use tools")
	assert.Contains(t, reqs[0].Prompt, "- delphi (estimation", "catalog lists runnable protocols")
	assert.NotContains(t, reqs[0].Prompt, "meta-framer", "catalog excludes meta protocols")
}
