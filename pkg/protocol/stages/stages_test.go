package stages

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
	"github.com/consilium-ai/consilium/pkg/roster"
)

// stubCaller answers every call via respond and records the requests.
type stubCaller struct {
	mu      sync.Mutex
	calls   []llm.CallRequest
	respond func(req llm.CallRequest) *llm.CallResult
}

func (s *stubCaller) Call(_ context.Context, req llm.CallRequest) (*llm.CallResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.respond != nil {
		return s.respond(req), nil
	}
	return &llm.CallResult{Text: "ok", Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5}}, nil
}

func (s *stubCaller) recorded() []llm.CallRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.CallRequest(nil), s.calls...)
}

func newBoard(question string) *blackboard.Blackboard {
	bb := blackboard.New("test")
	bb.Write(protocol.TopicQuestion, question, blackboard.AuthorSystem, "init",
		map[string]any{"scope": blackboard.ScopeAll})
	return bb
}

func testAgents() []*roster.Agent {
	return []*roster.Agent{
		{Key: "cfo", DisplayName: "CFO", ContextScope: []string{blackboard.ScopeFinancial}},
		{Key: "cmo", DisplayName: "CMO", ContextScope: []string{blackboard.ScopeMarket}},
		{Key: "strategist", DisplayName: "Strategist", ContextScope: []string{blackboard.ScopeStrategic}},
	}
}

func TestParallel_WritesOneEntryPerAgent(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) *llm.CallResult {
		return &llm.CallResult{
			Text:  "view of " + req.Agent.Key,
			Usage: llm.TokenUsage{InputTokens: 100, OutputTokens: 50},
		}
	}}
	exec := Parallel(caller, ParallelOptions{
		Name:           "perspectives",
		OutputTopic:    "perspectives",
		PromptTemplate: "Question: {question}",
	})

	bb := newBoard("enter market X?")
	require.NoError(t, exec(context.Background(), bb, testAgents(), protocol.Config{ThinkingModel: "claude-sonnet-4"}))

	entries := bb.Read("perspectives", nil)
	require.Len(t, entries, 3)

	byAuthor := map[string]*blackboard.Entry{}
	for _, e := range entries {
		byAuthor[e.Author] = e
		assert.Equal(t, "perspectives", e.Stage)
		usage := e.Metadata["token_usage"].(map[string]any)
		assert.Equal(t, 100, usage["input_tokens"])
		assert.Equal(t, 50, usage["output_tokens"])
	}
	assert.Equal(t, blackboard.ScopeFinancial, byAuthor["CFO"].Metadata["scope"])
	assert.Equal(t, blackboard.ScopeMarket, byAuthor["CMO"].Metadata["scope"])

	for _, req := range caller.recorded() {
		assert.Equal(t, "Question: enter market X?", req.Prompt)
		assert.Equal(t, "claude-sonnet-4", req.Model)
	}
}

func TestParallel_InputIsScopeFiltered(t *testing.T) {
	bb := newBoard("q")
	bb.Write("round1", "financial view", "CFO", "round1",
		map[string]any{"scope": blackboard.ScopeFinancial})
	bb.Write("round1", "market view", "CMO", "round1",
		map[string]any{"scope": blackboard.ScopeMarket})

	caller := &stubCaller{}
	exec := Parallel(caller, ParallelOptions{
		Name:           "round2",
		InputTopic:     "round1",
		OutputTopic:    "round2",
		PromptTemplate: "{input}",
	})
	agents := []*roster.Agent{
		{Key: "cfo", DisplayName: "CFO", ContextScope: []string{blackboard.ScopeFinancial}},
	}
	require.NoError(t, exec(context.Background(), bb, agents, protocol.Config{}))

	reqs := caller.recorded()
	require.Len(t, reqs, 1)
	assert.NotContains(t, reqs[0].Prompt, "market view",
		"financial agent must not see market-scoped entries")
	assert.Contains(t, reqs[0].Prompt, "financial view")
}

func TestSequential_LaterAgentsSeePriorOutputs(t *testing.T) {
	caller := &stubCaller{respond: func(req llm.CallRequest) *llm.CallResult {
		return &llm.CallResult{Text: "said-by-" + req.Agent.Key}
	}}
	exec := Sequential(caller, SequentialOptions{
		Name:           "discussion",
		OutputTopic:    "discussion",
		PromptTemplate: "Prior:\n{prior}",
	})

	bb := newBoard("q")
	agents := []*roster.Agent{
		{Key: "cfo", DisplayName: "CFO"},
		{Key: "cmo", DisplayName: "CMO"},
	}
	require.NoError(t, exec(context.Background(), bb, agents, protocol.Config{}))

	reqs := caller.recorded()
	require.Len(t, reqs, 2)
	assert.NotContains(t, reqs[0].Prompt, "said-by-cfo")
	assert.Contains(t, reqs[1].Prompt, "said-by-cfo", "second agent sees the first's output")

	entries := bb.Read("discussion", nil)
	require.Len(t, entries, 2)
	assert.Equal(t, "CFO", entries[0].Author)
	assert.Equal(t, "CMO", entries[1].Author)
}

func TestMechanical_SingleSystemCallWithParser(t *testing.T) {
	caller := &stubCaller{respond: func(llm.CallRequest) *llm.CallResult {
		return &llm.CallResult{Text: "```json\n[\"a\", \"b\"]\n```", Usage: llm.TokenUsage{InputTokens: 7, OutputTokens: 3}}
	}}
	exec := Mechanical(caller, MechanicalOptions{
		Name:           "dedup",
		InputTopic:     "nodes",
		OutputTopic:    "nodes-clean",
		PromptTemplate: "Dedup:\n{input}",
		Parser:         func(raw string) any { return ExtractJSONList(raw) },
	})

	bb := newBoard("q")
	bb.Write("nodes", "price", "CFO", "extract", nil)
	bb.Write("nodes", "demand", "CMO", "extract", nil)
	require.NoError(t, exec(context.Background(), bb, testAgents(), protocol.Config{OrchestrationModel: "claude-haiku-4"}))

	reqs := caller.recorded()
	require.Len(t, reqs, 1, "mechanical stages make exactly one call")
	assert.True(t, reqs[0].NoTools)
	assert.Nil(t, reqs[0].Agent)
	assert.Equal(t, "claude-haiku-4", reqs[0].Model)
	assert.Contains(t, reqs[0].Prompt, "price")
	assert.Contains(t, reqs[0].Prompt, "demand")

	entry := bb.ReadLatest("nodes-clean", nil)
	require.NotNil(t, entry)
	assert.Equal(t, blackboard.AuthorSystem, entry.Author)
	assert.Equal(t, []any{"a", "b"}, entry.Content)
	assert.Equal(t, blackboard.ScopeAll, entry.Metadata["scope"])
}

func TestSynthesis_MergesTopicsWithReasoningBudget(t *testing.T) {
	caller := &stubCaller{respond: func(llm.CallRequest) *llm.CallResult {
		return &llm.CallResult{Text: "final recommendation"}
	}}
	exec := Synthesis(caller, SynthesisOptions{
		Name:           "synthesis",
		InputTopics:    []string{"perspectives", "failure-modes"},
		PromptTemplate: "Q: {question}\nP: {perspectives}\nF: {failure_modes}",
		AllEntries:     []string{"perspectives"},
	})

	bb := newBoard("the question")
	bb.Write("perspectives", "view A", "CFO", "perspectives", nil)
	bb.Write("perspectives", "view B", "CMO", "perspectives", nil)
	bb.Write("failure-modes", "mode X", blackboard.AuthorSystem, "premortem", nil)
	cfg := protocol.Config{ThinkingModel: "claude-sonnet-4", ReasoningBudget: 8192}
	require.NoError(t, exec(context.Background(), bb, nil, cfg))

	reqs := caller.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, 8192, reqs[0].ReasoningBudget)
	assert.True(t, reqs[0].NoTools)
	assert.Contains(t, reqs[0].Prompt, "view A")
	assert.Contains(t, reqs[0].Prompt, "view B")
	assert.Contains(t, reqs[0].Prompt, "mode X")
	assert.Contains(t, reqs[0].Prompt, "the question")

	entry := bb.ReadLatest(TopicSynthesis, nil)
	require.NotNil(t, entry)
	assert.Equal(t, "final recommendation", entry.Content)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"k": "v"}, ExtractJSONObject(`{"k":"v"}`))
	assert.Equal(t, map[string]any{"k": "v"}, ExtractJSONObject("Here you go:\n```json\n{\"k\": \"v\"}\n```\ndone"))
	assert.Equal(t, map[string]any{"k": "v"}, ExtractJSONObject(`The answer is {"k":"v"} as requested.`))
	assert.Empty(t, ExtractJSONObject("no json here at all"))

	assert.Equal(t, []any{"a", "b"}, ExtractJSONList(`["a","b"]`))
	assert.Equal(t, []any{map[string]any{"k": "v"}}, ExtractJSONList(`{"k":"v"}`), "lone object promotes to a list")
	assert.Empty(t, ExtractJSONList("prose"))

	nested := `Result: {"outer": {"inner": [1, 2]}, "s": "has } brace"} trailing`
	obj := ExtractJSONObject(nested)
	assert.Equal(t, "has } brace", obj["s"])

	assert.Nil(t, ExtractJSONValue(""))
	assert.Nil(t, ExtractJSONValue(`"just a string"`), "bare scalars are not structured output")
}

func TestEntriesTextAttribution(t *testing.T) {
	bb := newBoard("q")
	bb.Write("topic", "first", "CFO", "s", nil)
	bb.Write("topic", map[string]any{"x": 1}, "CMO", "s", nil)

	text := EntriesText(bb, "topic", nil)
	assert.Contains(t, text, "[CFO] first")
	assert.Contains(t, text, `[CMO] {"x":1}`)
	assert.True(t, strings.Index(text, "[CFO]") < strings.Index(text, "[CMO]"))

	assert.Empty(t, EntriesText(bb, "missing", nil))
}
