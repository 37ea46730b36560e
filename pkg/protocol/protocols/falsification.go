package protocols

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyFalsification gates a recommendation: generate the conditions that
// would falsify it, search for evidence of each, and render a verdict.
const KeyFalsification = "falsification"

// Verdicts, strongest survival first.
const (
	VerdictSurvives  = "SURVIVES"
	VerdictWeakened  = "WEAKENED"
	VerdictFalsified = "FALSIFIED"
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyFalsification,
		ProtocolID:   KeyFalsification,
		Name:         "Falsification Gate",
		Category:     protocol.CategoryAdversary,
		ProblemTypes: []string{"validation", "go-no-go"},
		CostTier:     "high",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "Derive the conditions that would falsify the recommendation, hunt for evidence of each, and rule SURVIVES, WEAKENED, or FALSIFIED.",
		WhenToUse:    "Final gate before acting on a recommendation.",
		WhenNotToUse: "Generating the recommendation in the first place.",
	}, func(c protocol.Caller) protocol.Runner { return &falsification{caller: c} })
}

type falsification struct {
	caller protocol.Caller
}

// ParseVerdict finds the verdict keyword in judge output; absent keywords
// read as WEAKENED, the cautious middle.
func ParseVerdict(text string) string {
	upper := strings.ToUpper(text)
	// FALSIFIED dominates, then WEAKENED; SURVIVES only when alone.
	if strings.Contains(upper, VerdictFalsified) {
		return VerdictFalsified
	}
	if strings.Contains(upper, VerdictWeakened) {
		return VerdictWeakened
	}
	if strings.Contains(upper, VerdictSurvives) {
		return VerdictSurvives
	}
	return VerdictWeakened
}

func (p *falsification) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyFalsification, Stages: []protocol.Stage{
		{
			Name:    "conditions",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "conditions",
				OutputTopic: "conditions",
				PromptTemplate: "Recommendation under test:\n\n{question}\n\n" +
					"State the conditions that, if true, would falsify this recommendation: observable, checkable statements. Output a JSON list of strings.",
			}),
		},
		{
			Name:    "conditions-dedup",
			Trigger: protocol.After("conditions"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "conditions-dedup",
				InputTopic:  "conditions",
				OutputTopic: "conditions-clean",
				System:      "You merge near-duplicate falsification conditions. Output only JSON.",
				PromptTemplate: "Proposed falsification conditions:\n{input}\n\n" +
					"Merge duplicates. Output the distinct conditions as a JSON list of strings.",
				Parser: func(raw string) any {
					return DedupStrings(stringList(stages.ExtractJSONValue(raw)))
				},
			}),
		},
		{
			Name:    "evidence-search",
			Trigger: protocol.After("conditions-dedup"),
			Exec:    p.searchEvidence,
		},
		{
			Name:    "verdict",
			Trigger: protocol.After("evidence-search"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "verdict",
				InputTopic:  "evidence",
				OutputTopic: stages.TopicSynthesis,
				System:      "You are the falsification judge. Rule strictly on the evidence presented.",
				PromptTemplate: "Recommendation: {question}\n\nEvidence gathered per falsification condition:\n{input}\n\n" +
					"Rule exactly one verdict — SURVIVES (no condition substantiated), WEAKENED (some conditions partially substantiated), or FALSIFIED (a condition substantiated) — then justify it condition by condition.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	verdictText := synthesisText(bb)
	outs := []protocol.StageOutput{
		{Name: "conditions", Output: stages.LatestText(bb, "conditions-clean", nil)},
		{Name: "evidence", Output: stages.EntriesText(bb, "evidence", nil)},
		{Name: "verdict", Output: ParseVerdict(verdictText)},
	}
	return protocol.StagesResult(outs, verdictText), nil
}

// searchEvidence fans out one evidence hunt per condition, conditions
// assigned round-robin across agents (these calls may use tools).
func (p *falsification) searchEvidence(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
	conditions := entryStrings(bb, "conditions-clean")
	if len(conditions) == 0 || len(agents) == 0 {
		bb.Write("evidence", "(no falsification conditions produced)", blackboard.AuthorSystem,
			"evidence-search", systemMeta())
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(stages.MaxFanOut)

	for i, condition := range conditions {
		agent := agents[i%len(agents)]
		g.Go(func() error {
			res, err := p.caller.Call(ctx, llm.CallRequest{
				Agent: agent,
				Model: cfg.ThinkingModel,
				Prompt: "Falsification condition to investigate:\n\n" + condition + "\n\n" +
					"Search for evidence that this condition holds. Report what you found, how strongly it substantiates the condition, and your sources.",
				Meta: llm.Meta{RunID: cfg.RunID, AgentName: stages.AuthorName(agent)},
			})
			if err != nil {
				return err
			}
			bb.Write("evidence", res.Text, stages.AuthorName(agent), "evidence-search", map[string]any{
				"scope":     blackboard.ScopeAll,
				"condition": condition,
				"token_usage": map[string]any{
					"input_tokens":  res.Usage.InputTokens,
					"output_tokens": res.Usage.OutputTokens,
				},
			})
			return nil
		})
	}
	return g.Wait()
}
