package protocols

import (
	"context"
	"sort"

	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyPremortem imagines the decision has already failed and works backwards.
const KeyPremortem = "premortem"

// Failure mode classifications.
const (
	FailureConvergent = "convergent"
	FailureUnique     = "unique"
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyPremortem,
		ProtocolID:   KeyPremortem,
		Name:         "Pre-mortem",
		Category:     protocol.CategoryAdversary,
		ProblemTypes: []string{"risk", "plan-review"},
		CostTier:     "medium",
		MinAgents:    2,
		MaxAgents:    8,
		Description:  "Agents narrate how the decision failed; failure modes are extracted and classified convergent (named by several agents) or unique, then ranked in synthesis.",
		WhenToUse:    "Before committing to a plan whose failure would be costly.",
		WhenNotToUse: "Exploratory questions with no plan to kill.",
	}, func(c protocol.Caller) protocol.Runner { return &premortem{caller: c} })
}

type premortem struct {
	caller protocol.Caller
}

// FailureMode is one extracted failure narrative cluster.
type FailureMode struct {
	Description    string   `json:"description"`
	NamedBy        []string `json:"named_by"`
	Classification string   `json:"classification"`
}

// ClassifyFailureModes parses extraction output into failure modes and sorts
// them convergent-first (then by breadth of agreement).
func ClassifyFailureModes(raw string) []FailureMode {
	var modes []FailureMode
	for _, item := range stages.ExtractJSONList(raw) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		mode := FailureMode{
			Description: str(m["description"]),
			NamedBy:     DedupStrings(stringList(m["named_by"])),
		}
		if mode.Description == "" {
			continue
		}
		mode.Classification = FailureUnique
		if len(mode.NamedBy) >= 2 {
			mode.Classification = FailureConvergent
		}
		modes = append(modes, mode)
	}

	sort.SliceStable(modes, func(i, j int) bool {
		return len(modes[i].NamedBy) > len(modes[j].NamedBy)
	})
	return modes
}

func (p *premortem) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyPremortem, Stages: []protocol.Stage{
		{
			Name:    "narratives",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "narratives",
				OutputTopic: "narratives",
				PromptTemplate: "It is eighteen months from now. The following decision was taken and has failed badly:\n\n{question}\n\n" +
					"Write the post-mortem from your vantage point: what specifically went wrong, in what order, and what early warning was missed.",
			}),
		},
		{
			Name:    "failure-modes",
			Trigger: protocol.After("narratives"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "failure-modes",
				InputTopic:  "narratives",
				OutputTopic: "failure-modes",
				System:      "You extract structured failure modes from narratives. Output only JSON.",
				PromptTemplate: "Failure narratives (attributed by [name]):\n{input}\n\n" +
					`Cluster these into distinct failure modes. Output a JSON list of {"description","named_by":[agent names]} where named_by lists every narrator who described that mode.`,
				Parser: func(raw string) any { return ClassifyFailureModes(raw) },
			}),
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("failure-modes"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"failure-modes"},
				PromptTemplate: "Decision: {question}\n\nExtracted failure modes (convergent modes first):\n{failure_modes}\n\n" +
					"Rank the risks with convergent modes first, propose a mitigation or tripwire for each, and state whether the decision should proceed as-is, amended, or not at all.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}
	return protocol.PerspectivesResult(perspectivesFrom(bb, "narratives"), synthesisText(bb)), nil
}
