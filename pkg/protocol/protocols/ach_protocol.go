package protocols

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyACH is Analysis of Competing Hypotheses: score every evidence item
// against every hypothesis and eliminate the hypotheses the evidence
// contradicts most.
const KeyACH = "ach"

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyACH,
		ProtocolID:   KeyACH,
		Name:         "Competing Hypotheses",
		Category:     protocol.CategoryAnalysis,
		ProblemTypes: []string{"diagnosis", "root-cause", "intelligence"},
		CostTier:     "high",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "Generate hypotheses and evidence, score the full matrix C/I/N per agent, aggregate by majority, eliminate the most-contradicted hypotheses, and rank evidence by diagnosticity.",
		WhenToUse:    "Explaining an observed situation with several plausible causes.",
		WhenNotToUse: "Forward-looking choices with no evidence base yet.",
	}, func(c protocol.Caller) protocol.Runner { return &ach{caller: c} })
}

type ach struct {
	caller protocol.Caller
}

// ACHAnalysis is the aggregated matrix written by the analysis stage and
// returned raw to the controller.
type ACHAnalysis struct {
	Hypotheses    []string                     `json:"hypotheses"`
	Evidence      []string                     `json:"evidence"`
	Matrix        map[string]map[string]string `json:"matrix"` // evidence → hypothesis → score
	Inconsistency map[string]int               `json:"inconsistency"`
	Eliminated    map[string]bool              `json:"eliminated"`
	Diagnosticity map[string]float64           `json:"diagnosticity"`
	Surviving     []string                     `json:"surviving"`
}

func entryStrings(bb *blackboard.Blackboard, topic string) []string {
	entry := bb.ReadLatest(topic, nil)
	if entry == nil {
		return nil
	}
	ss, _ := entry.Content.([]string)
	return ss
}

func normalizeScore(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case ScoreConsistent, "CONSISTENT":
		return ScoreConsistent
	case ScoreInconsistent, "INCONSISTENT":
		return ScoreInconsistent
	default:
		return ScoreNeutral
	}
}

func (p *ach) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyACH, Stages: []protocol.Stage{
		{
			Name:    "hypotheses",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "hypotheses",
				OutputTopic: "hypotheses",
				PromptTemplate: "Situation to explain:\n\n{question}\n\n" +
					"Propose two or three competing hypotheses from your vantage point. Output a JSON list of short hypothesis statements.",
			}),
		},
		{
			Name:    "hypotheses-dedup",
			Trigger: protocol.After("hypotheses"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "hypotheses-dedup",
				InputTopic:  "hypotheses",
				OutputTopic: "hypotheses-clean",
				System:      "You merge near-duplicate hypotheses. Output only JSON.",
				PromptTemplate: "Proposed hypotheses:\n{input}\n\n" +
					"Merge duplicates and near-duplicates. Output the distinct hypotheses as a JSON list of strings.",
				Parser: func(raw string) any {
					return DedupStrings(stringList(stages.ExtractJSONValue(raw)))
				},
			}),
		},
		{
			Name:    "evidence",
			Trigger: protocol.After("hypotheses-dedup"),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "evidence",
				InputTopic:  "hypotheses-clean",
				OutputTopic: "evidence",
				PromptTemplate: "Situation:\n\n{question}\n\nHypotheses under analysis:\n{input}\n\n" +
					"List the concrete evidence items you know of that bear on these hypotheses, for or against. Output a JSON list of short evidence statements.",
			}),
		},
		{
			Name:    "evidence-dedup",
			Trigger: protocol.After("evidence"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "evidence-dedup",
				InputTopic:  "evidence",
				OutputTopic: "evidence-clean",
				System:      "You merge near-duplicate evidence items. Output only JSON.",
				PromptTemplate: "Evidence items:\n{input}\n\n" +
					"Merge duplicates. Output the distinct evidence items as a JSON list of strings.",
				Parser: func(raw string) any {
					return DedupStrings(stringList(stages.ExtractJSONValue(raw)))
				},
			}),
		},
		{
			Name:    "matrix",
			Trigger: protocol.After("evidence-dedup"),
			Exec:    p.scoreMatrix,
		},
		{
			Name:    "analysis",
			Trigger: protocol.After("matrix"),
			Exec:    p.aggregate,
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("analysis"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"ach-analysis"},
				PromptTemplate: "Situation: {question}\n\nAggregated hypothesis matrix:\n{ach_analysis}\n\n" +
					"Interpret the analysis: which hypotheses survive, which evidence was most diagnostic, and what would most cheaply discriminate between the survivors.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	entry := bb.ReadLatest("ach-analysis", nil)
	var analysis any
	if entry != nil {
		analysis = entry.Content
	}
	return protocol.RawResult(analysis, synthesisText(bb)), nil
}

// scoreMatrix fans out over the agent × evidence product: every agent scores
// one evidence item against every hypothesis per call.
func (p *ach) scoreMatrix(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
	hypotheses := entryStrings(bb, "hypotheses-clean")
	evidence := entryStrings(bb, "evidence-clean")
	if len(hypotheses) == 0 || len(evidence) == 0 {
		bb.Write("matrix", map[string]string{}, blackboard.AuthorSystem, "matrix", systemMeta())
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(stages.MaxFanOut)

	for _, agent := range agents {
		for _, item := range evidence {
			g.Go(func() error {
				prompt := fmt.Sprintf(
					"Hypotheses:\n%s\n\nEvidence item:\n%s\n\n"+
						"Score this evidence against each hypothesis: C (consistent), I (inconsistent), or N (neutral). "+
						"Output a JSON object mapping each hypothesis verbatim to its score.",
					"- "+strings.Join(hypotheses, "\n- "), item)

				res, err := p.caller.Call(ctx, llm.CallRequest{
					Agent:   agent,
					Model:   cfg.ThinkingModel,
					Prompt:  prompt,
					NoTools: true,
					Meta:    llm.Meta{RunID: cfg.RunID, AgentName: stages.AuthorName(agent)},
				})
				if err != nil {
					return err
				}

				scores := make(map[string]string, len(hypotheses))
				parsed := stages.ExtractJSONObject(res.Text)
				for _, h := range hypotheses {
					if s, ok := parsed[h].(string); ok {
						scores[h] = normalizeScore(s)
					} else {
						scores[h] = ScoreNeutral
					}
				}
				bb.Write("matrix", scores, stages.AuthorName(agent), "matrix", map[string]any{
					"scope":    blackboard.ScopeAll,
					"evidence": item,
					"token_usage": map[string]any{
						"input_tokens":  res.Usage.InputTokens,
						"output_tokens": res.Usage.OutputTokens,
					},
				})
				return nil
			})
		}
	}
	return g.Wait()
}

// aggregate majority-votes the per-agent scores, eliminates the
// most-contradicted hypotheses, and rates evidence diagnosticity. Pure
// compute, no model call.
func (p *ach) aggregate(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
	hypotheses := entryStrings(bb, "hypotheses-clean")
	evidence := entryStrings(bb, "evidence-clean")

	votes := make(map[string]map[string][]string) // evidence → hypothesis → agent scores
	for _, entry := range bb.Read("matrix", nil) {
		item, _ := entry.Metadata["evidence"].(string)
		scores, ok := entry.Content.(map[string]string)
		if item == "" || !ok {
			continue
		}
		if votes[item] == nil {
			votes[item] = make(map[string][]string)
		}
		for h, s := range scores {
			votes[item][h] = append(votes[item][h], s)
		}
	}

	matrix := make(map[string]map[string]string, len(votes))
	for item, byHypothesis := range votes {
		row := make(map[string]string, len(byHypothesis))
		for h, vs := range byHypothesis {
			row[h] = MajorityScore(vs)
		}
		matrix[item] = row
	}

	counts := InconsistencyCounts(matrix)
	eliminated := EliminateHypotheses(counts)

	diagnosticity := make(map[string]float64, len(matrix))
	for _, item := range evidence {
		row := matrix[item]
		scores := make([]string, 0, len(hypotheses))
		for _, h := range hypotheses {
			if s, ok := row[h]; ok {
				scores = append(scores, s)
			} else {
				scores = append(scores, ScoreNeutral)
			}
		}
		diagnosticity[item] = Diagnosticity(scores)
	}

	var surviving []string
	for _, h := range hypotheses {
		if !eliminated[h] {
			surviving = append(surviving, h)
		}
	}

	bb.Write("ach-analysis", &ACHAnalysis{
		Hypotheses:    hypotheses,
		Evidence:      evidence,
		Matrix:        matrix,
		Inconsistency: counts,
		Eliminated:    eliminated,
		Diagnosticity: diagnosticity,
		Surviving:     surviving,
	}, blackboard.AuthorSystem, "analysis", systemMeta())
	return nil
}
