package protocols

import (
	"context"
	"fmt"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyDelphi runs anonymized estimation rounds until the estimates converge
// or the round budget runs out.
const KeyDelphi = "delphi"

const defaultDelphiRounds = 3

func init() {
	protocol.Register(protocol.Manifest{
		Key:            KeyDelphi,
		ProtocolID:     KeyDelphi,
		Name:           "Delphi Estimation",
		Category:       protocol.CategoryEstimation,
		ProblemTypes:   []string{"estimation", "forecasting"},
		CostTier:       "medium",
		MinAgents:      3,
		MaxAgents:      8,
		SupportsRounds: true,
		Description:    "Rounds of independent point+range estimates with anonymized feedback; stops early when the inter-quartile spread falls below 15% of the median.",
		WhenToUse:      "Quantities nobody can measure but several people can estimate.",
		WhenNotToUse:   "Questions without a numeric answer.",
	}, func(c protocol.Caller) protocol.Runner { return &delphi{caller: c} })
}

type delphi struct {
	caller protocol.Caller
}

// DelphiStats is the per-round convergence record.
type DelphiStats struct {
	Round     int       `json:"round"`
	Estimates []float64 `json:"estimates"`
	Median    float64   `json:"median"`
	IQR       float64   `json:"iqr"`
	Converged bool      `json:"converged"`
}

func statsStage(i int) string { return fmt.Sprintf("stats%d", i) }

// estimateFrom pulls the point estimate out of one round entry.
func estimateFrom(entry *blackboard.Entry) (float64, string, bool) {
	parsed := stages.ExtractJSONObject(stages.ContentText(entry))
	reasoning := str(parsed["reasoning"])
	switch v := parsed["estimate"].(type) {
	case float64:
		return v, reasoning, true
	}
	return 0, reasoning, false
}

// converged reports whether any completed round has already converged.
func delphiConverged(bb *blackboard.Blackboard) bool {
	for _, entry := range bb.Read("round-stats", nil) {
		if s, ok := entry.Content.(*DelphiStats); ok && s.Converged {
			return true
		}
	}
	return false
}

// anonymizedPrior renders the previous round's estimates with positional
// labels, names stripped.
func anonymizedPrior(bb *blackboard.Blackboard, round int) string {
	entries := bb.Read(roundTopic(round-1), nil)
	var b strings.Builder
	for i, entry := range entries {
		estimate, reasoning, ok := estimateFrom(entry)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Estimator %d: %g — %s\n", i+1, estimate, reasoning)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *delphi) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	rounds := cfg.Rounds
	if rounds <= 0 {
		rounds = defaultDelphiRounds
	}

	var stageList []protocol.Stage
	for i := 1; i <= rounds; i++ {
		name := roundTopic(i)
		round := i

		var trigger protocol.Trigger
		if i == 1 {
			trigger = protocol.Always()
		} else {
			prevStats := statsStage(i - 1)
			trigger = func(bb *blackboard.Blackboard) bool {
				return bb.StagesCompleted()[prevStats] && !delphiConverged(bb)
			}
		}

		template := "Estimation question:\n\n{question}\n\n" +
			`Give your estimate. Output a JSON object {"estimate": number, "low": number, "high": number, "reasoning": "..."}.`
		if i > 1 {
			template = "Estimation question:\n\n{question}\n\nAnonymized estimates from the previous round:\n{prior_estimates}\n\n" +
				"Reconsider in light of the group. " +
				`Output a JSON object {"estimate": number, "low": number, "high": number, "reasoning": "..."}.`
		}

		stageList = append(stageList, protocol.Stage{
			Name:    name,
			Trigger: trigger,
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:           name,
				OutputTopic:    name,
				PromptTemplate: template,
				ScopeOverride:  blackboard.ScopeAll,
				ContextVars: func(bb *blackboard.Blackboard, _ *roster.Agent) map[string]string {
					if round == 1 {
						return nil
					}
					return map[string]string{"prior_estimates": anonymizedPrior(bb, round)}
				},
			}),
		})

		stageList = append(stageList, protocol.Stage{
			Name:    statsStage(i),
			Trigger: protocol.After(name),
			Exec: func(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
				var estimates []float64
				for _, entry := range bb.Read(roundTopic(round), nil) {
					if v, _, ok := estimateFrom(entry); ok {
						estimates = append(estimates, v)
					}
				}
				bb.Write("round-stats", &DelphiStats{
					Round:     round,
					Estimates: estimates,
					Median:    Median(estimates),
					IQR:       IQR(estimates),
					Converged: Converged(estimates),
				}, blackboard.AuthorSystem, statsStage(round), systemMeta())
				return nil
			},
		})
	}

	stageList = append(stageList, protocol.Stage{
		Name: "synthesis",
		// After convergence, or after the final round's stats.
		Trigger: func(bb *blackboard.Blackboard) bool {
			return delphiConverged(bb) || bb.StagesCompleted()[statsStage(rounds)]
		},
		Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
			Name:        "synthesis",
			InputTopics: []string{"round-stats"},
			AllEntries:  []string{"round-stats"},
			PromptTemplate: "Estimation question: {question}\n\nRound statistics:\n{round_stats}\n\n" +
				"Report the converged estimate (median and range), how the group moved across rounds, and the confidence the spread justifies.",
		}),
	})

	bb, err := protocol.Run(ctx, protocol.Definition{ProtocolID: KeyDelphi, Stages: stageList}, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var out []protocol.Round
	for i := 1; i <= rounds; i++ {
		responses := perspectivesFrom(bb, roundTopic(i))
		if len(responses) == 0 {
			break // converged early
		}
		out = append(out, protocol.Round{Number: i, Responses: responses})
	}
	return protocol.RoundsResult(out, synthesisText(bb)), nil
}
