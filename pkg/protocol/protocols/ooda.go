package protocols

import (
	"context"
	"fmt"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyOODA runs short observe-orient-decide-act cycles, each threading the
// previous cycle's action into the next observation.
const KeyOODA = "ooda"

const (
	defaultOODACycles = 3
	// Cycles run on a compressed reasoning budget; speed over depth.
	oodaReasoningBudget = 2048
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:            KeyOODA,
		ProtocolID:     KeyOODA,
		Name:           "OODA Cycles",
		Category:       protocol.CategoryCore,
		ProblemTypes:   []string{"fast-moving", "operational"},
		CostTier:       "medium",
		MinAgents:      2,
		MaxAgents:      6,
		SupportsRounds: true,
		Description:    "Short observe-orient-decide-act cycles with compressed thinking; each cycle's action feeds the next observation.",
		WhenToUse:      "Fast-moving situations rewarding tempo over thoroughness.",
		WhenNotToUse:   "Decisions that deserve one deep pass.",
	}, func(c protocol.Caller) protocol.Runner { return &ooda{caller: c} })
}

type ooda struct {
	caller protocol.Caller
}

func cycleTopic(i int) string { return fmt.Sprintf("cycle%d", i) }
func actTopic(i int) string   { return fmt.Sprintf("act%d", i) }

func (p *ooda) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	cycles := cfg.Rounds
	if cycles <= 0 {
		cycles = defaultOODACycles
	}

	// Compressed budget for every cycle call.
	cycleCfg := cfg
	if cycleCfg.ReasoningBudget == 0 || cycleCfg.ReasoningBudget > oodaReasoningBudget {
		cycleCfg.ReasoningBudget = oodaReasoningBudget
	}

	var stageList []protocol.Stage
	for i := 1; i <= cycles; i++ {
		cycle := i
		name := cycleTopic(i)

		trigger := protocol.Always()
		if i > 1 {
			trigger = protocol.After(actTopic(i - 1))
		}

		template := "Situation:\n\n{question}\n\n" +
			"Run one fast OODA pass. Observe: the facts that matter now. Orient: what they mean from your vantage point. Decide: the single best next action. Act: state that action and its immediate expected effect. Keep it terse."
		if i > 1 {
			template = "Situation:\n\n{question}\n\nAction taken last cycle:\n{prev_act}\n\n" +
				"Run the next OODA pass assuming that action landed. Observe what changed, orient, decide, and state the next action. Keep it terse."
		}

		stageList = append(stageList, protocol.Stage{
			Name:    name,
			Trigger: trigger,
			Exec: func(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, _ protocol.Config) error {
				exec := stages.Parallel(p.caller, stages.ParallelOptions{
					Name:           name,
					OutputTopic:    name,
					PromptTemplate: template,
					ContextVars: func(bb *blackboard.Blackboard, _ *roster.Agent) map[string]string {
						if cycle == 1 {
							return nil
						}
						return map[string]string{"prev_act": stages.LatestText(bb, actTopic(cycle-1), nil)}
					},
				})
				return exec(ctx, bb, agents, cycleCfg)
			},
		})

		stageList = append(stageList, protocol.Stage{
			Name:    actTopic(i),
			Trigger: protocol.After(name),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:           actTopic(i),
				InputTopic:     name,
				OutputTopic:    actTopic(i),
				System:         "You consolidate parallel OODA passes into one action.",
				PromptTemplate: "Cycle outputs:\n{input}\n\nConsolidate into the single action the group takes this cycle, one sentence, plus its success signal.",
			}),
		})
	}

	stageList = append(stageList, protocol.Stage{
		Name:    "synthesis",
		Trigger: protocol.After(actTopic(cycles)),
		Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
			Name:        "synthesis",
			InputTopics: []string{actTopic(cycles)},
			PromptTemplate: "Situation: {question}\n\nFinal cycle action:\n{" + actTopic(cycles) + "}\n\n" +
				"Summarize the trajectory across cycles: the sequence of actions, what each observation changed, and the standing course of action.",
		}),
	})

	bb, err := protocol.Run(ctx, protocol.Definition{ProtocolID: KeyOODA, Stages: stageList}, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var out []protocol.Round
	for i := 1; i <= cycles; i++ {
		out = append(out, protocol.Round{Number: i, Responses: perspectivesFrom(bb, cycleTopic(i))})
	}
	return protocol.RoundsResult(out, synthesisText(bb)), nil
}
