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

// KeyDebate is the multi-round debate: each round every agent argues against
// what it can see of the prior rounds, scope filter applied.
const KeyDebate = "debate"

const defaultDebateRounds = 2

func init() {
	protocol.Register(protocol.Manifest{
		Key:            KeyDebate,
		ProtocolID:     KeyDebate,
		Name:           "Structured Debate",
		Category:       protocol.CategoryDecision,
		ProblemTypes:   []string{"contested", "trade-off"},
		CostTier:       "medium",
		MinAgents:      2,
		MaxAgents:      6,
		SupportsRounds: true,
		Description:    "N rounds of positions and rebuttals; each agent sees only entries within its scope; a synthesis adjudicates.",
		WhenToUse:      "Decisions with genuine tension between functions.",
		WhenNotToUse:   "Questions with no opposing positions to argue.",
	}, func(c protocol.Caller) protocol.Runner { return &debate{caller: c} })
}

type debate struct {
	caller protocol.Caller
}

func roundTopic(i int) string { return fmt.Sprintf("round%d", i) }

// priorRounds renders every earlier round the agent is allowed to see.
func priorRounds(bb *blackboard.Blackboard, upto int, agent *roster.Agent) string {
	var b strings.Builder
	for i := 1; i < upto; i++ {
		text := stages.EntriesText(bb, roundTopic(i), agent.Reader())
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "--- Round %d ---\n%s\n\n", i, text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *debate) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	rounds := cfg.Rounds
	if rounds <= 0 {
		rounds = defaultDebateRounds
	}

	var stageList []protocol.Stage
	for i := 1; i <= rounds; i++ {
		name := roundTopic(i)
		trigger := protocol.Always()
		if i > 1 {
			trigger = protocol.After(roundTopic(i - 1))
		}
		template := "Motion under debate:\n\n{question}\n\n" +
			"Open the debate from your standpoint: your position and the two strongest arguments for it."
		if i > 1 {
			template = "Motion under debate:\n\n{question}\n\nThe debate so far (as visible to you):\n{prior_rounds}\n\n" +
				"Rebut the strongest opposing argument you can see, then restate your position, updated if warranted."
		}
		round := i
		stageList = append(stageList, protocol.Stage{
			Name:    name,
			Trigger: trigger,
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:           name,
				OutputTopic:    name,
				PromptTemplate: template,
				ContextVars: func(bb *blackboard.Blackboard, agent *roster.Agent) map[string]string {
					return map[string]string{"prior_rounds": priorRounds(bb, round, agent)}
				},
			}),
		})
	}

	finalRound := roundTopic(rounds)
	stageList = append(stageList, protocol.Stage{
		Name:    "synthesis",
		Trigger: protocol.After(finalRound),
		Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
			Name:        "synthesis",
			InputTopics: []string{finalRound},
			AllEntries:  []string{finalRound},
			PromptTemplate: "Motion: {question}\n\nFinal-round positions:\n{" + finalRound + "}\n\n" +
				"Adjudicate the debate: which arguments survived contact, where positions converged, and the resulting recommendation.",
		}),
	})

	bb, err := protocol.Run(ctx, protocol.Definition{ProtocolID: KeyDebate, Stages: stageList}, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var out []protocol.Round
	for i := 1; i <= rounds; i++ {
		out = append(out, protocol.Round{Number: i, Responses: perspectivesFrom(bb, roundTopic(i))})
	}
	return protocol.RoundsResult(out, synthesisText(bb)), nil
}
