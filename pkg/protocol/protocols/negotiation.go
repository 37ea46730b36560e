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

// KeyNegotiation is constraint negotiation: rounds of positions with
// mechanical constraint extraction in between, so each agent bargains
// against an explicit table of peer constraints.
const KeyNegotiation = "negotiation"

const defaultNegotiationRounds = 2

func init() {
	protocol.Register(protocol.Manifest{
		Key:            KeyNegotiation,
		ProtocolID:     KeyNegotiation,
		Name:           "Constraint Negotiation",
		Category:       protocol.CategoryDecision,
		ProblemTypes:   []string{"resource-allocation", "trade-off"},
		CostTier:       "high",
		MinAgents:      2,
		MaxAgents:      6,
		SupportsRounds: true,
		Description:    "Agents state positions; hard and soft constraints are extracted after each round and fed back as peer tables; conflicts trigger an adjudication pass before synthesis.",
		WhenToUse:      "Allocation decisions where each function holds real constraints.",
		WhenNotToUse:   "Questions without competing claims on the same resource.",
	}, func(c protocol.Caller) protocol.Runner { return &negotiation{caller: c} })
}

type negotiation struct {
	caller protocol.Caller
}

// Constraint is one declared bargaining constraint.
type Constraint struct {
	Agent       string `json:"agent"`
	Kind        string `json:"kind"`
	Strength    string `json:"strength"` // hard | soft
	Description string `json:"description"`
	Value       string `json:"value"`
}

// ParseConstraints reads a JSON constraint list out of mechanical-stage
// output. Unparseable items are dropped; strength defaults to soft.
func ParseConstraints(raw string) []Constraint {
	var out []Constraint
	for _, item := range stages.ExtractJSONList(raw) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		c := Constraint{
			Agent:       str(m["agent"]),
			Kind:        str(m["kind"]),
			Strength:    strings.ToLower(str(m["strength"])),
			Description: str(m["description"]),
			Value:       str(m["value"]),
		}
		if c.Strength != "hard" {
			c.Strength = "soft"
		}
		if c.Description == "" && c.Kind == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ConstraintTable renders peers' constraints, excluding the reader's own.
func ConstraintTable(all []Constraint, exclude string) string {
	var b strings.Builder
	for _, c := range all {
		if c.Agent == exclude {
			continue
		}
		fmt.Fprintf(&b, "- %s [%s/%s] %s", c.Agent, c.Kind, c.Strength, c.Description)
		if c.Value != "" {
			fmt.Fprintf(&b, " (%s)", c.Value)
		}
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return "(no peer constraints declared yet)"
	}
	return strings.TrimRight(b.String(), "\n")
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

const topicConstraints = "constraints"

func latestConstraints(bb *blackboard.Blackboard) []Constraint {
	entry := bb.ReadLatest(topicConstraints, nil)
	if entry == nil {
		return nil
	}
	cs, _ := entry.Content.([]Constraint)
	return cs
}

func (p *negotiation) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	rounds := cfg.Rounds
	if rounds <= 0 {
		rounds = defaultNegotiationRounds
	}

	var stageList []protocol.Stage
	for i := 1; i <= rounds; i++ {
		name := roundTopic(i)
		trigger := protocol.Always()
		if i > 1 {
			trigger = protocol.After(fmt.Sprintf("extract%d", i-1))
		}
		template := "Negotiation subject:\n\n{question}\n\n" +
			"State your opening position and declare your constraints: for each, its kind, whether it is hard or soft, and the value at stake."
		if i > 1 {
			template = "Negotiation subject:\n\n{question}\n\nYour peers' declared constraints:\n{peer_constraints}\n\n" +
				"Your prior positions (as visible to you):\n{prior_rounds}\n\n" +
				"Negotiate: where can you concede on soft constraints, and what do you require in return? Restate your position."
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
					return map[string]string{
						"peer_constraints": ConstraintTable(latestConstraints(bb), stages.AuthorName(agent)),
						"prior_rounds":     priorRounds(bb, round, agent),
					}
				},
			}),
		})

		extractName := fmt.Sprintf("extract%d", i)
		stageList = append(stageList, protocol.Stage{
			Name:    extractName,
			Trigger: protocol.After(name),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        extractName,
				InputTopic:  name,
				OutputTopic: topicConstraints,
				System:      "You extract structured constraints from negotiation text. Output only JSON.",
				PromptTemplate: "Positions (attributed by [name]):\n{input}\n\n" +
					`Extract every declared constraint as a JSON list of {"agent","kind","strength","description","value"} with strength "hard" or "soft".`,
				Parser: func(raw string) any { return ParseConstraints(raw) },
			}),
		})
	}

	finalRound := roundTopic(rounds)
	finalExtract := fmt.Sprintf("extract%d", rounds)

	stageList = append(stageList, protocol.Stage{
		Name: "adjudication",
		Trigger: func(bb *blackboard.Blackboard) bool {
			return bb.StagesCompleted()[finalExtract] && len(bb.Conflicts(finalRound)) > 0
		},
		Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
			Name:        "adjudication",
			InputTopic:  finalRound,
			OutputTopic: "adjudication",
			System:      "You adjudicate unresolved negotiation conflicts.",
			PromptTemplate: "Final positions still in conflict:\n{input}\n\n" +
				"Identify the irreconcilable pairs and propose the least-cost resolution for each, honoring hard constraints over soft ones.",
		}),
	})

	stageList = append(stageList, protocol.Stage{
		Name: "synthesis",
		// Fires after adjudication when there was conflict, directly after
		// the final extraction otherwise.
		Trigger: func(bb *blackboard.Blackboard) bool {
			done := bb.StagesCompleted()
			if done["adjudication"] {
				return true
			}
			return done[finalExtract] && len(bb.Conflicts(finalRound)) == 0
		},
		Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
			Name:        "synthesis",
			InputTopics: []string{finalRound, topicConstraints, "adjudication"},
			AllEntries:  []string{finalRound},
			PromptTemplate: "Subject: {question}\n\nFinal positions:\n{" + finalRound + "}\n\n" +
				"Declared constraints:\n{constraints}\n\nAdjudication (if any):\n{adjudication}\n\n" +
				"Write the negotiated settlement: what each party gets, which soft constraints were traded, and which hard constraints bound the outcome.",
		}),
	})

	bb, err := protocol.Run(ctx, protocol.Definition{ProtocolID: KeyNegotiation, Stages: stageList}, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var out []protocol.Round
	for i := 1; i <= rounds; i++ {
		out = append(out, protocol.Round{Number: i, Responses: perspectivesFrom(bb, roundTopic(i))})
	}
	return protocol.RoundsResult(out, synthesisText(bb)), nil
}
