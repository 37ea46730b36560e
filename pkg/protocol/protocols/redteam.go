package protocols

import (
	"context"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyRedTeam runs red/blue/white team review of a plan: attack, defend,
// arbitrate. Team assignment is dynamic: a mechanical stage clusters the
// roster before the team stages run.
const KeyRedTeam = "red-team"

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyRedTeam,
		ProtocolID:   KeyRedTeam,
		Name:         "Red Team / Blue Team",
		Category:     protocol.CategoryAdversary,
		ProblemTypes: []string{"plan-review", "security", "risk"},
		CostTier:     "high",
		MinAgents:    3,
		MaxAgents:    9,
		Description:  "A drafted plan is attacked by a red team, defended by a blue team, and arbitrated by a white team before final adjudication.",
		WhenToUse:    "Plans with failure modes an adversary or reality would exploit.",
		WhenNotToUse: "Early ideation with nothing concrete to attack.",
	}, func(c protocol.Caller) protocol.Runner { return &redTeam{caller: c} })
}

type redTeam struct {
	caller protocol.Caller
}

// teamAssignments reads the clustering stage's output; the fallback is a
// deterministic round-robin over red/blue/white.
func teamAssignments(bb *blackboard.Blackboard, agents []*roster.Agent) map[string][]*roster.Agent {
	assigned := map[string][]*roster.Agent{}
	byName := map[string]*roster.Agent{}
	for _, a := range agents {
		byName[stages.AuthorName(a)] = a
		byName[a.Key] = a
	}

	if entry := bb.ReadLatest("teams", nil); entry != nil {
		if m, ok := entry.Content.(map[string]any); ok {
			for _, team := range []string{"red", "blue", "white"} {
				for _, name := range stringList(m[team]) {
					if a, ok := byName[strings.TrimSpace(name)]; ok {
						assigned[team] = append(assigned[team], a)
					}
				}
			}
		}
	}
	if len(assigned["red"]) > 0 && len(assigned["blue"]) > 0 && len(assigned["white"]) > 0 {
		return assigned
	}

	assigned = map[string][]*roster.Agent{}
	teams := []string{"red", "blue", "white"}
	for i, a := range agents {
		team := teams[i%len(teams)]
		assigned[team] = append(assigned[team], a)
	}
	return assigned
}

func (p *redTeam) teamStage(name, team, trigger, template string) protocol.Stage {
	var trig protocol.Trigger
	if trigger == "" {
		trig = protocol.Always()
	} else {
		trig = protocol.After(trigger)
	}
	return protocol.Stage{
		Name:    name,
		Trigger: trig,
		Exec: func(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
			exec := stages.Parallel(p.caller, stages.ParallelOptions{
				Name:           name,
				InputTopic:     "plan",
				OutputTopic:    name,
				PromptTemplate: template,
				ScopeOverride:  blackboard.ScopeAll,
				ContextVars: func(bb *blackboard.Blackboard, _ *roster.Agent) map[string]string {
					return map[string]string{
						"attacks":  stages.EntriesText(bb, "red", nil),
						"defenses": stages.EntriesText(bb, "blue", nil),
					}
				},
			})
			return exec(ctx, bb, teamAssignments(bb, agents)[team], cfg)
		},
	}
}

func (p *redTeam) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	agentNames := make([]string, len(agents))
	for i, a := range agents {
		agentNames[i] = stages.AuthorName(a)
	}

	def := protocol.Definition{ProtocolID: KeyRedTeam, Stages: []protocol.Stage{
		{
			Name:    "plan",
			Trigger: protocol.Always(),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "plan",
				OutputTopic: "plan",
				System:      "You draft concise, attackable plans.",
				PromptTemplate: "Objective:\n\n{question}\n\n" +
					"Draft the plan of record: goal, approach in three to five steps, key assumptions, and success criteria.",
			}),
		},
		{
			Name:    "teams",
			Trigger: protocol.After("plan"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "teams",
				InputTopic:  "plan",
				OutputTopic: "teams",
				System:      "You assign reviewers to adversarial teams. Output only JSON.",
				PromptTemplate: "Plan:\n{input}\n\nAvailable reviewers: " + strings.Join(agentNames, ", ") + "\n\n" +
					`Assign every reviewer to exactly one team based on who is best placed to attack, defend, or arbitrate this plan. Output {"red":[names],"blue":[names],"white":[names]}.`,
				Parser: func(raw string) any { return stages.ExtractJSONObject(raw) },
			}),
		},
		p.teamStage("red", "red", "teams",
			"Plan under attack:\n\n{input}\n\n"+
				"You are red team. Find the ways this plan fails: broken assumptions, exploitable gaps, second-order effects. Rank your attacks by severity."),
		p.teamStage("blue", "blue", "red",
			"Plan under defense:\n\n{input}\n\nRed team attacks:\n{attacks}\n\n"+
				"You are blue team. For each attack: refute it, mitigate it, or concede it and amend the plan."),
		p.teamStage("white", "white", "blue",
			"Plan:\n\n{input}\n\nAttacks:\n{attacks}\n\nDefenses:\n{defenses}\n\n"+
				"You are white team. Arbitrate each exchange: attack stands, defense holds, or unresolved. Note what the plan must change."),
		{
			Name:    "synthesis",
			Trigger: protocol.After("white"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"plan", "red", "blue", "white"},
				AllEntries:  []string{"red", "blue", "white"},
				PromptTemplate: "Objective: {question}\n\nPlan:\n{plan}\n\nRed:\n{red}\n\nBlue:\n{blue}\n\nWhite arbitration:\n{white}\n\n" +
					"Write the adjudicated outcome: the amended plan, the attacks that forced changes, and the residual risks accepted.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var outs []protocol.StageOutput
	for _, topic := range []string{"plan", "red", "blue", "white"} {
		outs = append(outs, protocol.StageOutput{Name: topic, Output: stages.EntriesText(bb, topic, nil)})
	}
	return protocol.StagesResult(outs, synthesisText(bb)), nil
}
