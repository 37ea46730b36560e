package protocols

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeySixHats walks all agents through seven thinking phases, every phase
// overriding each agent's own system prompt with the hat's stance.
const KeySixHats = "six-hats"

type hat struct {
	name   string
	stance string
	prompt string
}

// The seven phases: blue opens, the five working hats, blue closes.
var hats = []hat{
	{
		name:   "blue-open",
		stance: "You wear the blue hat: process control. You think only about how the group should think about this question.",
		prompt: "Question:\n\n{question}\n\nDefine the thinking agenda: what the group must figure out, in what order, and what a good outcome looks like.",
	},
	{
		name:   "white",
		stance: "You wear the white hat: facts only. No opinions, no interpretations, no proposals.",
		prompt: "Question:\n\n{question}\n\nList the facts known, the facts missing, and how the missing ones could be obtained.",
	},
	{
		name:   "red",
		stance: "You wear the red hat: gut feeling. State emotions and intuitions without justifying them.",
		prompt: "Question:\n\n{question}\n\nState your gut reaction and the feelings this option stirs. Do not justify them.",
	},
	{
		name:   "black",
		stance: "You wear the black hat: critical judgment. Find what is wrong, risky, or will not work.",
		prompt: "Question:\n\n{question}\n\nPrior phases:\n{prior_phases}\n\nList the dangers, obstacles, and weaknesses. Be severe but logical.",
	},
	{
		name:   "yellow",
		stance: "You wear the yellow hat: optimistic logic. Find the value and the ways this works.",
		prompt: "Question:\n\n{question}\n\nPrior phases:\n{prior_phases}\n\nList the benefits and the conditions under which this succeeds.",
	},
	{
		name:   "green",
		stance: "You wear the green hat: creative movement. Generate alternatives and ways around the black-hat objections.",
		prompt: "Question:\n\n{question}\n\nPrior phases:\n{prior_phases}\n\nPropose creative alternatives and modifications, including one that sidesteps the strongest objection raised.",
	},
	{
		name:   "blue-close",
		stance: "You wear the blue hat: process control. Summarize and direct.",
		prompt: "Question:\n\n{question}\n\nPrior phases:\n{prior_phases}\n\nClose the session: what was learned per hat, and the decision or next step the thinking supports.",
	},
}

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeySixHats,
		ProtocolID:   KeySixHats,
		Name:         "Six Thinking Hats",
		Category:     protocol.CategoryCore,
		ProblemTypes: []string{"creative", "balanced-review"},
		CostTier:     "high",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "Seven sequential phases; in each, every agent wears the same hat, its stance overriding the agent's own system prompt.",
		WhenToUse:    "Groups that keep arguing past each other in mixed modes.",
		WhenNotToUse: "Time-critical decisions; seven phases are slow.",
	}, func(c protocol.Caller) protocol.Runner { return &sixHats{caller: c} })
}

type sixHats struct {
	caller protocol.Caller
}

func (p *sixHats) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	var stageList []protocol.Stage
	for i, h := range hats {
		trigger := protocol.Always()
		if i > 0 {
			trigger = protocol.After(hats[i-1].name)
		}
		prior := make([]string, i)
		for j := 0; j < i; j++ {
			prior[j] = hats[j].name
		}

		stageList = append(stageList, protocol.Stage{
			Name:    h.name,
			Trigger: trigger,
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:           h.name,
				OutputTopic:    h.name,
				PromptTemplate: h.prompt,
				SystemOverride: h.stance,
				ContextVars: func(bb *blackboard.Blackboard, _ *roster.Agent) map[string]string {
					var text string
					for _, topic := range prior {
						if t := stages.EntriesText(bb, topic, nil); t != "" {
							text += "== " + topic + " ==\n" + t + "\n\n"
						}
					}
					return map[string]string{"prior_phases": text}
				},
			}),
		})
	}

	last := hats[len(hats)-1].name
	stageList = append(stageList, protocol.Stage{
		Name:    "synthesis",
		Trigger: protocol.After(last),
		Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
			Name:        "synthesis",
			InputTopics: []string{last},
			AllEntries:  []string{last},
			PromptTemplate: "Question: {question}\n\nClosing blue-hat summaries:\n{blue_close}\n\n" +
				"Produce the final recommendation the full-session thinking supports, noting where the hats disagreed.",
		}),
	})

	bb, err := protocol.Run(ctx, protocol.Definition{ProtocolID: KeySixHats, Stages: stageList}, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var outs []protocol.StageOutput
	for _, h := range hats {
		outs = append(outs, protocol.StageOutput{Name: h.name, Output: stages.EntriesText(bb, h.name, nil)})
	}
	return protocol.StagesResult(outs, synthesisText(bb)), nil
}
