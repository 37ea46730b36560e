package protocols

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyParallelSynthesis is the baseline protocol: independent answers merged
// by one synthesis.
const KeyParallelSynthesis = "parallel-synthesis"

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyParallelSynthesis,
		ProtocolID:   KeyParallelSynthesis,
		Name:         "Parallel Synthesis",
		Category:     protocol.CategoryCore,
		ProblemTypes: []string{"open-ended", "strategic", "exploratory"},
		CostTier:     "low",
		MinAgents:    2,
		MaxAgents:    8,
		Description:  "Every agent answers the question independently; a synthesis stage merges the perspectives into one recommendation.",
		WhenToUse:    "Broad questions where independent viewpoints matter more than interaction.",
		WhenNotToUse: "Questions needing agents to challenge or build on each other.",
	}, func(c protocol.Caller) protocol.Runner { return &parallelSynthesis{caller: c} })
}

type parallelSynthesis struct {
	caller protocol.Caller
}

func (p *parallelSynthesis) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyParallelSynthesis, Stages: []protocol.Stage{
		{
			Name:    "perspectives",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "perspectives",
				OutputTopic: "perspectives",
				PromptTemplate: "You are advising on the following decision:\n\n{question}\n\n" +
					"Give your perspective from your area of responsibility: key considerations, risks, and your recommendation.",
			}),
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("perspectives"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"perspectives"},
				AllEntries:  []string{"perspectives"},
				PromptTemplate: "Question: {question}\n\nAdvisor perspectives:\n{perspectives}\n\n" +
					"Synthesize these into a single recommendation: where the advisors agree, where they diverge, and the decision you would make.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}
	return protocol.PerspectivesResult(perspectivesFrom(bb, "perspectives"), synthesisText(bb)), nil
}

// KeyDevilsAdvocate chains a position, sequential critiques, a defense, and
// a verdict.
const KeyDevilsAdvocate = "devils-advocate"

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyDevilsAdvocate,
		ProtocolID:   KeyDevilsAdvocate,
		Name:         "Devil's Advocate",
		Category:     protocol.CategoryAdversary,
		ProblemTypes: []string{"validation", "risk"},
		CostTier:     "medium",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "One agent states a position, the others attack it in sequence, the author defends, and a synthesis adjudicates.",
		WhenToUse:    "Stress-testing a position the team already leans toward.",
		WhenNotToUse: "Generating options from scratch.",
	}, func(c protocol.Caller) protocol.Runner { return &devilsAdvocate{caller: c} })
}

type devilsAdvocate struct {
	caller protocol.Caller
}

func (p *devilsAdvocate) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	proponent := agents[:1]
	critics := agents
	if len(agents) > 1 {
		critics = agents[1:]
	}

	def := protocol.Definition{ProtocolID: KeyDevilsAdvocate, Stages: []protocol.Stage{
		{
			Name:    "position",
			Trigger: protocol.Always(),
			Exec: stages.Sequential(p.caller, stages.SequentialOptions{
				Name:        "position",
				OutputTopic: "position",
				PromptTemplate: "Decision under review:\n\n{question}\n\n" +
					"State the strongest case for proceeding: your position, the three best supporting arguments, and the evidence behind each.",
			}),
		},
		{
			Name:    "critique",
			Trigger: protocol.After("position"),
			Exec: func(ctx context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, cfg protocol.Config) error {
				exec := stages.Sequential(p.caller, stages.SequentialOptions{
					Name:        "critique",
					InputTopic:  "position",
					OutputTopic: "critique",
					PromptTemplate: "Position under attack:\n\n{input}\n\nEarlier critiques:\n{prior}\n\n" +
						"Play devil's advocate. Find the weakest assumption not yet attacked and break it. Be specific.",
				})
				return exec(ctx, bb, critics, cfg)
			},
		},
		{
			Name:    "defense",
			Trigger: protocol.After("critique"),
			Exec: func(ctx context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, cfg protocol.Config) error {
				exec := stages.Parallel(p.caller, stages.ParallelOptions{
					Name:        "defense",
					InputTopic:  "position",
					OutputTopic: "defense",
					PromptTemplate: "Your original position:\n\n{input}\n\nThe critiques raised:\n{critiques}\n\n" +
						"Defend what survives and concede what does not. Update your position accordingly.",
					ContextVars: func(bb *blackboard.Blackboard, agent *roster.Agent) map[string]string {
						return map[string]string{"critiques": stages.EntriesText(bb, "critique", agent.Reader())}
					},
				})
				return exec(ctx, bb, proponent, cfg)
			},
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("defense"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"position", "critique", "defense"},
				AllEntries:  []string{"critique"},
				PromptTemplate: "Question: {question}\n\nPosition:\n{position}\n\nCritiques:\n{critique}\n\nDefense:\n{defense}\n\n" +
					"Adjudicate: which critiques landed, whether the defense holds, and the resulting recommendation.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	var outs []protocol.StageOutput
	for _, topic := range []string{"position", "critique", "defense"} {
		outs = append(outs, protocol.StageOutput{Name: topic, Output: stages.EntriesText(bb, topic, nil)})
	}
	return protocol.StagesResult(outs, synthesisText(bb)), nil
}

// KeySWOT runs a scope-tagged quadrant analysis.
const KeySWOT = "swot"

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeySWOT,
		ProtocolID:   KeySWOT,
		Name:         "SWOT Analysis",
		Category:     protocol.CategoryAnalysis,
		ProblemTypes: []string{"assessment", "strategic"},
		CostTier:     "low",
		MinAgents:    2,
		MaxAgents:    8,
		Description:  "Each agent maps strengths, weaknesses, opportunities, and threats from its own scope; synthesis assembles the grid.",
		WhenToUse:    "Situational assessment before options are on the table.",
		WhenNotToUse: "Choosing between already-defined options.",
	}, func(c protocol.Caller) protocol.Runner { return &swot{caller: c} })
}

type swot struct {
	caller protocol.Caller
}

func (p *swot) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeySWOT, Stages: []protocol.Stage{
		{
			Name:    "quadrants",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "quadrants",
				OutputTopic: "quadrants",
				PromptTemplate: "Subject:\n\n{question}\n\n" +
					"From your area of responsibility, list the material Strengths, Weaknesses, Opportunities, and Threats. Use those four headings; two to four bullets each.",
			}),
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("quadrants"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"quadrants"},
				AllEntries:  []string{"quadrants"},
				PromptTemplate: "Subject: {question}\n\nPer-scope SWOT input:\n{quadrants}\n\n" +
					"Merge into one SWOT grid, deduplicating overlapping items, then state the strategic posture the grid implies.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}
	return protocol.PerspectivesResult(perspectivesFrom(bb, "quadrants"), synthesisText(bb)), nil
}
