package protocols

import (
	"context"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyCausalLoop maps the causal structure of a situation and finds its
// feedback loops; KeyArchetype additionally names the dominant system
// archetype.
const (
	KeyCausalLoop = "causal-loop"
	KeyArchetype  = "archetype"
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyCausalLoop,
		ProtocolID:   KeyCausalLoop,
		Name:         "Causal Loop Mapping",
		Category:     protocol.CategorySystems,
		ProblemTypes: []string{"systemic", "dynamics"},
		CostTier:     "high",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "Extract causal nodes and polarized edges, detect reinforcing and balancing feedback loops, and synthesize the leverage points.",
		WhenToUse:    "Situations that keep recurring despite interventions.",
		WhenNotToUse: "One-shot decisions without feedback structure.",
	}, func(c protocol.Caller) protocol.Runner { return &causalLoop{caller: c} })

	protocol.Register(protocol.Manifest{
		Key:          KeyArchetype,
		ProtocolID:   KeyArchetype,
		Name:         "System Archetype",
		Category:     protocol.CategorySystems,
		ProblemTypes: []string{"systemic", "diagnosis"},
		CostTier:     "high",
		MinAgents:    2,
		MaxAgents:    6,
		Description:  "Causal loop mapping extended with archetype naming: the loop structure is matched to a classic system archetype before synthesis.",
		WhenToUse:    "When the situation smells like a known systemic trap.",
		WhenNotToUse: "Simple linear cause-effect questions.",
	}, func(c protocol.Caller) protocol.Runner { return &causalLoop{caller: c, archetype: true} })
}

type causalLoop struct {
	caller    protocol.Caller
	archetype bool
}

// CausalLoopRecord is one detected feedback loop.
type CausalLoopRecord struct {
	Edges []CausalEdge `json:"edges"`
	Type  string       `json:"type"`
}

// CausalAnalysis is the graph stage's output.
type CausalAnalysis struct {
	Nodes       []string           `json:"nodes"`
	Edges       []CausalEdge       `json:"edges"`
	Loops       []CausalLoopRecord `json:"loops"`
	Reinforcing int                `json:"reinforcing"`
	Balancing   int                `json:"balancing"`
	Archetype   string             `json:"archetype,omitempty"`
}

func (p *causalLoop) key() string {
	if p.archetype {
		return KeyArchetype
	}
	return KeyCausalLoop
}

func (p *causalLoop) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: p.key(), Stages: []protocol.Stage{
		{
			Name:    "nodes",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "nodes",
				OutputTopic: "nodes",
				PromptTemplate: "Situation:\n\n{question}\n\n" +
					"Name the variables that drive this system from your vantage point: quantities that rise and fall and influence each other. Output a JSON list of short variable names.",
			}),
		},
		{
			Name:    "nodes-dedup",
			Trigger: protocol.After("nodes"),
			Exec: stages.Mechanical(p.caller, stages.MechanicalOptions{
				Name:        "nodes-dedup",
				InputTopic:  "nodes",
				OutputTopic: "nodes-clean",
				System:      "You merge near-duplicate variable names. Output only JSON.",
				PromptTemplate: "Proposed variables:\n{input}\n\n" +
					"Merge synonyms and near-duplicates. Output the distinct variables as a JSON list of strings.",
				Parser: func(raw string) any {
					return DedupStrings(stringList(stages.ExtractJSONValue(raw)))
				},
			}),
		},
		{
			Name:    "edges",
			Trigger: protocol.After("nodes-dedup"),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "edges",
				InputTopic:  "nodes-clean",
				OutputTopic: "edges",
				PromptTemplate: "Situation: {question}\n\nSystem variables:\n{input}\n\n" +
					`Declare the causal links you are confident in, using variable names verbatim. Output a JSON list of {"from","to","polarity"} where polarity is "+" (same direction) or "-" (opposite).`,
			}),
		},
		{
			Name:    "graph",
			Trigger: protocol.After("edges"),
			Exec:    p.buildGraph,
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("graph"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:           "synthesis",
				InputTopics:    []string{"causal-analysis"},
				PromptTemplate: p.synthesisTemplate(),
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	entry := bb.ReadLatest("causal-analysis", nil)
	var analysis any
	if entry != nil {
		analysis = entry.Content
	}
	return protocol.RawResult(analysis, synthesisText(bb)), nil
}

func (p *causalLoop) synthesisTemplate() string {
	base := "Situation: {question}\n\nCausal graph and feedback loops:\n{causal_analysis}\n\n"
	if p.archetype {
		return base + "Interpret the structure through its named archetype: why the system behaves this way, where the archetype predicts it goes next, and the leverage point the archetype recommends."
	}
	return base + "Interpret the loops: which reinforcing loop dominates, which balancing loops constrain it, and the highest-leverage intervention."
}

// buildGraph consolidates agent-proposed edges (majority-voting polarity on
// disagreement), detects feedback loops, and classifies them. Pure compute.
func (p *causalLoop) buildGraph(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
	nodes := entryStrings(bb, "nodes-clean")
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[strings.ToLower(n)] = true
	}

	votes := make(map[[2]string][]string) // from,to → polarity votes
	for _, entry := range bb.Read("edges", nil) {
		for _, item := range stages.ExtractJSONList(stages.ContentText(entry)) {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			from, to := str(m["from"]), str(m["to"])
			if from == "" || to == "" || from == to {
				continue
			}
			if len(known) > 0 && (!known[strings.ToLower(from)] || !known[strings.ToLower(to)]) {
				continue
			}
			polarity := str(m["polarity"])
			if polarity != "-" {
				polarity = "+"
			}
			key := [2]string{from, to}
			votes[key] = append(votes[key], polarity)
		}
	}

	var edges []CausalEdge
	for key, vs := range votes {
		edges = append(edges, CausalEdge{From: key[0], To: key[1], Polarity: ResolvePolarity(vs)})
	}

	analysis := &CausalAnalysis{Nodes: nodes, Edges: edges}
	for _, loop := range FindLoops(edges) {
		record := CausalLoopRecord{Edges: loop, Type: LoopType(loop)}
		if record.Type == LoopReinforcing {
			analysis.Reinforcing++
		} else {
			analysis.Balancing++
		}
		analysis.Loops = append(analysis.Loops, record)
	}
	if p.archetype {
		analysis.Archetype = Archetype(analysis.Reinforcing, analysis.Balancing)
	}

	bb.Write("causal-analysis", analysis, blackboard.AuthorSystem, "graph", systemMeta())
	return nil
}
