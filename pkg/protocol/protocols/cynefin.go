package protocols

import (
	"context"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// KeyCynefin classifies the problem into a Cynefin domain by agent vote,
// then responds with the domain-appropriate playbook.
const KeyCynefin = "cynefin"

// The closed domain set. Votes outside it count as confused.
var cynefinDomains = []string{"clear", "complicated", "complex", "chaotic", "confused"}

const domainConfused = "confused"

// Domain-specific response playbooks.
var cynefinResponses = map[string]string{
	"clear": "The domain is CLEAR: best practice applies. Question: {question}\n\n" +
		"State the established best practice for this situation, the standard operating procedure to follow, and who owns execution.",
	"complicated": "The domain is COMPLICATED: good practice requires expert analysis. Question: {question}\n\n" +
		"Lay out the expert analysis: the options, the analytical method to compare them, and the recommendation the analysis supports.",
	"complex": "The domain is COMPLEX: cause and effect are only visible in retrospect. Question: {question}\n\n" +
		"Design safe-to-fail probes: three small experiments, the signal each would produce, and how to amplify what works and dampen what does not.",
	"chaotic": "The domain is CHAOTIC: act first to establish order. Question: {question}\n\n" +
		"State the immediate stabilizing action, the communication required, and the point at which the situation can be reassessed.",
	domainConfused: "The domain is CONFUSED: the situation has not been decomposed. Question: {question}\n\n" +
		"Break the situation into parts, assign each a candidate domain, and propose the first step for each part.",
}

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyCynefin,
		ProtocolID:   KeyCynefin,
		Name:         "Cynefin Probe",
		Category:     protocol.CategoryAnalysis,
		ProblemTypes: []string{"sense-making", "triage"},
		CostTier:     "medium",
		MinAgents:    2,
		MaxAgents:    8,
		Description:  "Agents vote the problem into a Cynefin domain; a majority (or confused fallback) selects the domain-specific response playbook.",
		WhenToUse:    "When nobody agrees what kind of problem this even is.",
		WhenNotToUse: "Problems whose nature is already understood.",
	}, func(c protocol.Caller) protocol.Runner { return &cynefin{caller: c} })
}

type cynefin struct {
	caller protocol.Caller
}

// ConsensusDomain majority-votes the classifications; anything short of a
// strict majority resolves to confused.
func ConsensusDomain(votes []string) string {
	valid := make(map[string]bool, len(cynefinDomains))
	for _, d := range cynefinDomains {
		valid[d] = true
	}
	cleaned := make([]string, 0, len(votes))
	for _, v := range votes {
		v = strings.ToLower(strings.TrimSpace(v))
		if !valid[v] {
			v = domainConfused
		}
		cleaned = append(cleaned, v)
	}

	winner, majority := MajorityVote(cleaned)
	if !majority {
		return domainConfused
	}
	return winner
}

func (p *cynefin) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyCynefin, Stages: []protocol.Stage{
		{
			Name:    "classification",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:        "classification",
				OutputTopic: "classification",
				PromptTemplate: "Situation:\n\n{question}\n\n" +
					"Classify this situation into exactly one Cynefin domain: clear, complicated, complex, chaotic, or confused. " +
					`Output a JSON object {"domain": "...", "reasoning": "..."}.`,
			}),
		},
		{
			Name:    "consensus",
			Trigger: protocol.After("classification"),
			Exec:    p.consensus,
		},
		{
			Name:    "response",
			Trigger: protocol.After("consensus"),
			Exec:    p.respond,
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("response"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"domain", "response"},
				AllEntries:  []string{"response"},
				PromptTemplate: "Situation: {question}\n\nAgreed domain: {domain}\n\nDomain responses:\n{response}\n\n" +
					"Merge the responses into one course of action appropriate to the domain, and name the signal that would mean the domain was misjudged.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}
	return protocol.PerspectivesResult(perspectivesFrom(bb, "response"), synthesisText(bb)), nil
}

// consensus tallies the domain votes. Pure compute.
func (p *cynefin) consensus(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
	var votes []string
	for _, entry := range bb.Read("classification", nil) {
		parsed := stages.ExtractJSONObject(stages.ContentText(entry))
		votes = append(votes, str(parsed["domain"]))
	}

	meta := systemMeta()
	meta["votes"] = votes
	bb.Write("domain", ConsensusDomain(votes), blackboard.AuthorSystem, "consensus", meta)
	return nil
}

// respond runs the domain-specific playbook prompt across all agents.
func (p *cynefin) respond(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
	domain := domainConfused
	if entry := bb.ReadLatest("domain", nil); entry != nil {
		if d, ok := entry.Content.(string); ok && cynefinResponses[d] != "" {
			domain = d
		}
	}

	exec := stages.Parallel(p.caller, stages.ParallelOptions{
		Name:           "response",
		OutputTopic:    "response",
		PromptTemplate: cynefinResponses[domain],
	})
	return exec(ctx, bb, agents, cfg)
}
