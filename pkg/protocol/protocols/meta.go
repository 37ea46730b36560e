package protocols

import (
	"context"
	"fmt"
	"strings"

	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// Meta protocols advise on how to run a deliberation rather than running
// one. They never touch tools and use only the orchestration model.
const (
	KeyMetaAdvisor = "meta-advisor"
	KeyMetaFramer  = "meta-framer"
	KeyMetaTeam    = "meta-team"
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyMetaAdvisor,
		ProtocolID:   KeyMetaAdvisor,
		Name:         "Protocol Advisor",
		Category:     protocol.CategoryMeta,
		ProblemTypes: []string{"meta"},
		CostTier:     "low",
		MinAgents:    1,
		MaxAgents:    1,
		Description:  "Recommends which deliberation protocol fits the question, with a runner-up and reasoning.",
		WhenToUse:    "Unsure which protocol to run.",
		WhenNotToUse: "The protocol choice is already obvious.",
	}, func(c protocol.Caller) protocol.Runner {
		return &metaProtocol{caller: c, key: KeyMetaAdvisor, exec: advisorStage}
	})

	protocol.Register(protocol.Manifest{
		Key:          KeyMetaFramer,
		ProtocolID:   KeyMetaFramer,
		Name:         "Question Framer",
		Category:     protocol.CategoryMeta,
		ProblemTypes: []string{"meta"},
		CostTier:     "low",
		MinAgents:    1,
		MaxAgents:    1,
		Description:  "Rewrites a vague question into a sharp, answerable one and surfaces the hidden assumptions the original smuggled in.",
		WhenToUse:    "The question itself feels off or overloaded.",
		WhenNotToUse: "The question is already precise.",
	}, func(c protocol.Caller) protocol.Runner {
		return &metaProtocol{caller: c, key: KeyMetaFramer, exec: framerStage}
	})

	protocol.Register(protocol.Manifest{
		Key:          KeyMetaTeam,
		ProtocolID:   KeyMetaTeam,
		Name:         "Team Composer",
		Category:     protocol.CategoryMeta,
		ProblemTypes: []string{"meta"},
		CostTier:     "low",
		MinAgents:    1,
		MaxAgents:    1,
		Description:  "Suggests which built-in agents, and which bespoke ones, a question deserves.",
		WhenToUse:    "Assembling a roster for a new kind of question.",
		WhenNotToUse: "A working team already exists.",
	}, func(c protocol.Caller) protocol.Runner {
		return &metaProtocol{caller: c, key: KeyMetaTeam, exec: teamStageMeta}
	})
}

// metaProtocol runs a single mechanical stage and returns its text as both
// the only output and the synthesis.
type metaProtocol struct {
	caller protocol.Caller
	key    string
	exec   func(protocol.Caller) protocol.ExecFunc
}

func (p *metaProtocol) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: p.key, Stages: []protocol.Stage{
		{Name: "advise", Trigger: protocol.Always(), Exec: p.exec(p.caller)},
	}}
	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}
	text := stages.LatestText(bb, "advice", nil)
	return protocol.OutputsResult(map[string]string{"advice": text}, text), nil
}

// protocolCatalog renders every registered non-meta manifest for the
// advisor prompt.
func protocolCatalog() string {
	var b strings.Builder
	for _, m := range protocol.Manifests() {
		if m.Category == protocol.CategoryMeta {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s, cost %s, %d-%d agents): %s Use when: %s Avoid when: %s\n",
			m.Key, m.Category, m.CostTier, m.MinAgents, m.MaxAgents,
			m.Description, m.WhenToUse, m.WhenNotToUse)
	}
	return b.String()
}

func advisorStage(c protocol.Caller) protocol.ExecFunc {
	return stages.Mechanical(c, stages.MechanicalOptions{
		Name:        "advise",
		OutputTopic: "advice",
		System:      "You match decision questions to deliberation protocols from a fixed catalog.",
		PromptTemplate: "Question:\n\n{question}\n\nAvailable protocols:\n" + protocolCatalog() + "\n" +
			"Recommend the single best protocol by key, a runner-up, and for each, two sentences on why it fits this question's shape.",
	})
}

func framerStage(c protocol.Caller) protocol.ExecFunc {
	return stages.Mechanical(c, stages.MechanicalOptions{
		Name:        "advise",
		OutputTopic: "advice",
		System:      "You sharpen vague questions into answerable ones.",
		PromptTemplate: "Original question:\n\n{question}\n\n" +
			"Rewrite it as a precise, answerable question. Then list the assumptions the original smuggled in, and any sub-questions that must be answered first.",
	})
}

// builtinRoster renders the built-in agents for the team-composer prompt.
func builtinRoster() string {
	var b strings.Builder
	for _, a := range roster.Builtins() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", a.Key, a.Category, firstSentence(a.SystemPrompt))
	}
	return b.String()
}

func firstSentence(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i+1]
	}
	return s
}

func teamStageMeta(c protocol.Caller) protocol.ExecFunc {
	return stages.Mechanical(c, stages.MechanicalOptions{
		Name:        "advise",
		OutputTopic: "advice",
		System:      "You compose deliberation teams from available agents.",
		PromptTemplate: "Question:\n\n{question}\n\nBuilt-in agents:\n" + builtinRoster() + "\n" +
			"Name the built-in agents this question needs and why, plus any bespoke agent worth creating: give that agent a key, a category, and a two-sentence system prompt sketch.",
	})
}
