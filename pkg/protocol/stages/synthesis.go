package stages

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// TopicSynthesis is the conventional output topic for final synthesis.
const TopicSynthesis = "synthesis"

// SynthesisOptions configures a synthesis stage: the thinking model with an
// extended reasoning budget over the latest entries of the input topics.
type SynthesisOptions struct {
	Name        string
	InputTopics []string // each exposed as a placeholder named after the topic
	OutputTopic string   // defaults to TopicSynthesis

	// PromptTemplate placeholders: {question} plus one per input topic
	// (dashes become underscores: "failure-modes" → {failure_modes}).
	PromptTemplate string
	System         string

	// AllEntries lists topics whose full entry log, not just the latest
	// entry, should fill the placeholder.
	AllEntries []string
}

// Synthesis writes one system entry merging the inputs into the final
// recommendation.
func Synthesis(caller protocol.Caller, opts SynthesisOptions) protocol.ExecFunc {
	full := make(map[string]bool, len(opts.AllEntries))
	for _, t := range opts.AllEntries {
		full[t] = true
	}

	return func(ctx context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, cfg protocol.Config) error {
		vars := baseVars(bb)
		for _, topic := range opts.InputTopics {
			if full[topic] {
				vars[topicVar(topic)] = EntriesText(bb, topic, nil)
			} else {
				vars[topicVar(topic)] = LatestText(bb, topic, nil)
			}
		}

		res, err := caller.Call(ctx, llm.CallRequest{
			Model:           cfg.ThinkingModel,
			System:          opts.System,
			Prompt:          protocol.Expand(opts.PromptTemplate, vars),
			ReasoningBudget: cfg.ReasoningBudget,
			NoTools:         true,
			Meta:            llm.Meta{RunID: cfg.RunID, AgentName: blackboard.AuthorSystem},
		})
		if err != nil {
			return err
		}

		out := opts.OutputTopic
		if out == "" {
			out = TopicSynthesis
		}
		bb.Write(out, res.Text, blackboard.AuthorSystem, opts.Name,
			usageMetadata(blackboard.ScopeAll, res.Usage))
		return nil
	}
}
