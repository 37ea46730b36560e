package stages

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// SequentialOptions configures a sequential-agent stage.
type SequentialOptions struct {
	Name        string
	InputTopic  string // latest entry becomes {input}
	OutputTopic string

	// PromptTemplate placeholders: {question}, {input}, {prior} (the output
	// topic's accumulated entries visible to this agent).
	PromptTemplate string

	SystemOverride string
}

// Sequential runs agents one after another; each sees the scope-filtered
// entries its predecessors wrote to the output topic.
func Sequential(caller protocol.Caller, opts SequentialOptions) protocol.ExecFunc {
	return func(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
		for _, agent := range agents {
			vars := baseVars(bb)
			vars["prior"] = EntriesText(bb, opts.OutputTopic, agent.Reader())
			if opts.InputTopic != "" {
				vars["input"] = LatestText(bb, opts.InputTopic, agent.Reader())
			}

			res, err := caller.Call(ctx, llm.CallRequest{
				Agent:           agent,
				Model:           cfg.ThinkingModel,
				System:          opts.SystemOverride,
				Prompt:          protocol.Expand(opts.PromptTemplate, vars),
				ReasoningBudget: cfg.ReasoningBudget,
				Meta:            llm.Meta{RunID: cfg.RunID, AgentName: AuthorName(agent)},
			})
			if err != nil {
				return err
			}

			bb.Write(opts.OutputTopic, res.Text, AuthorName(agent), opts.Name,
				usageMetadata(agent.PrimaryScope(), res.Usage))
		}
		return nil
	}
}
