package stages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// ParallelOptions configures a parallel-agent stage.
type ParallelOptions struct {
	Name        string
	InputTopic  string // latest entry becomes {input}; empty = question only
	OutputTopic string

	// PromptTemplate placeholders: {question}, {input}, {context}, plus
	// anything ContextVars adds.
	PromptTemplate string

	// SystemOverride replaces each agent's own system prompt when set
	// (six-hats phases).
	SystemOverride string

	// ContextVars supplies extra per-agent placeholders; reads should go
	// through the agent's scope-filtered reader.
	ContextVars func(bb *blackboard.Blackboard, agent *roster.Agent) map[string]string

	// ScopeOverride tags writes with a fixed scope instead of the agent's
	// primary scope (role-scoped team stages).
	ScopeOverride string
}

// Parallel is the fan-out primitive: every agent answers the same prompt
// concurrently, each response lands on the output topic tagged with the
// agent's scope and token usage.
func Parallel(caller protocol.Caller, opts ParallelOptions) protocol.ExecFunc {
	return func(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(MaxFanOut)

		for _, agent := range agents {
			g.Go(func() error {
				vars := baseVars(bb)
				if opts.InputTopic != "" {
					vars["input"] = LatestText(bb, opts.InputTopic, agent.Reader())
				}
				if opts.ContextVars != nil {
					for k, v := range opts.ContextVars(bb, agent) {
						vars[k] = v
					}
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

				scope := opts.ScopeOverride
				if scope == "" {
					scope = agent.PrimaryScope()
				}
				bb.Write(opts.OutputTopic, res.Text, AuthorName(agent), opts.Name,
					usageMetadata(scope, res.Usage))
				return nil
			})
		}
		return g.Wait()
	}
}
