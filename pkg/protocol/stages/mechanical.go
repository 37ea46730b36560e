package stages

import (
	"context"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// MechanicalOptions configures a mechanical stage: one call to the cheap
// orchestration model, no agent identity, no tools.
type MechanicalOptions struct {
	Name        string
	InputTopic  string // every entry is concatenated into {input}
	OutputTopic string

	// PromptTemplate placeholders: {question}, {input}.
	PromptTemplate string
	System         string

	// Parser transforms the raw response into the entry content. Parsers
	// are tolerant: they fall back to empty structures, never fail.
	Parser func(raw string) any
}

// Mechanical writes a single system entry holding the (optionally parsed)
// model output, tagged all-scope with token usage.
func Mechanical(caller protocol.Caller, opts MechanicalOptions) protocol.ExecFunc {
	return func(ctx context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, cfg protocol.Config) error {
		vars := baseVars(bb)
		vars["input"] = EntriesText(bb, opts.InputTopic, nil)

		res, err := caller.Call(ctx, llm.CallRequest{
			Model:   cfg.OrchestrationModel,
			System:  opts.System,
			Prompt:  protocol.Expand(opts.PromptTemplate, vars),
			NoTools: true,
			Meta:    llm.Meta{RunID: cfg.RunID, AgentName: blackboard.AuthorSystem},
		})
		if err != nil {
			return err
		}

		var content any = res.Text
		if opts.Parser != nil {
			content = opts.Parser(res.Text)
		}
		bb.Write(opts.OutputTopic, content, blackboard.AuthorSystem, opts.Name,
			usageMetadata(blackboard.ScopeAll, res.Usage))
		return nil
	}
}
