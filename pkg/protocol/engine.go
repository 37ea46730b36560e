package protocol

import (
	"context"
	"fmt"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/events"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// TopicQuestion holds the run's question as the first system entry.
const TopicQuestion = "question"

// Run drives a protocol definition to quiescence: each pass fires every
// pending stage whose trigger holds, in declaration order; a pass that fires
// nothing ends the loop. Each stage fires at most once.
func Run(ctx context.Context, def Definition, question string, agents []*roster.Agent, cfg Config) (*blackboard.Blackboard, error) {
	bb := blackboard.New(def.ProtocolID)
	bb.Write(TopicQuestion, question, blackboard.AuthorSystem, "init",
		map[string]any{"scope": blackboard.ScopeAll})

	pending := make([]Stage, len(def.Stages))
	copy(pending, def.Stages)

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return bb, err
		}

		var remaining []Stage
		fired := 0
		for _, stage := range pending {
			if !stage.Trigger(bb) {
				remaining = append(remaining, stage)
				continue
			}

			events.Emit(ctx, events.New(events.TypeStage, cfg.RunID, events.StagePayload{
				Message: fmt.Sprintf("running stage: %s", stage.Name),
			}))

			selected := FilterAgents(agents, stage.AgentsFilter)
			if err := stage.Exec(ctx, bb, selected, cfg); err != nil {
				return bb, fmt.Errorf("stage %s failed: %w", stage.Name, err)
			}
			fired++
		}

		if fired == 0 {
			// No trigger can ever flip without a write; remaining stages are
			// unreachable.
			break
		}
		pending = remaining
	}
	return bb, nil
}
