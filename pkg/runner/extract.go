package runner

import (
	"sort"

	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/services"
)

// SynthesisAgent is the reserved agent name the merged recommendation is
// persisted under.
const SynthesisAgent = "_synthesis"

// resultAgent is the reserved name for the serialized-whole-result fallback.
const resultAgent = "_result"

// synthesisKeys are probed, in order, when a raw result does not carry a
// top-level synthesis.
var synthesisKeys = []string{
	"synthesis",
	"final_synthesis",
	"final_output",
	"recommendation",
	"summary",
	"conclusion",
}

// Flatten pulls per-agent output records from whichever result shape the
// protocol produced. It never returns an empty slice for a non-nil result:
// the last resort is the whole result serialized under a reserved name.
func Flatten(res *protocol.Result) []services.OutputRecord {
	if res == nil {
		return nil
	}

	switch res.Kind {
	case protocol.KindPerspectives:
		records := make([]services.OutputRecord, 0, len(res.Perspectives))
		for _, p := range res.Perspectives {
			records = append(records, services.OutputRecord{AgentName: p.Name, Output: p.Response})
		}
		return records

	case protocol.KindRounds:
		var records []services.OutputRecord
		for _, round := range res.Rounds {
			for _, p := range round.Responses {
				records = append(records, services.OutputRecord{
					AgentName: p.Name,
					Round:     round.Number,
					Output:    p.Response,
				})
			}
		}
		return records

	case protocol.KindStages:
		records := make([]services.OutputRecord, 0, len(res.Stages))
		for _, s := range res.Stages {
			records = append(records, services.OutputRecord{
				AgentName: s.Name,
				Stage:     s.Name,
				Output:    s.Output,
			})
		}
		return records

	case protocol.KindOutputs:
		names := make([]string, 0, len(res.Outputs))
		for name := range res.Outputs {
			names = append(names, name)
		}
		sort.Strings(names)
		records := make([]services.OutputRecord, 0, len(names))
		for _, name := range names {
			records = append(records, services.OutputRecord{AgentName: name, Output: res.Outputs[name]})
		}
		return records
	}

	return []services.OutputRecord{{AgentName: resultAgent, Output: res.Serialize()}}
}

// SynthesisText returns the result's synthesis: the top-level field when
// set, otherwise the first non-empty of the conventional keys in a raw
// record. Empty means the protocol produced no synthesis.
func SynthesisText(res *protocol.Result) string {
	if res == nil {
		return ""
	}
	if res.Synthesis != "" {
		return res.Synthesis
	}

	switch raw := res.Raw.(type) {
	case map[string]any:
		for _, key := range synthesisKeys {
			if s, ok := raw[key].(string); ok && s != "" {
				return s
			}
		}
	case map[string]string:
		for _, key := range synthesisKeys {
			if s := raw[key]; s != "" {
				return s
			}
		}
	}
	return ""
}
