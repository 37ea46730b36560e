// Package stages provides the four stage-executor factories protocols are
// assembled from: parallel fan-out, sequential accumulation, mechanical
// single-call processing, and extended-reasoning synthesis.
package stages

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// MaxFanOut caps in-flight gateway calls inside one parallel stage.
const MaxFanOut = 8

// AuthorName is the blackboard author for an agent's writes.
func AuthorName(a *roster.Agent) string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Key
}

// ContentText renders an entry's content as prompt text.
func ContentText(e *blackboard.Entry) string {
	if e == nil {
		return ""
	}
	switch c := e.Content.(type) {
	case string:
		return c
	default:
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Sprintf("%v", c)
		}
		return string(data)
	}
}

// LatestText is the text of the topic's newest entry visible to reader.
func LatestText(bb *blackboard.Blackboard, topic string, reader *blackboard.Reader) string {
	return ContentText(bb.ReadLatest(topic, reader))
}

// EntriesText renders every visible entry of a topic as an attributed list.
func EntriesText(bb *blackboard.Blackboard, topic string, reader *blackboard.Reader) string {
	entries := bb.Read(topic, reader)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s\n\n", e.Author, ContentText(e))
	}
	return strings.TrimRight(b.String(), "\n")
}

// usageMetadata is the token accounting stamped on every stage write.
func usageMetadata(scope string, usage llm.TokenUsage) map[string]any {
	return map[string]any{
		"scope": scope,
		"token_usage": map[string]any{
			"input_tokens":  usage.InputTokens,
			"output_tokens": usage.OutputTokens,
		},
	}
}

// baseVars is the placeholder set every stage template can rely on.
func baseVars(bb *blackboard.Blackboard) map[string]string {
	return map[string]string{
		"question": LatestText(bb, protocol.TopicQuestion, nil),
	}
}

// topicVar turns a topic name into a template placeholder name.
func topicVar(topic string) string {
	return strings.ReplaceAll(topic, "-", "_")
}
