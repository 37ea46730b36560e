// Package protocols contains the protocol library: every orchestrator is an
// ordered stage list over the engine in pkg/protocol, with the numeric work
// (tallies, loop detection, medians, majority votes) in pure helpers below.
package protocols

import (
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
)

// perspectivesFrom collects agent entries of a topic as result perspectives,
// skipping system writes.
func perspectivesFrom(bb *blackboard.Blackboard, topic string) []protocol.Perspective {
	var out []protocol.Perspective
	for _, e := range bb.Read(topic, nil) {
		if e.Author == blackboard.AuthorSystem {
			continue
		}
		out = append(out, protocol.Perspective{Name: e.Author, Response: stages.ContentText(e)})
	}
	return out
}

// synthesisText is the final synthesis entry's text, empty when absent.
func synthesisText(bb *blackboard.Blackboard) string {
	return stages.LatestText(bb, stages.TopicSynthesis, nil)
}

// systemMeta tags a pure-compute system write: shared scope with explicit
// zero token usage, so every entry carries the same metadata shape.
func systemMeta() map[string]any {
	return map[string]any{
		"scope": blackboard.ScopeAll,
		"token_usage": map[string]any{
			"input_tokens":  0,
			"output_tokens": 0,
		},
	}
}

// DedupStrings removes case-insensitive duplicates, preserving first-seen
// order and spelling.
func DedupStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// stringList coerces a parsed JSON list into strings, dropping the rest.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
