package roster

import "strings"

// PromptParts are the optional blocks appended to a stored system prompt when
// an agent is hydrated for a run. Builtin prompts ship complete and skip
// assembly.
type PromptParts struct {
	Frameworks          []string
	DeliverableTemplate string
	CommunicationStyle  string
}

// AssemblePrompt composes the full system prompt: base prompt, then each
// attached framework, then the deliverable template, then the communication
// style block. Empty parts are skipped; the base prompt is returned untouched
// when no parts are set.
func AssemblePrompt(base string, parts PromptParts) string {
	sections := []string{strings.TrimSpace(base)}

	for _, fw := range parts.Frameworks {
		if fw = strings.TrimSpace(fw); fw != "" {
			sections = append(sections, "## Framework\n\n"+fw)
		}
	}
	if d := strings.TrimSpace(parts.DeliverableTemplate); d != "" {
		sections = append(sections, "## Deliverable\n\n"+d)
	}
	if s := strings.TrimSpace(parts.CommunicationStyle); s != "" {
		sections = append(sections, "## Communication style\n\n"+s)
	}

	return strings.Join(sections, "\n\n")
}
