package tools

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxOutputBytes caps tool output fed back to the model. Beyond it, the
// output is cut and a structured truncation marker is appended.
const MaxOutputBytes = 50_000

// Sanitize enforces the output size cap. The cut point backs off to avoid
// splitting a multi-byte UTF-8 character, then to the last newline when one
// exists — tool output is usually JSON, logs, or tables, and preserving line
// boundaries keeps the truncated tail parseable by eye.
func Sanitize(content string) string {
	if len(content) <= MaxOutputBytes {
		return content
	}

	cut := MaxOutputBytes
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	truncated := content[:cut]
	if idx := strings.LastIndex(truncated, "\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + fmt.Sprintf(
		"\n\n[TRUNCATED: tool output exceeded limit — original %d bytes, limit %d bytes]",
		len(content), MaxOutputBytes,
	)
}
