package stages

import (
	"encoding/json"
	"strings"
)

// ExtractJSONValue pulls the first JSON value out of model output: a direct
// parse, then the contents of a fenced block, then the first balanced
// object or array in the text. Returns nil when nothing parses.
func ExtractJSONValue(text string) any {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if v, ok := tryParse(text); ok {
		return v
	}
	if fenced := fencedBlock(text); fenced != "" {
		if v, ok := tryParse(fenced); ok {
			return v
		}
	}
	if candidate := firstBalanced(text); candidate != "" {
		if v, ok := tryParse(candidate); ok {
			return v
		}
	}
	return nil
}

// ExtractJSONObject is ExtractJSONValue narrowed to objects; an empty map
// when the text holds none.
func ExtractJSONObject(text string) map[string]any {
	if obj, ok := ExtractJSONValue(text).(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

// ExtractJSONList is ExtractJSONValue narrowed to arrays; an empty slice
// when the text holds none. A lone object is promoted to a one-element list.
func ExtractJSONList(text string) []any {
	switch v := ExtractJSONValue(text).(type) {
	case []any:
		return v
	case map[string]any:
		return []any{v}
	}
	return []any{}
}

func tryParse(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return v, true
	}
	return nil, false
}

// fencedBlock returns the body of the first ``` fence, tolerating a
// language tag on the opening line.
func fencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// firstBalanced scans for the first brace- or bracket-balanced span,
// ignoring delimiters inside JSON strings.
func firstBalanced(text string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(text); i++ {
		if text[i] == '{' || text[i] == '[' {
			start = i
			open = text[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
