package protocol

import "regexp"

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Expand substitutes {name} placeholders from vars. Missing keys become the
// empty string; prompt templates are lax by contract.
func Expand(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return vars[key]
	})
}
