package llm

import "strings"

// Per-million-token USD pricing. Matched by substring so dated model ids
// (claude-sonnet-4-20250514) resolve to their family.
var modelPricing = []struct {
	match   string
	in, out float64
}{
	{"claude-opus", 15.0, 75.0},
	{"claude-sonnet", 3.0, 15.0},
	{"claude-haiku", 0.80, 4.0},
	{"gpt-4o-mini", 0.15, 0.60},
	{"gpt-4o", 2.50, 10.0},
}

// EstimateCostUSD prices a call's token usage. Unknown models cost zero; the
// estimate is advisory, not billing.
func EstimateCostUSD(model string, usage TokenUsage) float64 {
	lower := strings.ToLower(model)
	for _, p := range modelPricing {
		if strings.Contains(lower, p.match) {
			return float64(usage.InputTokens)/1_000_000*p.in +
				float64(usage.OutputTokens)/1_000_000*p.out
		}
	}
	return 0
}
