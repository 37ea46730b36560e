package protocols

// ACH score values: an evidence item is consistent, inconsistent, or neutral
// with respect to a hypothesis.
const (
	ScoreConsistent   = "C"
	ScoreInconsistent = "I"
	ScoreNeutral      = "N"
)

// MajorityScore aggregates per-agent votes for one evidence×hypothesis cell.
// Plurality wins; empty or tied votes are neutral.
func MajorityScore(votes []string) string {
	counts := make(map[string]int)
	for _, v := range votes {
		counts[v]++
	}

	best, bestCount, tied := ScoreNeutral, 0, false
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, tied = v, c, false
		case c == bestCount:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return ScoreNeutral
	}
	return best
}

// InconsistencyCounts sums "I" scores per hypothesis across the aggregated
// matrix (evidence → hypothesis → score).
func InconsistencyCounts(matrix map[string]map[string]string) map[string]int {
	counts := make(map[string]int)
	for _, row := range matrix {
		for hypothesis, score := range row {
			if _, ok := counts[hypothesis]; !ok {
				counts[hypothesis] = 0
			}
			if score == ScoreInconsistent {
				counts[hypothesis]++
			}
		}
	}
	return counts
}

// EliminateHypotheses marks every hypothesis at the maximum inconsistency
// count, but only when the field actually discriminates (max > min).
func EliminateHypotheses(counts map[string]int) map[string]bool {
	eliminated := make(map[string]bool, len(counts))
	if len(counts) == 0 {
		return eliminated
	}

	first := true
	var min, max int
	for _, c := range counts {
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}

	for h, c := range counts {
		eliminated[h] = max > min && c == max
	}
	return eliminated
}

// Diagnosticity of one evidence item: the fraction of distinct scores it
// produces across hypotheses. Uniform rows (all C, or all N) tell us
// nothing; a row that splits the field is diagnostic.
func Diagnosticity(scores []string) float64 {
	if len(scores) == 0 {
		return 0
	}
	distinct := make(map[string]bool, len(scores))
	for _, s := range scores {
		distinct[s] = true
	}
	return float64(len(distinct)) / float64(len(scores))
}
