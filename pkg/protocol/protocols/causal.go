package protocols

import (
	"sort"
	"strings"
)

// MaxLoopDepth caps DFS path length during feedback-loop detection. Loops
// longer than this are noise in practice and the cap keeps the search
// bounded on dense graphs.
const MaxLoopDepth = 8

// Loop classifications.
const (
	LoopReinforcing = "reinforcing"
	LoopBalancing   = "balancing"
)

// CausalEdge is a polarized influence: From pushes To up (+) or down (-).
type CausalEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Polarity string `json:"polarity"` // "+" | "-"
}

// ResolvePolarity majority-votes agent-proposed polarities for one edge.
// Ties resolve to "+".
func ResolvePolarity(votes []string) string {
	minus := 0
	for _, v := range votes {
		if v == "-" {
			minus++
		}
	}
	if minus*2 > len(votes) {
		return "-"
	}
	return "+"
}

// LoopType classifies a feedback loop: an even number of negative links
// reinforces, an odd number balances.
func LoopType(loop []CausalEdge) string {
	minus := 0
	for _, e := range loop {
		if e.Polarity == "-" {
			minus++
		}
	}
	if minus%2 == 0 {
		return LoopReinforcing
	}
	return LoopBalancing
}

// FindLoops returns every feedback loop of length ≤ MaxLoopDepth,
// deduplicated by edge set (the same cycle found from different start nodes
// counts once).
func FindLoops(edges []CausalEdge) [][]CausalEdge {
	adjacency := make(map[string][]CausalEdge)
	for _, e := range edges {
		adjacency[e.From] = append(adjacency[e.From], e)
	}

	var loops [][]CausalEdge
	seen := make(map[string]bool)

	var dfs func(start string, node string, path []CausalEdge)
	dfs = func(start, node string, path []CausalEdge) {
		if len(path) >= MaxLoopDepth {
			return
		}
		for _, edge := range adjacency[node] {
			if edge.To == start {
				loop := append(append([]CausalEdge(nil), path...), edge)
				key := loopKey(loop)
				if !seen[key] {
					seen[key] = true
					loops = append(loops, loop)
				}
				continue
			}
			if onPath(path, edge.To) {
				continue
			}
			dfs(start, edge.To, append(path, edge))
		}
	}

	nodes := make([]string, 0, len(adjacency))
	for n := range adjacency {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	for _, n := range nodes {
		dfs(n, n, nil)
	}
	return loops
}

// loopKey canonicalizes a cycle by its sorted edge set.
func loopKey(loop []CausalEdge) string {
	parts := make([]string, len(loop))
	for i, e := range loop {
		parts[i] = e.From + ">" + e.To + e.Polarity
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func onPath(path []CausalEdge, node string) bool {
	for _, e := range path {
		if e.From == node || e.To == node {
			return true
		}
	}
	return false
}

// Archetype names for loop structures, keyed by loop-type composition.
// Mapping is deliberately coarse: archetype naming is a lens for the
// synthesis prompt, not a diagnosis.
func Archetype(reinforcing, balancing int) string {
	switch {
	case reinforcing > 0 && balancing > 0:
		return "limits to growth"
	case reinforcing > 1:
		return "success to the successful"
	case reinforcing == 1:
		return "escalation"
	case balancing > 1:
		return "fixes that fail"
	case balancing == 1:
		return "balancing process with delay"
	default:
		return "no dominant archetype"
	}
}
