package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/blackboard"
)

func TestSystemMetaCarriesZeroUsage(t *testing.T) {
	meta := systemMeta()
	assert.Equal(t, blackboard.ScopeAll, meta["scope"])
	usage, ok := meta["token_usage"].(map[string]any)
	require.True(t, ok, "system writes carry the same metadata shape as agent writes")
	assert.Equal(t, 0, usage["input_tokens"])
	assert.Equal(t, 0, usage["output_tokens"])
}

func TestBordaTally(t *testing.T) {
	points := BordaTally([][]string{
		{"a", "b", "c"},
		{"b", "a", "c"},
		{"a", "c", "b"},
	})
	assert.Equal(t, map[string]int{"a": 5, "b": 3, "c": 1}, points)
}

func TestPairwiseWins(t *testing.T) {
	rankings := [][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
	}
	wins := PairwiseWins(rankings)
	assert.Equal(t, 2, wins["a"], "a beats both b and c")
	assert.Equal(t, 1, wins["b"])
	assert.Equal(t, 0, wins["c"])

	t.Run("unranked options sort last", func(t *testing.T) {
		wins := PairwiseWins([][]string{
			{"a", "b"},
			{"a"},
		})
		assert.Equal(t, 1, wins["a"])
		assert.Equal(t, 0, wins["b"])
	})
}

func TestCondorcetWinner(t *testing.T) {
	winner, ok := CondorcetWinner([][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
	})
	require.True(t, ok)
	assert.Equal(t, "a", winner)

	t.Run("cycle has no winner", func(t *testing.T) {
		_, ok := CondorcetWinner([][]string{
			{"a", "b", "c"},
			{"b", "c", "a"},
			{"c", "a", "b"},
		})
		assert.False(t, ok)
	})
}

func TestVickreyOutcome(t *testing.T) {
	t.Run("winner pays second price", func(t *testing.T) {
		winner, price := VickreyOutcome(map[string]float64{"alice": 0.9, "bob": 0.7, "carol": 0.5})
		assert.Equal(t, "alice", winner)
		assert.Equal(t, 0.7, price)
	})
	t.Run("tie breaks lexicographically", func(t *testing.T) {
		winner, price := VickreyOutcome(map[string]float64{"zed": 0.8, "amy": 0.8})
		assert.Equal(t, "amy", winner)
		assert.Equal(t, 0.8, price)
	})
	t.Run("single bidder pays own bid", func(t *testing.T) {
		winner, price := VickreyOutcome(map[string]float64{"solo": 0.6})
		assert.Equal(t, "solo", winner)
		assert.Equal(t, 0.6, price)
	})
	t.Run("no bids", func(t *testing.T) {
		winner, price := VickreyOutcome(nil)
		assert.Empty(t, winner)
		assert.Zero(t, price)
	})
}

func TestMajorityVote(t *testing.T) {
	t.Run("strict majority", func(t *testing.T) {
		winner, majority := MajorityVote([]string{"x", "x", "y"})
		assert.Equal(t, "x", winner)
		assert.True(t, majority)
	})
	t.Run("plurality without majority", func(t *testing.T) {
		winner, majority := MajorityVote([]string{"x", "x", "y", "z", "w"})
		assert.Equal(t, "x", winner)
		assert.False(t, majority)
	})
	t.Run("tied plurality", func(t *testing.T) {
		_, majority := MajorityVote([]string{"x", "x", "y", "y"})
		assert.False(t, majority)
	})
	t.Run("empty", func(t *testing.T) {
		winner, majority := MajorityVote(nil)
		assert.Empty(t, winner)
		assert.False(t, majority)
	})
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 5.0, Median([]float64{5}))
	assert.Equal(t, 3.0, Median([]float64{1, 3, 9}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestIQR(t *testing.T) {
	assert.Equal(t, 0.0, IQR([]float64{7}))
	// Odd sample: quartiles exclude the middle element.
	assert.Equal(t, 7.0, IQR([]float64{1, 2, 5, 8, 9}))
	assert.Equal(t, 2.0, IQR([]float64{1, 2, 3, 4}))
}

func TestConverged(t *testing.T) {
	assert.False(t, Converged([]float64{100}), "single estimate never converges")
	assert.True(t, Converged([]float64{100, 101, 102}))
	assert.False(t, Converged([]float64{10, 100, 1000}))
	assert.True(t, Converged([]float64{0, 0, 0}), "zero median with zero spread")
	assert.False(t, Converged([]float64{-1, 0, 1}), "zero median with spread")
	assert.True(t, Converged([]float64{-101, -100, -99}), "negative medians compare by magnitude")
}

func TestResolvePolarity(t *testing.T) {
	assert.Equal(t, "-", ResolvePolarity([]string{"-", "-", "+"}))
	assert.Equal(t, "+", ResolvePolarity([]string{"-", "+"}), "tie resolves positive")
	assert.Equal(t, "+", ResolvePolarity(nil))
}

func TestLoopType(t *testing.T) {
	assert.Equal(t, LoopReinforcing, LoopType([]CausalEdge{
		{From: "a", To: "b", Polarity: "+"},
		{From: "b", To: "a", Polarity: "+"},
	}))
	assert.Equal(t, LoopBalancing, LoopType([]CausalEdge{
		{From: "a", To: "b", Polarity: "+"},
		{From: "b", To: "a", Polarity: "-"},
	}))
	assert.Equal(t, LoopReinforcing, LoopType([]CausalEdge{
		{From: "a", To: "b", Polarity: "-"},
		{From: "b", To: "a", Polarity: "-"},
	}), "two negatives reinforce")
}

func TestFindLoops(t *testing.T) {
	loops := FindLoops([]CausalEdge{
		{From: "a", To: "b", Polarity: "+"},
		{From: "b", To: "a", Polarity: "-"},
		{From: "b", To: "c", Polarity: "+"},
	})
	require.Len(t, loops, 1, "the same cycle found from both endpoints counts once")
	assert.Len(t, loops[0], 2)

	t.Run("two distinct loops sharing a node", func(t *testing.T) {
		loops := FindLoops([]CausalEdge{
			{From: "a", To: "b", Polarity: "+"},
			{From: "b", To: "a", Polarity: "+"},
			{From: "b", To: "c", Polarity: "+"},
			{From: "c", To: "b", Polarity: "-"},
		})
		assert.Len(t, loops, 2)
	})

	t.Run("cycles beyond the depth cap are dropped", func(t *testing.T) {
		var edges []CausalEdge
		names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8"}
		for i := range names {
			edges = append(edges, CausalEdge{From: names[i], To: names[(i+1)%len(names)], Polarity: "+"})
		}
		assert.Empty(t, FindLoops(edges), "9-node cycle exceeds the depth cap")
	})

	t.Run("acyclic graph", func(t *testing.T) {
		assert.Empty(t, FindLoops([]CausalEdge{
			{From: "a", To: "b", Polarity: "+"},
			{From: "b", To: "c", Polarity: "+"},
		}))
	})
}

func TestArchetype(t *testing.T) {
	assert.Equal(t, "limits to growth", Archetype(1, 1))
	assert.Equal(t, "success to the successful", Archetype(2, 0))
	assert.Equal(t, "escalation", Archetype(1, 0))
	assert.Equal(t, "fixes that fail", Archetype(0, 2))
	assert.Equal(t, "balancing process with delay", Archetype(0, 1))
	assert.Equal(t, "no dominant archetype", Archetype(0, 0))
}

func TestMajorityScore(t *testing.T) {
	assert.Equal(t, ScoreInconsistent, MajorityScore([]string{"I", "I", "C"}))
	assert.Equal(t, ScoreNeutral, MajorityScore([]string{"I", "C"}), "tie is neutral")
	assert.Equal(t, ScoreNeutral, MajorityScore(nil))
	assert.Equal(t, ScoreConsistent, MajorityScore([]string{"C"}))
}

func TestEliminateHypotheses(t *testing.T) {
	eliminated := EliminateHypotheses(map[string]int{"H1": 0, "H2": 1, "H3": 3, "H4": 3})
	assert.False(t, eliminated["H1"])
	assert.False(t, eliminated["H2"])
	assert.True(t, eliminated["H3"])
	assert.True(t, eliminated["H4"])

	t.Run("uniform counts eliminate nothing", func(t *testing.T) {
		eliminated := EliminateHypotheses(map[string]int{"H1": 2, "H2": 2})
		assert.False(t, eliminated["H1"])
		assert.False(t, eliminated["H2"])
	})
}

func TestInconsistencyCounts(t *testing.T) {
	counts := InconsistencyCounts(map[string]map[string]string{
		"E1": {"H1": "C", "H2": "I"},
		"E2": {"H1": "N", "H2": "I"},
	})
	assert.Equal(t, map[string]int{"H1": 0, "H2": 2}, counts)
}

func TestDiagnosticity(t *testing.T) {
	assert.Equal(t, 0.0, Diagnosticity(nil))
	assert.Equal(t, 0.25, Diagnosticity([]string{"C", "C", "C", "C"}), "uniform row tells us nothing")
	assert.Equal(t, 0.75, Diagnosticity([]string{"C", "I", "N", "C"}))
}

func TestDedupStrings(t *testing.T) {
	out := DedupStrings([]string{"Market risk", "  market risk ", "", "Churn", "churn", "Market Risk"})
	assert.Equal(t, []string{"Market risk", "Churn"}, out)
}

func TestParseConstraints(t *testing.T) {
	raw := `Here are the constraints:
[
  {"agent": "cfo", "kind": "budget", "strength": "HARD", "description": "Cap at $2M", "value": "2000000"},
  {"agent": "cto", "kind": "timeline", "description": "Prefer Q3"},
  {"agent": "ghost"}
]`
	cs := ParseConstraints(raw)
	require.Len(t, cs, 2, "items with neither kind nor description are dropped")
	assert.Equal(t, "hard", cs[0].Strength)
	assert.Equal(t, "soft", cs[1].Strength, "strength defaults to soft")
	assert.Equal(t, "Cap at $2M", cs[0].Description)
}

func TestConstraintTable(t *testing.T) {
	cs := []Constraint{
		{Agent: "cfo", Kind: "budget", Strength: "hard", Description: "Cap at $2M", Value: "2000000"},
		{Agent: "cto", Kind: "timeline", Strength: "soft", Description: "Prefer Q3"},
	}
	table := ConstraintTable(cs, "cfo")
	assert.NotContains(t, table, "cfo")
	assert.Contains(t, table, "cto [timeline/soft] Prefer Q3")

	assert.Equal(t, "(no peer constraints declared yet)", ConstraintTable(nil, "cfo"))
}

func TestClassifyFailureModes(t *testing.T) {
	raw := `[
  {"description": "Vendor lock-in", "named_by": ["cfo"]},
  {"description": "Team burnout", "named_by": ["cto", "coo", "cto"]},
  {"description": ""}
]`
	modes := ClassifyFailureModes(raw)
	require.Len(t, modes, 2)
	assert.Equal(t, "Team burnout", modes[0].Description, "broadest agreement sorts first")
	assert.Equal(t, FailureConvergent, modes[0].Classification)
	assert.Equal(t, []string{"cto", "coo"}, modes[0].NamedBy)
	assert.Equal(t, FailureUnique, modes[1].Classification)
}

func TestConsensusDomain(t *testing.T) {
	assert.Equal(t, "complex", ConsensusDomain([]string{"complex", "Complex ", "complicated"}))
	assert.Equal(t, "confused", ConsensusDomain([]string{"complex", "complicated"}), "no strict majority")
	assert.Equal(t, "confused", ConsensusDomain([]string{"banana", "banana", "banana"}), "invalid votes count as confused")
	assert.Equal(t, "confused", ConsensusDomain(nil))
}

func TestParseVerdict(t *testing.T) {
	assert.Equal(t, VerdictFalsified, ParseVerdict("Verdict: FALSIFIED. Condition 2 was substantiated."))
	assert.Equal(t, VerdictWeakened, ParseVerdict("The recommendation survives but WEAKENED on cost grounds."))
	assert.Equal(t, VerdictSurvives, ParseVerdict("verdict: survives"))
	assert.Equal(t, VerdictWeakened, ParseVerdict("no keyword here"), "missing verdict reads as weakened")
	assert.Equal(t, VerdictFalsified, ParseVerdict("WEAKENED at first glance, but ultimately FALSIFIED"))
}
