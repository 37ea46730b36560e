package protocols

import "sort"

// BordaTally scores ranked ballots: with K options, rank r (1-based) earns
// K-r points. Returns total points per option.
func BordaTally(rankings [][]string) map[string]int {
	points := make(map[string]int)
	for _, ballot := range rankings {
		k := len(ballot)
		for i, option := range ballot {
			points[option] += k - i - 1
		}
	}
	return points
}

// PairwiseWins counts, for each option, how many head-to-head matchups it
// wins across all ballots (an option beats another when a majority of
// ballots rank it higher).
func PairwiseWins(rankings [][]string) map[string]int {
	options := make(map[string]bool)
	for _, ballot := range rankings {
		for _, o := range ballot {
			options[o] = true
		}
	}

	rank := func(ballot []string, option string) int {
		for i, o := range ballot {
			if o == option {
				return i
			}
		}
		return len(ballot) // unranked sorts last
	}

	wins := make(map[string]int, len(options))
	for a := range options {
		wins[a] = 0
		for b := range options {
			if a == b {
				continue
			}
			prefer := 0
			for _, ballot := range rankings {
				if rank(ballot, a) < rank(ballot, b) {
					prefer++
				}
			}
			if prefer*2 > len(rankings) {
				wins[a]++
			}
		}
	}
	return wins
}

// CondorcetWinner is the option that wins every head-to-head matchup, when
// one exists.
func CondorcetWinner(rankings [][]string) (string, bool) {
	wins := PairwiseWins(rankings)
	for option, w := range wins {
		if w == len(wins)-1 {
			return option, true
		}
	}
	return "", false
}

// VickreyOutcome picks the highest bidder, who pays the second-highest bid.
// Ties break lexicographically by bidder name so the outcome is stable.
func VickreyOutcome(bids map[string]float64) (winner string, price float64) {
	if len(bids) == 0 {
		return "", 0
	}

	names := make([]string, 0, len(bids))
	for name := range bids {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if bids[names[i]] != bids[names[j]] {
			return bids[names[i]] > bids[names[j]]
		}
		return names[i] < names[j]
	})

	winner = names[0]
	if len(names) > 1 {
		price = bids[names[1]]
	} else {
		price = bids[winner]
	}
	return winner, price
}

// MajorityVote returns the plurality value and whether it is a strict
// majority. Ties on the plurality count report no majority.
func MajorityVote(votes []string) (string, bool) {
	if len(votes) == 0 {
		return "", false
	}
	counts := make(map[string]int)
	for _, v := range votes {
		counts[v]++
	}

	best, bestCount, tied := "", 0, false
	for v, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount, tied = v, c, false
		case c == bestCount:
			tied = true
		}
	}
	if tied {
		return best, false
	}
	return best, bestCount*2 > len(votes)
}
