package protocols

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/protocol"
	"github.com/consilium-ai/consilium/pkg/protocol/stages"
	"github.com/consilium-ai/consilium/pkg/roster"
)

// Voting protocols: sealed ballots, pure-compute tallies, synthesis.
const (
	KeyVickrey   = "vickrey"
	KeyBorda     = "borda"
	KeyCondorcet = "condorcet"
)

func init() {
	protocol.Register(protocol.Manifest{
		Key:          KeyVickrey,
		ProtocolID:   KeyVickrey,
		Name:         "Vickrey Confidence Auction",
		Category:     protocol.CategoryDecision,
		ProblemTypes: []string{"selection", "prioritization"},
		CostTier:     "medium",
		MinAgents:    2,
		MaxAgents:    8,
		Description:  "Agents seal confidence bids on their positions; the winner pays the second-highest confidence and must re-justify at that calibrated level.",
		WhenToUse:    "Surfacing honest confidence when advocates oversell.",
		WhenNotToUse: "Questions where confidence is not the deciding axis.",
	}, func(c protocol.Caller) protocol.Runner { return &vickrey{caller: c} })

	protocol.Register(protocol.Manifest{
		Key:          KeyBorda,
		ProtocolID:   KeyBorda,
		Name:         "Borda Count",
		Category:     protocol.CategoryDecision,
		ProblemTypes: []string{"selection", "ranking"},
		CostTier:     "low",
		MinAgents:    3,
		MaxAgents:    9,
		Description:  "Sealed full rankings over the candidate options, tallied by Borda points.",
		WhenToUse:    "Picking among several options where breadth of support matters.",
		WhenNotToUse: "Binary decisions.",
	}, func(c protocol.Caller) protocol.Runner { return &rankedVote{caller: c, key: KeyBorda} })

	protocol.Register(protocol.Manifest{
		Key:          KeyCondorcet,
		ProtocolID:   KeyCondorcet,
		Name:         "Condorcet Vote",
		Category:     protocol.CategoryDecision,
		ProblemTypes: []string{"selection", "ranking"},
		CostTier:     "low",
		MinAgents:    3,
		MaxAgents:    9,
		Description:  "Sealed rankings resolved by pairwise head-to-head wins, with a Borda tie-break when no Condorcet winner exists.",
		WhenToUse:    "Selections where majority-preferred beats broadly-liked.",
		WhenNotToUse: "Binary decisions.",
	}, func(c protocol.Caller) protocol.Runner { return &rankedVote{caller: c, key: KeyCondorcet} })
}

// optionsStage has the orchestration model enumerate the candidate options.
func optionsStage(caller protocol.Caller) protocol.Stage {
	return protocol.Stage{
		Name:    "options",
		Trigger: protocol.Always(),
		Exec: stages.Mechanical(caller, stages.MechanicalOptions{
			Name:        "options",
			OutputTopic: "options",
			System:      "You enumerate decision options. Output only JSON.",
			PromptTemplate: "Decision:\n\n{question}\n\n" +
				"Enumerate the three to five distinct candidate options. Output a JSON list of short option labels.",
			Parser: func(raw string) any {
				return DedupStrings(stringList(stages.ExtractJSONValue(raw)))
			},
		}),
	}
}

// ballotRankings parses each agent's sealed ranking, dropping unknown
// options and padding nothing.
func ballotRankings(bb *blackboard.Blackboard, options []string) [][]string {
	known := make(map[string]string, len(options)) // lowercase → canonical
	for _, o := range options {
		known[strings.ToLower(o)] = o
	}

	var ballots [][]string
	for _, entry := range bb.Read("ballots", nil) {
		var ballot []string
		seen := map[string]bool{}
		for _, item := range stringList(stages.ExtractJSONValue(stages.ContentText(entry))) {
			canonical, ok := known[strings.ToLower(strings.TrimSpace(item))]
			if !ok || seen[canonical] {
				continue
			}
			seen[canonical] = true
			ballot = append(ballot, canonical)
		}
		if len(ballot) > 0 {
			ballots = append(ballots, ballot)
		}
	}
	return ballots
}

// rankedVote covers borda and condorcet; only the tally differs.
type rankedVote struct {
	caller protocol.Caller
	key    string
}

// VoteTally is the tally stage's output.
type VoteTally struct {
	Options   []string       `json:"options"`
	Ballots   [][]string     `json:"ballots"`
	Points    map[string]int `json:"points,omitempty"`    // borda
	Pairwise  map[string]int `json:"pairwise,omitempty"`  // condorcet
	TieBreak  bool           `json:"tie_break,omitempty"` // condorcet fell back to borda
	Winner    string         `json:"winner"`
	Condorcet bool           `json:"condorcet,omitempty"`
}

func (p *rankedVote) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: p.key, Stages: []protocol.Stage{
		optionsStage(p.caller),
		{
			Name:    "ballots",
			Trigger: protocol.After("options"),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:          "ballots",
				InputTopic:    "options",
				OutputTopic:   "ballots",
				ScopeOverride: blackboard.ScopeAll,
				PromptTemplate: "Decision: {question}\n\nCandidate options:\n{input}\n\n" +
					"Rank every option from most to least preferred, using the labels verbatim. Output a JSON list in rank order. Your ballot is sealed; do not hedge.",
			}),
		},
		{
			Name:    "tally",
			Trigger: protocol.After("ballots"),
			Exec:    p.tally,
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("tally"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"tally"},
				PromptTemplate: "Decision: {question}\n\nTally:\n{tally}\n\n" +
					"Declare the winner, explain what the ballot pattern says about the group's preference structure, and note any close seconds worth revisiting.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	entry := bb.ReadLatest("tally", nil)
	var tally any
	if entry != nil {
		tally = entry.Content
	}
	return protocol.RawResult(tally, synthesisText(bb)), nil
}

// tally is pure compute over the sealed ballots.
func (p *rankedVote) tally(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
	options := entryStrings(bb, "options")
	ballots := ballotRankings(bb, options)
	result := &VoteTally{Options: options, Ballots: ballots}

	switch p.key {
	case KeyCondorcet:
		result.Pairwise = PairwiseWins(ballots)
		if winner, ok := CondorcetWinner(ballots); ok {
			result.Winner, result.Condorcet = winner, true
		} else {
			result.Points = BordaTally(ballots)
			result.Winner = topScorer(result.Points)
			result.TieBreak = true
		}
	default:
		result.Points = BordaTally(ballots)
		result.Winner = topScorer(result.Points)
	}

	bb.Write("tally", result, blackboard.AuthorSystem, "tally", systemMeta())
	return nil
}

// topScorer breaks point ties lexicographically for a stable outcome.
func topScorer(points map[string]int) string {
	keys := make([]string, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if points[keys[i]] != points[keys[j]] {
			return points[keys[i]] > points[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

type vickrey struct {
	caller protocol.Caller
}

// AuctionOutcome is the vickrey tally output.
type AuctionOutcome struct {
	Bids      map[string]float64 `json:"bids"`
	Positions map[string]string  `json:"positions"`
	Winner    string             `json:"winner"`
	Price     float64            `json:"price"`
}

func (p *vickrey) Run(ctx context.Context, question string, agents []*roster.Agent, cfg protocol.Config) (*protocol.Result, error) {
	def := protocol.Definition{ProtocolID: KeyVickrey, Stages: []protocol.Stage{
		{
			Name:    "bids",
			Trigger: protocol.Always(),
			Exec: stages.Parallel(p.caller, stages.ParallelOptions{
				Name:          "bids",
				OutputTopic:   "bids",
				ScopeOverride: blackboard.ScopeAll,
				PromptTemplate: "Decision:\n\n{question}\n\n" +
					"State your recommended position and seal a confidence bid from 0 to 100. The winning bidder pays the second-highest bid, so bid your true confidence. " +
					`Output a JSON object {"position": "...", "confidence": number}.`,
			}),
		},
		{
			Name:    "auction",
			Trigger: protocol.After("bids"),
			Exec:    p.auction,
		},
		{
			Name:    "justification",
			Trigger: protocol.After("auction"),
			Exec:    p.justify,
		},
		{
			Name:    "synthesis",
			Trigger: protocol.After("justification"),
			Exec: stages.Synthesis(p.caller, stages.SynthesisOptions{
				Name:        "synthesis",
				InputTopics: []string{"auction", "justification"},
				PromptTemplate: "Decision: {question}\n\nAuction outcome:\n{auction}\n\nWinner's calibrated justification:\n{justification}\n\n" +
					"State the adopted position, what the bid spread reveals about group confidence, and whether the calibrated justification holds at the clearing price.",
			}),
		},
	}}

	bb, err := protocol.Run(ctx, def, question, agents, cfg)
	if err != nil {
		return nil, err
	}

	entry := bb.ReadLatest("auction", nil)
	var outcome any
	if entry != nil {
		outcome = entry.Content
	}
	return protocol.RawResult(outcome, synthesisText(bb)), nil
}

// auction resolves the sealed bids at the second price. Pure compute.
func (p *vickrey) auction(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ protocol.Config) error {
	outcome := &AuctionOutcome{
		Bids:      map[string]float64{},
		Positions: map[string]string{},
	}
	for _, entry := range bb.Read("bids", nil) {
		parsed := stages.ExtractJSONObject(stages.ContentText(entry))
		confidence, ok := parsed["confidence"].(float64)
		if !ok {
			continue
		}
		outcome.Bids[entry.Author] = confidence
		outcome.Positions[entry.Author] = str(parsed["position"])
	}
	outcome.Winner, outcome.Price = VickreyOutcome(outcome.Bids)

	bb.Write("auction", outcome, blackboard.AuthorSystem, "auction", systemMeta())
	return nil
}

// justify has the winning agent re-argue its position at the clearing price.
func (p *vickrey) justify(ctx context.Context, bb *blackboard.Blackboard, agents []*roster.Agent, cfg protocol.Config) error {
	entry := bb.ReadLatest("auction", nil)
	outcome, _ := entry.Content.(*AuctionOutcome)
	if outcome == nil || outcome.Winner == "" {
		bb.Write("justification", "(no valid bids)", blackboard.AuthorSystem, "justification",
			systemMeta())
		return nil
	}

	var winner *roster.Agent
	for _, a := range agents {
		if stages.AuthorName(a) == outcome.Winner {
			winner = a
			break
		}
	}
	// The justification entry must always land, or synthesis never fires.
	if winner == nil {
		bb.Write("justification", fmt.Sprintf("(winning bidder %s is not in the roster)", outcome.Winner),
			blackboard.AuthorSystem, "justification", systemMeta())
		return nil
	}

	prompt := fmt.Sprintf(
		"You won the confidence auction with your position:\n\n%s\n\n"+
			"The second-highest bid was %.0f, so that is the confidence you pay. "+
			"Re-justify your position as if your confidence were exactly %.0f out of 100: what you would still assert, and what you would soften.",
		outcome.Positions[outcome.Winner], outcome.Price, outcome.Price)

	res, err := p.caller.Call(ctx, llm.CallRequest{
		Agent:           winner,
		Model:           cfg.ThinkingModel,
		Prompt:          prompt,
		ReasoningBudget: cfg.ReasoningBudget,
		Meta:            llm.Meta{RunID: cfg.RunID, AgentName: outcome.Winner},
	})
	if err != nil {
		return err
	}

	bb.Write("justification", res.Text, outcome.Winner, "justification", map[string]any{
		"scope": blackboard.ScopeAll,
		"token_usage": map[string]any{
			"input_tokens":  res.Usage.InputTokens,
			"output_tokens": res.Usage.OutputTokens,
		},
	})
	return nil
}
