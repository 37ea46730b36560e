package protocol

import "encoding/json"

// ResultKind discriminates the shapes protocols hand back to the run
// controller.
type ResultKind string

const (
	// KindPerspectives is a flat list of per-agent responses.
	KindPerspectives ResultKind = "perspectives"
	// KindRounds is round-structured responses (debate, delphi, OODA).
	KindRounds ResultKind = "rounds"
	// KindStages is named stage outputs (six hats phases, falsification).
	KindStages ResultKind = "stages"
	// KindOutputs is a loose agent-name → text map.
	KindOutputs ResultKind = "outputs"
	// KindRaw carries an arbitrary record for protocols with bespoke
	// results; the controller serializes it whole.
	KindRaw ResultKind = "raw"
)

// Perspective is one agent's contribution.
type Perspective struct {
	Name     string `json:"name"`
	Response string `json:"response"`
}

// Round groups the perspectives of one debate/estimation round.
type Round struct {
	Number    int           `json:"number"`
	Responses []Perspective `json:"responses"`
}

// StageOutput is one named stage's output text.
type StageOutput struct {
	Name   string `json:"name"`
	Output string `json:"output"`
}

// Result is the tagged variant every protocol returns. Exactly the fields
// matching Kind are populated; Synthesis is optional on all kinds.
type Result struct {
	Kind         ResultKind        `json:"kind"`
	Perspectives []Perspective     `json:"perspectives,omitempty"`
	Rounds       []Round           `json:"rounds,omitempty"`
	Stages       []StageOutput     `json:"stages,omitempty"`
	Outputs      map[string]string `json:"outputs,omitempty"`
	Synthesis    string            `json:"synthesis,omitempty"`
	Raw          any               `json:"raw,omitempty"`
}

// PerspectivesResult builds a KindPerspectives result.
func PerspectivesResult(perspectives []Perspective, synthesis string) *Result {
	return &Result{Kind: KindPerspectives, Perspectives: perspectives, Synthesis: synthesis}
}

// RoundsResult builds a KindRounds result.
func RoundsResult(rounds []Round, synthesis string) *Result {
	return &Result{Kind: KindRounds, Rounds: rounds, Synthesis: synthesis}
}

// StagesResult builds a KindStages result.
func StagesResult(stages []StageOutput, synthesis string) *Result {
	return &Result{Kind: KindStages, Stages: stages, Synthesis: synthesis}
}

// OutputsResult builds a KindOutputs result.
func OutputsResult(outputs map[string]string, synthesis string) *Result {
	return &Result{Kind: KindOutputs, Outputs: outputs, Synthesis: synthesis}
}

// RawResult builds a KindRaw result.
func RawResult(raw any, synthesis string) *Result {
	return &Result{Kind: KindRaw, Raw: raw, Synthesis: synthesis}
}

// Serialize renders the result as indented JSON, for the controller's
// last-resort extraction path.
func (r *Result) Serialize() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
