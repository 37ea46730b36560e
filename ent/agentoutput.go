// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
)

// AgentOutput is the model entity for the AgentOutput schema.
type AgentOutput struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Owning pipeline step; unset for single-protocol runs
	RunStepID string `json:"run_step_id,omitempty"`
	// Display name, or '_synthesis' for the merged recommendation
	AgentName string `json:"agent_name,omitempty"`
	// Model that produced the output; empty for system rows
	ModelID string `json:"model_id,omitempty"`
	// Round number for round-structured protocols
	Round int `json:"round,omitempty"`
	// Stage name for stage-structured protocols
	Stage string `json:"stage,omitempty"`
	// Output holds the value of the "output" field.
	Output string `json:"output,omitempty"`
	// Tool names invoked while producing the output, in call order
	ToolCalls []string `json:"tool_calls,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentOutputQuery when eager-loading is set.
	Edges        AgentOutputEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentOutputEdges holds the relations/edges for other nodes in the graph.
type AgentOutputEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Step holds the value of the step edge.
	Step *RunStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentOutputEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentOutputEdges) StepOrErr() (*RunStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: runstep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentOutput) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentoutput.FieldToolCalls:
			values[i] = new([]byte)
		case agentoutput.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case agentoutput.FieldRound, agentoutput.FieldInputTokens, agentoutput.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case agentoutput.FieldID, agentoutput.FieldRunID, agentoutput.FieldRunStepID, agentoutput.FieldAgentName, agentoutput.FieldModelID, agentoutput.FieldStage, agentoutput.FieldOutput:
			values[i] = new(sql.NullString)
		case agentoutput.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentOutput fields.
func (_m *AgentOutput) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentoutput.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentoutput.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentoutput.FieldRunStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_step_id", values[i])
			} else if value.Valid {
				_m.RunStepID = value.String
			}
		case agentoutput.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case agentoutput.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case agentoutput.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case agentoutput.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case agentoutput.FieldOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value.Valid {
				_m.Output = value.String
			}
		case agentoutput.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case agentoutput.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case agentoutput.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case agentoutput.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case agentoutput.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentOutput.
// This includes values selected through modifiers, order, etc.
func (_m *AgentOutput) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentOutput entity.
func (_m *AgentOutput) QueryRun() *RunQuery {
	return NewAgentOutputClient(_m.config).QueryRun(_m)
}

// QueryStep queries the "step" edge of the AgentOutput entity.
func (_m *AgentOutput) QueryStep() *RunStepQuery {
	return NewAgentOutputClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this AgentOutput.
// Note that you need to call AgentOutput.Unwrap() before calling this method if this AgentOutput
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentOutput) Update() *AgentOutputUpdateOne {
	return NewAgentOutputClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentOutput entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentOutput) Unwrap() *AgentOutput {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentOutput is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentOutput) String() string {
	var builder strings.Builder
	builder.WriteString("AgentOutput(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("run_step_id=")
	builder.WriteString(_m.RunStepID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(_m.Output)
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentOutputs is a parsable slice of AgentOutput.
type AgentOutputs []*AgentOutput
