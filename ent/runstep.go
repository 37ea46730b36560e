// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
)

// RunStep is the model entity for the RunStep schema.
type RunStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// ProtocolKey holds the value of the "protocol_key" field.
	ProtocolKey string `json:"protocol_key,omitempty"`
	// Question after {prev_output} substitution
	Question string `json:"question,omitempty"`
	// Status holds the value of the "status" field.
	Status runstep.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Synthesis holds the value of the "synthesis" field.
	Synthesis *string `json:"synthesis,omitempty"`
	// ResultJSON holds the value of the "result_json" field.
	ResultJSON *string `json:"result_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunStepQuery when eager-loading is set.
	Edges        RunStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunStepEdges holds the relations/edges for other nodes in the graph.
type RunStepEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Outputs holds the value of the outputs edge.
	Outputs []*AgentOutput `json:"outputs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunStepEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// OutputsOrErr returns the Outputs value or an error if the edge
// was not loaded in eager-loading.
func (e RunStepEdges) OutputsOrErr() ([]*AgentOutput, error) {
	if e.loadedTypes[1] {
		return e.Outputs, nil
	}
	return nil, &NotLoadedError{edge: "outputs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runstep.FieldStepIndex:
			values[i] = new(sql.NullInt64)
		case runstep.FieldID, runstep.FieldRunID, runstep.FieldProtocolKey, runstep.FieldQuestion, runstep.FieldStatus, runstep.FieldSynthesis, runstep.FieldResultJSON, runstep.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case runstep.FieldStartedAt, runstep.FieldCompletedAt, runstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunStep fields.
func (_m *RunStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runstep.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case runstep.FieldProtocolKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field protocol_key", values[i])
			} else if value.Valid {
				_m.ProtocolKey = value.String
			}
		case runstep.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case runstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = runstep.Status(value.String)
			}
		case runstep.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case runstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case runstep.FieldSynthesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis", values[i])
			} else if value.Valid {
				_m.Synthesis = new(string)
				*_m.Synthesis = value.String
			}
		case runstep.FieldResultJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_json", values[i])
			} else if value.Valid {
				_m.ResultJSON = new(string)
				*_m.ResultJSON = value.String
			}
		case runstep.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case runstep.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RunStep.
// This includes values selected through modifiers, order, etc.
func (_m *RunStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunStep entity.
func (_m *RunStep) QueryRun() *RunQuery {
	return NewRunStepClient(_m.config).QueryRun(_m)
}

// QueryOutputs queries the "outputs" edge of the RunStep entity.
func (_m *RunStep) QueryOutputs() *AgentOutputQuery {
	return NewRunStepClient(_m.config).QueryOutputs(_m)
}

// Update returns a builder for updating this RunStep.
// Note that you need to call RunStep.Unwrap() before calling this method if this RunStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunStep) Update() *RunStepUpdateOne {
	return NewRunStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunStep) Unwrap() *RunStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunStep) String() string {
	var builder strings.Builder
	builder.WriteString("RunStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("protocol_key=")
	builder.WriteString(_m.ProtocolKey)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Synthesis; v != nil {
		builder.WriteString("synthesis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultJSON; v != nil {
		builder.WriteString("result_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunSteps is a parsable slice of RunStep.
type RunSteps []*RunStep
