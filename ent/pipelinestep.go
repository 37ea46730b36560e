// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
)

// PipelineStep is the model entity for the PipelineStep schema.
type PipelineStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID string `json:"pipeline_id,omitempty"`
	// Position in pipeline: 0, 1, 2...
	StepIndex int `json:"step_index,omitempty"`
	// ProtocolKey holds the value of the "protocol_key" field.
	ProtocolKey string `json:"protocol_key,omitempty"`
	// May reference {prev_output} and {question}
	QuestionTemplate string `json:"question_template,omitempty"`
	// Step-specific roster; empty inherits the run's roster
	AgentKeys []string `json:"agent_keys,omitempty"`
	// Round override for round-based protocols
	Rounds int `json:"rounds,omitempty"`
	// Per-step override of the default thinking model
	ThinkingModel string `json:"thinking_model,omitempty"`
	// Per-step override of the default orchestration model
	OrchestrationModel string `json:"orchestration_model,omitempty"`
	// Pass the step's synthesis verbatim as the next step's {prev_output} without re-synthesis
	OutputPassthrough bool `json:"output_passthrough,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineStepQuery when eager-loading is set.
	Edges        PipelineStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineStepEdges holds the relations/edges for other nodes in the graph.
type PipelineStepEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *Pipeline `json:"pipeline,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineStepEdges) PipelineOrErr() (*Pipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldAgentKeys:
			values[i] = new([]byte)
		case pipelinestep.FieldOutputPassthrough:
			values[i] = new(sql.NullBool)
		case pipelinestep.FieldStepIndex, pipelinestep.FieldRounds:
			values[i] = new(sql.NullInt64)
		case pipelinestep.FieldID, pipelinestep.FieldPipelineID, pipelinestep.FieldProtocolKey, pipelinestep.FieldQuestionTemplate, pipelinestep.FieldThinkingModel, pipelinestep.FieldOrchestrationModel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStep fields.
func (_m *PipelineStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinestep.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = value.String
			}
		case pipelinestep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case pipelinestep.FieldProtocolKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field protocol_key", values[i])
			} else if value.Valid {
				_m.ProtocolKey = value.String
			}
		case pipelinestep.FieldQuestionTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_template", values[i])
			} else if value.Valid {
				_m.QuestionTemplate = value.String
			}
		case pipelinestep.FieldAgentKeys:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_keys", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentKeys); err != nil {
					return fmt.Errorf("unmarshal field agent_keys: %w", err)
				}
			}
		case pipelinestep.FieldRounds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rounds", values[i])
			} else if value.Valid {
				_m.Rounds = int(value.Int64)
			}
		case pipelinestep.FieldThinkingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thinking_model", values[i])
			} else if value.Valid {
				_m.ThinkingModel = value.String
			}
		case pipelinestep.FieldOrchestrationModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestration_model", values[i])
			} else if value.Valid {
				_m.OrchestrationModel = value.String
			}
		case pipelinestep.FieldOutputPassthrough:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field output_passthrough", values[i])
			} else if value.Valid {
				_m.OutputPassthrough = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStep.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the PipelineStep entity.
func (_m *PipelineStep) QueryPipeline() *PipelineQuery {
	return NewPipelineStepClient(_m.config).QueryPipeline(_m)
}

// Update returns a builder for updating this PipelineStep.
// Note that you need to call PipelineStep.Unwrap() before calling this method if this PipelineStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStep) Update() *PipelineStepUpdateOne {
	return NewPipelineStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStep) Unwrap() *PipelineStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStep) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pipeline_id=")
	builder.WriteString(_m.PipelineID)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("protocol_key=")
	builder.WriteString(_m.ProtocolKey)
	builder.WriteString(", ")
	builder.WriteString("question_template=")
	builder.WriteString(_m.QuestionTemplate)
	builder.WriteString(", ")
	builder.WriteString("agent_keys=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentKeys))
	builder.WriteString(", ")
	builder.WriteString("rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rounds))
	builder.WriteString(", ")
	builder.WriteString("thinking_model=")
	builder.WriteString(_m.ThinkingModel)
	builder.WriteString(", ")
	builder.WriteString("orchestration_model=")
	builder.WriteString(_m.OrchestrationModel)
	builder.WriteString(", ")
	builder.WriteString("output_passthrough=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputPassthrough))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineSteps is a parsable slice of PipelineStep.
type PipelineSteps []*PipelineStep
