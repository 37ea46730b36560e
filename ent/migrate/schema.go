// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_key", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "max_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "frameworks", Type: field.TypeJSON, Nullable: true},
		{Name: "deliverable_template", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "communication_style", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "context_scope", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_category",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
		},
	}
	// AgentOutputsColumns holds the columns for the "agent_outputs" table.
	AgentOutputsColumns = []*schema.Column{
		{Name: "output_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "round", Type: field.TypeInt, Nullable: true},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "run_step_id", Type: field.TypeString, Nullable: true},
	}
	// AgentOutputsTable holds the schema information for the "agent_outputs" table.
	AgentOutputsTable = &schema.Table{
		Name:       "agent_outputs",
		Columns:    AgentOutputsColumns,
		PrimaryKey: []*schema.Column{AgentOutputsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_outputs_runs_outputs",
				Columns:    []*schema.Column{AgentOutputsColumns[11]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_outputs_run_steps_outputs",
				Columns:    []*schema.Column{AgentOutputsColumns[12]},
				RefColumns: []*schema.Column{RunStepsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentoutput_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentOutputsColumns[11]},
			},
			{
				Name:    "agentoutput_run_id_agent_name",
				Unique:  false,
				Columns: []*schema.Column{AgentOutputsColumns[11], AgentOutputsColumns[1]},
			},
		},
	}
	// PipelinesColumns holds the columns for the "pipelines" table.
	PipelinesColumns = []*schema.Column{
		{Name: "pipeline_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelinesTable holds the schema information for the "pipelines" table.
	PipelinesTable = &schema.Table{
		Name:       "pipelines",
		Columns:    PipelinesColumns,
		PrimaryKey: []*schema.Column{PipelinesColumns[0]},
	}
	// PipelineStepsColumns holds the columns for the "pipeline_steps" table.
	PipelineStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "protocol_key", Type: field.TypeString},
		{Name: "question_template", Type: field.TypeString, Size: 2147483647},
		{Name: "agent_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "rounds", Type: field.TypeInt, Nullable: true},
		{Name: "thinking_model", Type: field.TypeString, Nullable: true},
		{Name: "orchestration_model", Type: field.TypeString, Nullable: true},
		{Name: "output_passthrough", Type: field.TypeBool, Default: false},
		{Name: "pipeline_id", Type: field.TypeString},
	}
	// PipelineStepsTable holds the schema information for the "pipeline_steps" table.
	PipelineStepsTable = &schema.Table{
		Name:       "pipeline_steps",
		Columns:    PipelineStepsColumns,
		PrimaryKey: []*schema.Column{PipelineStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_steps_pipelines_steps",
				Columns:    []*schema.Column{PipelineStepsColumns[9]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestep_pipeline_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{PipelineStepsColumns[9], PipelineStepsColumns[1]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"protocol", "pipeline"}},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "protocol_key", Type: field.TypeString, Nullable: true},
		{Name: "pipeline_id", Type: field.TypeString, Nullable: true},
		{Name: "team_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "rounds", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "synthesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[8]},
			},
			{
				Name:    "run_protocol_key",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3]},
			},
			{
				Name:    "run_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[8], RunsColumns[9]},
			},
		},
	}
	// RunStepsColumns holds the columns for the "run_steps" table.
	RunStepsColumns = []*schema.Column{
		{Name: "run_step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "protocol_key", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "synthesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunStepsTable holds the schema information for the "run_steps" table.
	RunStepsTable = &schema.Table{
		Name:       "run_steps",
		Columns:    RunStepsColumns,
		PrimaryKey: []*schema.Column{RunStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_steps_runs_steps",
				Columns:    []*schema.Column{RunStepsColumns[11]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runstep_run_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{RunStepsColumns[11], RunStepsColumns[1]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_keys", Type: field.TypeJSON},
		{Name: "default_protocol", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentOutputsTable,
		PipelinesTable,
		PipelineStepsTable,
		RunsTable,
		RunStepsTable,
		TeamsTable,
	}
)

func init() {
	AgentOutputsTable.ForeignKeys[0].RefTable = RunsTable
	AgentOutputsTable.ForeignKeys[1].RefTable = RunStepsTable
	PipelineStepsTable.ForeignKeys[0].RefTable = PipelinesTable
	RunStepsTable.ForeignKeys[0].RefTable = RunsTable
}
