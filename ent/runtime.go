// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/consilium-ai/consilium/ent/agent"
	"github.com/consilium-ai/consilium/ent/agentoutput"
	"github.com/consilium-ai/consilium/ent/pipeline"
	"github.com/consilium-ai/consilium/ent/pipelinestep"
	"github.com/consilium-ai/consilium/ent/run"
	"github.com/consilium-ai/consilium/ent/runstep"
	"github.com/consilium-ai/consilium/ent/schema"
	"github.com/consilium-ai/consilium/ent/team"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[12].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[13].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentoutputFields := schema.AgentOutput{}.Fields()
	_ = agentoutputFields
	// agentoutputDescCreatedAt is the schema descriptor for created_at field.
	agentoutputDescCreatedAt := agentoutputFields[12].Descriptor()
	// agentoutput.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentoutput.DefaultCreatedAt = agentoutputDescCreatedAt.Default.(func() time.Time)
	pipelineFields := schema.Pipeline{}.Fields()
	_ = pipelineFields
	// pipelineDescCreatedAt is the schema descriptor for created_at field.
	pipelineDescCreatedAt := pipelineFields[3].Descriptor()
	// pipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipeline.DefaultCreatedAt = pipelineDescCreatedAt.Default.(func() time.Time)
	// pipelineDescUpdatedAt is the schema descriptor for updated_at field.
	pipelineDescUpdatedAt := pipelineFields[4].Descriptor()
	// pipeline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipeline.DefaultUpdatedAt = pipelineDescUpdatedAt.Default.(func() time.Time)
	// pipeline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipeline.UpdateDefaultUpdatedAt = pipelineDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinestepFields := schema.PipelineStep{}.Fields()
	_ = pipelinestepFields
	// pipelinestepDescOutputPassthrough is the schema descriptor for output_passthrough field.
	pipelinestepDescOutputPassthrough := pipelinestepFields[9].Descriptor()
	// pipelinestep.DefaultOutputPassthrough holds the default value on creation for the output_passthrough field.
	pipelinestep.DefaultOutputPassthrough = pipelinestepDescOutputPassthrough.Default.(bool)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[9].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	runstepFields := schema.RunStep{}.Fields()
	_ = runstepFields
	// runstepDescCreatedAt is the schema descriptor for created_at field.
	runstepDescCreatedAt := runstepFields[11].Descriptor()
	// runstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	runstep.DefaultCreatedAt = runstepDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[5].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[6].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
}
