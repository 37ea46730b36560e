// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentOutput is the predicate function for agentoutput builders.
type AgentOutput func(*sql.Selector)

// Pipeline is the predicate function for pipeline builders.
type Pipeline func(*sql.Selector)

// PipelineStep is the predicate function for pipelinestep builders.
type PipelineStep func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunStep is the predicate function for runstep builders.
type RunStep func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)
