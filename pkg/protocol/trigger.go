// Package protocol defines the execution engine shared by every protocol:
// trigger predicates, stage descriptors, the scan-fire loop, the result
// variants handed back to the run controller, and the protocol registry.
package protocol

import "github.com/consilium-ai/consilium/pkg/blackboard"

// Trigger is a pure predicate over blackboard state. The engine may evaluate
// a trigger any number of times before it fires.
type Trigger func(bb *blackboard.Blackboard) bool

// Always fires unconditionally. Initial stages use it.
func Always() Trigger {
	return func(*blackboard.Blackboard) bool { return true }
}

// After fires once the named stage has at least one write.
func After(stage string) Trigger {
	return func(bb *blackboard.Blackboard) bool {
		return bb.StagesCompleted()[stage]
	}
}

// AfterAll fires once every named stage has written.
func AfterAll(stages ...string) Trigger {
	return func(bb *blackboard.Blackboard) bool {
		done := bb.StagesCompleted()
		for _, s := range stages {
			if !done[s] {
				return false
			}
		}
		return true
	}
}

// AfterAny fires once any named stage has written.
func AfterAny(stages ...string) Trigger {
	return func(bb *blackboard.Blackboard) bool {
		done := bb.StagesCompleted()
		for _, s := range stages {
			if done[s] {
				return true
			}
		}
		return false
	}
}

// OnConflict fires when the topic holds same-stage entries from different
// authors with differing content.
func OnConflict(topic string) Trigger {
	return func(bb *blackboard.Blackboard) bool {
		return len(bb.Conflicts(topic)) > 0
	}
}
