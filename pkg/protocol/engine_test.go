package protocol

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/consilium-ai/consilium/pkg/roster"
)

func writeStage(name, topic string) Stage {
	return Stage{
		Name:    name,
		Trigger: Always(),
		Exec: func(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ Config) error {
			bb.Write(topic, "content", blackboard.AuthorSystem, name, nil)
			return nil
		},
	}
}

func TestRun_WritesQuestionFirst(t *testing.T) {
	def := Definition{ProtocolID: "test", Stages: nil}
	bb, err := Run(context.Background(), def, "should we?", nil, Config{})
	require.NoError(t, err)

	entry := bb.ReadLatest(TopicQuestion, nil)
	require.NotNil(t, entry)
	assert.Equal(t, "should we?", entry.Content)
	assert.Equal(t, blackboard.AuthorSystem, entry.Author)
	assert.Equal(t, "init", entry.Stage)
	assert.Equal(t, blackboard.ScopeAll, entry.Metadata["scope"])
}

func TestRun_FiresEachStageOnceInOrder(t *testing.T) {
	var order []string
	record := func(name string, trigger Trigger) Stage {
		return Stage{
			Name:    name,
			Trigger: trigger,
			Exec: func(_ context.Context, bb *blackboard.Blackboard, _ []*roster.Agent, _ Config) error {
				order = append(order, name)
				bb.Write(name, "done", blackboard.AuthorSystem, name, nil)
				return nil
			},
		}
	}

	def := Definition{ProtocolID: "test", Stages: []Stage{
		record("synthesis", AfterAll("a", "b")),
		record("a", Always()),
		record("b", After("a")),
	}}

	_, err := Run(context.Background(), def, "q", nil, Config{})
	require.NoError(t, err)
	// Pass 1 fires only "a" (declaration order scans synthesis first, whose
	// trigger is still false). Pass 2 fires "b", pass 3 the synthesis.
	assert.Equal(t, []string{"a", "b", "synthesis"}, order)
}

func TestRun_SamePassDeclarationOrder(t *testing.T) {
	var order []string
	def := Definition{ProtocolID: "test", Stages: []Stage{
		{Name: "first", Trigger: Always(), Exec: func(context.Context, *blackboard.Blackboard, []*roster.Agent, Config) error {
			order = append(order, "first")
			return nil
		}},
		{Name: "second", Trigger: Always(), Exec: func(context.Context, *blackboard.Blackboard, []*roster.Agent, Config) error {
			order = append(order, "second")
			return nil
		}},
	}}

	_, err := Run(context.Background(), def, "q", nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRun_InfeasibleProtocolTerminates(t *testing.T) {
	fired := false
	def := Definition{ProtocolID: "test", Stages: []Stage{
		{Name: "unreachable", Trigger: After("never-written"), Exec: func(context.Context, *blackboard.Blackboard, []*roster.Agent, Config) error {
			fired = true
			return nil
		}},
	}}

	_, err := Run(context.Background(), def, "q", nil, Config{})
	require.NoError(t, err)
	assert.False(t, fired, "deadlocked stage must not fire")
}

func TestRun_StageErrorPropagates(t *testing.T) {
	def := Definition{ProtocolID: "test", Stages: []Stage{
		{Name: "boom", Trigger: Always(), Exec: func(context.Context, *blackboard.Blackboard, []*roster.Agent, Config) error {
			return fmt.Errorf("provider unavailable")
		}},
	}}

	_, err := Run(context.Background(), def, "q", nil, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage boom failed")
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestRun_CancelledContextStopsBetweenPasses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	def := Definition{ProtocolID: "test", Stages: []Stage{writeStage("a", "a")}}
	_, err := Run(ctx, def, "q", nil, Config{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTriggers(t *testing.T) {
	bb := blackboard.New("test")
	assert.True(t, Always()(bb))
	assert.False(t, After("s1")(bb))
	assert.False(t, AfterAny("s1", "s2")(bb))

	bb.Write("t", "x", "alice", "s1", nil)
	assert.True(t, After("s1")(bb))
	assert.True(t, AfterAny("s1", "s2")(bb))
	assert.False(t, AfterAll("s1", "s2")(bb))

	bb.Write("t", "y", "bob", "s2", nil)
	assert.True(t, AfterAll("s1", "s2")(bb))
}

func TestOnConflictTrigger(t *testing.T) {
	bb := blackboard.New("test")
	trigger := OnConflict("position")
	assert.False(t, trigger(bb))

	bb.Write("position", "expand", "alice", "round1", nil)
	assert.False(t, trigger(bb), "single author is not a conflict")

	bb.Write("position", "expand", "bob", "round1", nil)
	assert.False(t, trigger(bb), "agreement is not a conflict")

	bb.Write("position", "hold", "carol", "round1", nil)
	assert.True(t, trigger(bb))
}

func TestFilterAgents(t *testing.T) {
	agents := []*roster.Agent{
		{Key: "cfo", Category: roster.CategoryExecutive},
		{Key: "cto", Category: roster.CategoryExecutive},
		{Key: "contrarian", Category: roster.CategoryAnalyst},
	}

	assert.Len(t, FilterAgents(agents, ""), 3)

	execs := FilterAgents(agents, "@executive")
	require.Len(t, execs, 2)
	assert.Equal(t, "cfo", execs[0].Key)

	named := FilterAgents(agents, "cto, contrarian")
	require.Len(t, named, 2)
	assert.Equal(t, "cto", named[0].Key)
	assert.Equal(t, "contrarian", named[1].Key)

	assert.Empty(t, FilterAgents(agents, "@specialist"))
}

func TestExpand(t *testing.T) {
	vars := map[string]string{"question": "Q", "context": "C"}
	assert.Equal(t, "ask Q with C", Expand("ask {question} with {context}", vars))
	assert.Equal(t, "ask  now", Expand("ask {missing} now", vars))
	assert.Equal(t, "no placeholders", Expand("no placeholders", nil))
	assert.Equal(t, "{not a key}", Expand("{not a key}", vars), "spaces are not placeholder names")
}

func TestRegistry(t *testing.T) {
	m := Manifest{Key: "test-registry-proto", ProtocolID: "p99", Category: CategoryCore}
	Register(m, func(Caller) Runner { return nil })

	got, ctor, ok := Lookup("test-registry-proto")
	require.True(t, ok)
	assert.Equal(t, "p99", got.ProtocolID)
	assert.NotNil(t, ctor)
	assert.True(t, got.ToolsEnabled())

	meta := Manifest{Key: "test-registry-meta", Category: CategoryMeta}
	assert.False(t, meta.ToolsEnabled())

	_, _, ok = Lookup("nope")
	assert.False(t, ok)

	assert.Panics(t, func() { Register(m, func(Caller) Runner { return nil }) })
}
