package blackboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_VersionsAreMonotonicPerTopic(t *testing.T) {
	bb := New("test")

	for i := 0; i < 5; i++ {
		bb.Write("perspectives", "content", "agent-a", "gather", nil)
	}
	bb.Write("other", "content", "agent-a", "gather", nil)

	entries := bb.Read("perspectives", nil)
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Version)
	}
	assert.Equal(t, 1, bb.Read("other", nil)[0].Version)
}

func TestWrite_ConcurrentWritesStayDense(t *testing.T) {
	bb := New("test")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb.Write("topic", "content", "agent", "stage", nil)
		}()
	}
	wg.Wait()

	entries := bb.Read("topic", nil)
	require.Len(t, entries, 50)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Version, "versions must be 1..N with no gaps")
	}
}

func TestRead_ScopeFiltering(t *testing.T) {
	bb := New("test")
	bb.Write("round1", "financial take", "cfo", "debate", map[string]any{"scope": ScopeFinancial})
	bb.Write("round1", "market take", "cmo", "debate", map[string]any{"scope": ScopeMarket})
	bb.Write("round1", "shared take", "coo", "debate", map[string]any{"scope": ScopeAll})
	bb.Write("round1", "system note", AuthorSystem, "debate", nil)

	t.Run("scoped reader sees own scope, all-tagged, and system", func(t *testing.T) {
		reader := &Reader{Name: "cfo", ContextScope: []string{ScopeFinancial}}
		entries := bb.Read("round1", reader)
		require.Len(t, entries, 3)
		for _, e := range entries {
			scope, _ := e.Metadata["scope"].(string)
			ok := scope == ScopeFinancial || scope == ScopeAll || e.Author == AuthorSystem
			assert.True(t, ok, "entry %q leaked into scope %q", e.Content, ScopeFinancial)
		}
	})

	t.Run("reader with no scopes sees everything", func(t *testing.T) {
		assert.Len(t, bb.Read("round1", &Reader{Name: "observer"}), 4)
	})

	t.Run("reader with all scope sees everything", func(t *testing.T) {
		reader := &Reader{Name: "ceo", ContextScope: []string{ScopeAll}}
		assert.Len(t, bb.Read("round1", reader), 4)
	})

	t.Run("unknown reader scope sees nothing extra", func(t *testing.T) {
		reader := &Reader{Name: "x", ContextScope: []string{"galactic"}}
		entries := bb.Read("round1", reader)
		// all-tagged and system entries remain visible
		assert.Len(t, entries, 2)
	})
}

func TestReadLatest(t *testing.T) {
	bb := New("test")
	assert.Nil(t, bb.ReadLatest("missing", nil))

	bb.Write("topic", "first", "a", "s1", nil)
	bb.Write("topic", "second", "a", "s1", nil)
	latest := bb.ReadLatest("topic", nil)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Content)
	assert.Equal(t, 2, latest.Version)
}

func TestOnWrite_WatchersFireInOrderAndAreIsolated(t *testing.T) {
	bb := New("test")

	var order []string
	bb.OnWrite(func(e *Entry) { order = append(order, "first") })
	bb.OnWrite(func(e *Entry) { panic("watcher exploded") })
	bb.OnWrite(func(e *Entry) { order = append(order, "third") })

	entry := bb.Write("topic", "content", "a", "s", nil)

	require.NotNil(t, entry)
	assert.Equal(t, []string{"first", "third"}, order,
		"panicking watcher must not block the write or later watchers")
	assert.Len(t, bb.Read("topic", nil), 1)
}

func TestConflicts(t *testing.T) {
	bb := New("test")
	bb.Write("position", "go left", "agent-a", "negotiate", nil)
	bb.Write("position", "go right", "agent-b", "negotiate", nil)
	bb.Write("position", "go left", "agent-c", "negotiate", nil)
	// different stage — never conflicts
	bb.Write("position", "irrelevant", "agent-d", "revise", nil)

	pairs := bb.Conflicts("position")
	// a/b, a/c? (same content, no), b/c, plus none across stages
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.Equal(t, p.A.Stage, p.B.Stage)
		assert.NotEqual(t, p.A.Author, p.B.Author)
		assert.NotEqual(t, p.A.Content, p.B.Content)
	}

	assert.Empty(t, bb.Conflicts("missing"))
}

func TestResourceSignals(t *testing.T) {
	bb := New("test")
	bb.Write("t", "a", "x", "s", map[string]any{
		"token_usage": map[string]any{"input_tokens": 100, "output_tokens": 50},
	})
	bb.Write("t", "b", "y", "s", map[string]any{
		"token_usage": map[string]any{"input_tokens": float64(20), "output_tokens": float64(5)},
	})
	bb.Write("t", "c", "z", "s", nil) // no usage metadata

	sig := bb.ResourceSignals()
	assert.Equal(t, 120, sig.InputTokens)
	assert.Equal(t, 55, sig.OutputTokens)
	assert.Equal(t, 175, sig.TotalTokens)
	assert.Equal(t, 3, sig.Entries)
	assert.Greater(t, sig.Elapsed.Nanoseconds(), int64(0))
}

func TestSnapshot_IsPrefixOfLaterSnapshot(t *testing.T) {
	bb := New("test")
	bb.Write("t", "one", "a", "s", nil)
	first := bb.Snapshot()

	bb.Write("t", "two", "a", "s", nil)
	second := bb.Snapshot()

	require.Len(t, first.Entries, 1)
	require.Len(t, second.Entries, 2)
	for i, e := range first.Entries {
		assert.Equal(t, e.ID, second.Entries[i].ID)
	}
}

func TestStagesCompletedAndTopics(t *testing.T) {
	bb := New("test")
	bb.Write("question", "q", AuthorSystem, "init", nil)
	bb.Write("perspectives", "p", "agent", "gather", nil)

	stages := bb.StagesCompleted()
	assert.True(t, stages["init"])
	assert.True(t, stages["gather"])
	assert.False(t, stages["synthesize"])

	assert.Equal(t, []string{"question", "perspectives"}, bb.Topics())
	assert.True(t, bb.HasTopic("question"))
	assert.False(t, bb.HasTopic("synthesis"))
}

func TestAppendToLog(t *testing.T) {
	bb := New("test")
	bb.Write("t", "hello", "a", "s", map[string]any{"scope": ScopeAll})

	path := filepath.Join(t.TempDir(), "blackboard.ndjson")
	require.NoError(t, bb.AppendToLog(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry Entry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "t", entry.Topic)
	assert.Equal(t, "hello", entry.Content)
}
