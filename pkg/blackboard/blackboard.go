// Package blackboard implements the shared working memory of a protocol run.
// Stages are pure functions of prior entries: everything an agent said, every
// mechanical extraction, and the final synthesis all live here as immutable,
// topic-keyed, versioned entries. The blackboard lives exactly as long as one
// run.
package blackboard

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuthorSystem is the author recorded on entries written by the engine itself
// (mechanical stages, synthesis stages, the initial question). System entries
// are visible to every reader regardless of scope.
const AuthorSystem = "system"

// Entry is a single immutable record on the blackboard.
type Entry struct {
	ID        string         `json:"id"`
	Topic     string         `json:"topic"`
	Author    string         `json:"author"`
	Stage     string         `json:"stage"`
	Content   any            `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Version   int            `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
}

// Reader describes who is reading the blackboard. A nil Reader (or one with
// no declared scopes) sees everything.
type Reader struct {
	Name         string
	ContextScope []string
}

// WatchFunc is invoked synchronously for every write, in registration order.
type WatchFunc func(*Entry)

// Blackboard is an append-only, topic-keyed entry log with per-topic version
// counters and role-scoped reads. Writes serialize through a mutex; entries
// are immutable once appended, so concurrent reads are safe.
type Blackboard struct {
	mu         sync.Mutex
	protocolID string
	entries    []*Entry
	versions   map[string]int
	watchers   []WatchFunc
	startedAt  time.Time
}

// New creates an empty blackboard for one protocol run.
func New(protocolID string) *Blackboard {
	return &Blackboard{
		protocolID: protocolID,
		versions:   make(map[string]int),
		startedAt:  time.Now(),
	}
}

// ProtocolID returns the protocol this blackboard belongs to.
func (b *Blackboard) ProtocolID() string {
	return b.protocolID
}

// Write appends an entry under the given topic, bumps the topic's version
// counter, and notifies all registered watchers before returning. Writes
// never fail; a panicking watcher is isolated and logged.
func (b *Blackboard) Write(topic string, content any, author, stage string, metadata map[string]any) *Entry {
	b.mu.Lock()
	b.versions[topic]++
	entry := &Entry{
		ID:        uuid.New().String(),
		Topic:     topic,
		Author:    author,
		Stage:     stage,
		Content:   content,
		Metadata:  metadata,
		Version:   b.versions[topic],
		Timestamp: time.Now(),
	}
	b.entries = append(b.entries, entry)
	watchers := make([]WatchFunc, len(b.watchers))
	copy(watchers, b.watchers)
	b.mu.Unlock()

	for _, w := range watchers {
		notifyWatcher(w, entry)
	}
	return entry
}

// notifyWatcher isolates a single watcher invocation: the write must complete
// and remaining watchers must still fire even if this one panics.
func notifyWatcher(w WatchFunc, entry *Entry) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Blackboard watcher panicked",
				"topic", entry.Topic, "stage", entry.Stage, "panic", r)
		}
	}()
	w(entry)
}

// OnWrite registers a watcher fired for every subsequent write.
func (b *Blackboard) OnWrite(fn WatchFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watchers = append(b.watchers, fn)
}

// Read returns the topic's entries in append order, filtered by the reader's
// declared scopes (see Visible).
func (b *Blackboard) Read(topic string, reader *Reader) []*Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []*Entry
	for _, e := range b.entries {
		if e.Topic == topic && Visible(e, reader) {
			out = append(out, e)
		}
	}
	return out
}

// ReadLatest returns the most recent visible entry for the topic, or nil.
func (b *Blackboard) ReadLatest(topic string, reader *Reader) *Entry {
	entries := b.Read(topic, reader)
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1]
}

// HasTopic reports whether at least one entry exists under the topic.
func (b *Blackboard) HasTopic(topic string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.versions[topic] > 0
}

// Topics returns all topics with at least one entry, in first-write order.
func (b *Blackboard) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]bool, len(b.versions))
	var topics []string
	for _, e := range b.entries {
		if !seen[e.Topic] {
			seen[e.Topic] = true
			topics = append(topics, e.Topic)
		}
	}
	return topics
}

// StagesCompleted returns the set of stage names that have written at least
// one entry. Triggers use this to decide whether a stage has run.
func (b *Blackboard) StagesCompleted() map[string]bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	stages := make(map[string]bool)
	for _, e := range b.entries {
		stages[e.Stage] = true
	}
	return stages
}

// ConflictPair is two same-topic, same-stage entries from different authors
// whose content differs.
type ConflictPair struct {
	A *Entry
	B *Entry
}

// Conflicts returns all conflicting pairs under the topic. Detection is
// decoupled from resolution: the on_conflict trigger and adjudication stages
// consume the signal, the blackboard only reports it.
func (b *Blackboard) Conflicts(topic string) []ConflictPair {
	b.mu.Lock()
	defer b.mu.Unlock()

	var topicEntries []*Entry
	for _, e := range b.entries {
		if e.Topic == topic {
			topicEntries = append(topicEntries, e)
		}
	}

	var pairs []ConflictPair
	for i := 0; i < len(topicEntries); i++ {
		for j := i + 1; j < len(topicEntries); j++ {
			a, c := topicEntries[i], topicEntries[j]
			if a.Stage == c.Stage && a.Author != c.Author && !reflect.DeepEqual(a.Content, c.Content) {
				pairs = append(pairs, ConflictPair{A: a, B: c})
			}
		}
	}
	return pairs
}

// Signals aggregates resource telemetry across all entries.
type Signals struct {
	InputTokens  int           `json:"input_tokens"`
	OutputTokens int           `json:"output_tokens"`
	TotalTokens  int           `json:"total_tokens"`
	Entries      int           `json:"entries"`
	Elapsed      time.Duration `json:"elapsed"`
}

// ResourceSignals sums metadata.token_usage across all entries and computes
// wall-clock elapsed since the blackboard was created.
func (b *Blackboard) ResourceSignals() Signals {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Signals{Entries: len(b.entries), Elapsed: time.Since(b.startedAt)}
	for _, e := range b.entries {
		usage, ok := e.Metadata["token_usage"].(map[string]any)
		if !ok {
			continue
		}
		s.InputTokens += asInt(usage["input_tokens"])
		s.OutputTokens += asInt(usage["output_tokens"])
	}
	s.TotalTokens = s.InputTokens + s.OutputTokens
	return s
}

// asInt tolerates the numeric types that survive a JSON round trip.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// Snapshot is a serializable dump of the blackboard for audit.
type Snapshot struct {
	ProtocolID string    `json:"protocol_id"`
	StartedAt  time.Time `json:"started_at"`
	Entries    []*Entry  `json:"entries"`
}

// Snapshot returns a copy of the current entry log. A snapshot taken earlier
// is always a prefix of one taken later (entries are never mutated or
// removed).
func (b *Blackboard) Snapshot() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := make([]*Entry, len(b.entries))
	copy(entries, b.entries)
	return &Snapshot{
		ProtocolID: b.protocolID,
		StartedAt:  b.startedAt,
		Entries:    entries,
	}
}

// AppendToLog persists the entry log to a newline-delimited JSON file.
func (b *Blackboard) AppendToLog(path string) error {
	snap := b.Snapshot()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open blackboard log: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, e := range snap.Entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to append blackboard entry: %w", err)
		}
	}
	return nil
}
