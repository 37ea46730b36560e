package roster

import (
	"strings"
	"testing"

	"github.com/consilium-ai/consilium/pkg/blackboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	all := Builtins()
	require.NotEmpty(t, all)

	for _, a := range all {
		assert.True(t, a.Builtin)
		assert.NotEmpty(t, a.SystemPrompt, "builtin %s must carry a prompt", a.Key)
		for _, scope := range a.ContextScope {
			assert.True(t, blackboard.IsKnownScope(scope),
				"builtin %s declares unknown scope %s", a.Key, scope)
		}
	}

	cfo, ok := Builtin("cfo")
	require.True(t, ok)
	assert.Equal(t, "CFO", cfo.DisplayName)
	assert.True(t, IsBuiltinKey("cfo"))
	assert.False(t, IsBuiltinKey("nonexistent"))
}

func TestPrimaryScope(t *testing.T) {
	a := &Agent{Key: "x", ContextScope: []string{blackboard.ScopeFinancial, blackboard.ScopeMarket}}
	assert.Equal(t, blackboard.ScopeFinancial, a.PrimaryScope())

	unscoped := &Agent{Key: "y"}
	assert.Equal(t, blackboard.ScopeAll, unscoped.PrimaryScope())
}

func TestReader(t *testing.T) {
	a := &Agent{Key: "x", DisplayName: "X", ContextScope: []string{blackboard.ScopeHR}}
	r := a.Reader()
	assert.Equal(t, "X", r.Name)
	assert.Equal(t, []string{blackboard.ScopeHR}, r.ContextScope)
}

func TestAssemblePrompt(t *testing.T) {
	t.Run("base only", func(t *testing.T) {
		assert.Equal(t, "base", AssemblePrompt("base", PromptParts{}))
	})

	t.Run("all parts in order", func(t *testing.T) {
		got := AssemblePrompt("base", PromptParts{
			Frameworks:          []string{"SWOT", ""},
			DeliverableTemplate: "one page memo",
			CommunicationStyle:  "terse",
		})
		assert.Contains(t, got, "base")
		assert.Contains(t, got, "## Framework\n\nSWOT")
		assert.Contains(t, got, "## Deliverable\n\none page memo")
		assert.Contains(t, got, "## Communication style\n\nterse")
		assert.Less(t, strings.Index(got, "SWOT"), strings.Index(got, "one page memo"))
		assert.Less(t, strings.Index(got, "one page memo"), strings.Index(got, "terse"))
	})
}
