package blackboard

// Scope tags form a closed set. Whichever component writes an entry decides
// its scope (stored under metadata["scope"]); readers declare theirs on the
// Reader. An unknown reader scope simply never matches — it is not an error.
const (
	ScopeFinancial   = "financial"
	ScopeOperational = "operational"
	ScopeMarket      = "market"
	ScopeTechnical   = "technical"
	ScopeHR          = "hr"
	ScopeStrategic   = "strategic"
	ScopeAll         = "all"
)

// KnownScopes lists every valid scope tag.
var KnownScopes = []string{
	ScopeFinancial, ScopeOperational, ScopeMarket,
	ScopeTechnical, ScopeHR, ScopeStrategic, ScopeAll,
}

// IsKnownScope reports whether tag is part of the closed scope set.
func IsKnownScope(tag string) bool {
	for _, s := range KnownScopes {
		if s == tag {
			return true
		}
	}
	return false
}

// Visible reports whether the reader may see the entry:
//   - a nil reader or one with no declared scopes sees everything,
//   - a reader whose scope set contains "all" sees everything,
//   - system-authored entries are always visible,
//   - entries tagged "all" (or untagged) are always visible,
//   - otherwise the entry's scope must be one of the reader's scopes.
func Visible(e *Entry, r *Reader) bool {
	if r == nil || len(r.ContextScope) == 0 {
		return true
	}
	for _, s := range r.ContextScope {
		if s == ScopeAll {
			return true
		}
	}
	if e.Author == AuthorSystem {
		return true
	}
	scope, ok := e.Metadata["scope"].(string)
	if !ok || scope == "" || scope == ScopeAll {
		return true
	}
	for _, s := range r.ContextScope {
		if s == scope {
			return true
		}
	}
	return false
}
