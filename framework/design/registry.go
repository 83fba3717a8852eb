package design

import (
	"sync"

	"github.com/uilab/go-fast/framework/elements"
)

// ── Tag registry ──────────────────────────────────────────────────────────────

// TagRegistry is the bidirectional association between tag names and element
// types built up by registration passes.
//
// It is an explicit value rather than bare package maps so a test (or a
// second hosting process) can run against an isolated registry; the package
// holds one default instance that backs the package-level API.
//
// Writers are the disambiguation loop only. Both directions are kept in
// lockstep: every tag filed points at a type whose own entry points back at
// a tag (base-type aliases excepted — see recordAlias).
type TagRegistry struct {
	mu          sync.RWMutex
	tagFromType map[*elements.Type]string
	typeFromTag map[string]*elements.Type
}

// NewTagRegistry creates an empty, isolated registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{
		tagFromType: make(map[*elements.Type]string),
		typeFromTag: make(map[string]*elements.Type),
	}
}

// defaultRegistry backs DesignSystem instances that were not given an
// explicit registry, and the package-level TagFor.
var defaultRegistry = NewTagRegistry()

// DefaultTagRegistry returns the process-wide registry.
func DefaultTagRegistry() *TagRegistry { return defaultRegistry }

// TagFor returns the tag name currently on file for a type. The second
// return is false for a type that was never registered — callers treat that
// as "not yet registered", not as a fault, since registration order across
// packages is not guaranteed.
func (r *TagRegistry) TagFor(t *elements.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.tagFromType[t]
	return tag, ok
}

// TypeFor returns the element type filed under a tag name.
func (r *TagRegistry) TypeFor(tag string) (*elements.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.typeFromTag[tag]
	return t, ok
}

// record files the tag ↔ type pair in both directions.
func (r *TagRegistry) record(tag string, t *elements.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typeFromTag[tag] = t
	r.tagFromType[t] = tag
}

// recordAlias files a base type under a tag in the type→tag direction only,
// so lookup-by-ancestor works without claiming the tag's reverse entry.
func (r *TagRegistry) recordAlias(base *elements.Type, tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tagFromType[base] = tag
}

// Entry is one tag ↔ type association, for diagnostics.
type Entry struct {
	Tag  string
	Type *elements.Type
}

// Entries returns a snapshot of the tag→type direction (order unspecified).
func (r *TagRegistry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.typeFromTag))
	for tag, t := range r.typeFromTag {
		out = append(out, Entry{Tag: tag, Type: t})
	}
	return out
}

// Count returns the number of filed tag names.
func (r *TagRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.typeFromTag)
}

// Reset clears the registry. Intended for test harnesses.
func (r *TagRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tagFromType = make(map[*elements.Type]string)
	r.typeFromTag = make(map[string]*elements.Type)
}
