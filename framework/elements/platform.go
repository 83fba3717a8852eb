package elements

import (
	"fmt"
	"sort"
	"sync"
)

// ── Platform registry ─────────────────────────────────────────────────────────

// ErrDuplicateDefinition is returned when a tag name is defined twice on the
// same platform registry.
var ErrDuplicateDefinition = fmt.Errorf("elements: tag already defined")

// Platform is the custom-element registry: the authority on which tag names
// are actually defined. A name can be defined at most once; disambiguation
// upstream is responsible for never sending a duplicate here, so a duplicate
// is reported loudly rather than absorbed.
//
//	// FAST: window.customElements
type Platform struct {
	mu    sync.RWMutex
	defs  map[string]*Definition
	order []string
}

// NewPlatform creates an empty registry. Tests use isolated instances;
// applications normally share Default.
func NewPlatform() *Platform {
	return &Platform{defs: make(map[string]*Definition)}
}

// Default is the process-wide platform registry.
var Default = NewPlatform()

// Define files a definition under name. Defining an already-defined name
// returns ErrDuplicateDefinition (wrapped with the offending tag).
func (p *Platform) Define(name string, d *Definition) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.defs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDefinition, name)
	}
	p.defs[name] = d
	p.order = append(p.order, name)
	return nil
}

// DefinitionOrder returns tag names in the order they were defined.
func (p *Platform) DefinitionOrder() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Get returns the definition for a tag name.
func (p *Platform) Get(name string) (*Definition, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok := p.defs[name]
	return d, ok
}

// Defined reports whether a tag name has been defined.
func (p *Platform) Defined(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns all defined tag names, sorted.
func (p *Platform) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.defs))
	for name := range p.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of defined tags.
func (p *Platform) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.defs)
}
