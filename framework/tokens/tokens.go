// Package tokens tracks design-token roots: the nodes default token values
// are emitted against. Token value computation itself lives with the
// presentation layer; this package only answers "which roots are active".
package tokens

import (
	"sync"

	"github.com/uilab/go-fast/framework/dom"
)

var (
	mu    sync.RWMutex
	roots = make(map[*dom.Node]struct{})
	order []*dom.Node
)

// RegisterRoot marks a node as a design-token root. Re-registering the same
// node is a no-op, so a design system's first-Register hook can call this
// unconditionally.
//
//	// FAST: DesignToken.registerDefaultStyleTarget(root)
func RegisterRoot(root *dom.Node) {
	if root == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := roots[root]; ok {
		return
	}
	roots[root] = struct{}{}
	order = append(order, root)
}

// DeregisterRoot removes a node from the active root set.
func DeregisterRoot(root *dom.Node) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := roots[root]; !ok {
		return
	}
	delete(roots, root)
	for i, r := range order {
		if r == root {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}
}

// Registered reports whether a node is an active token root.
func Registered(root *dom.Node) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := roots[root]
	return ok
}

// Roots returns the active roots in registration order.
func Roots() []*dom.Node {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]*dom.Node, len(order))
	copy(out, order)
	return out
}

// Reset clears all roots. Intended for test harnesses.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	roots = make(map[*dom.Node]struct{})
	order = nil
}
