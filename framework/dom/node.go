// Package dom provides a minimal document tree for hosting design systems.
//
// It is not a rendering DOM. It exists so node-scoped services (containers,
// design systems, token roots) have a real ownership chain to attach to and
// walk — the shape FAST assumes from the browser, reduced to parents,
// children, and named attachment slots.
package dom

import "sync"

// Node is one node of a document tree.
type Node struct {
	mu sync.RWMutex

	name     string
	parent   *Node
	children []*Node

	// attached holds named out-of-band values (containers, design systems).
	attached map[string]any
}

// NewDocument creates a detached document root.
func NewDocument() *Node {
	return &Node{name: "#document"}
}

// NewElement creates a detached element node.
//
//	el := dom.NewElement("fast-button")
func NewElement(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's element name ("#document" for a document root).
func (n *Node) Name() string { return n.name }

// ── Tree structure ────────────────────────────────────────────────────────────

// AppendChild attaches child as the last child of n and returns child.
// A child already parented elsewhere is moved, not duplicated.
func (n *Node) AppendChild(child *Node) *Node {
	if child.Parent() != nil {
		child.Parent().removeChild(child)
	}

	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = n
	child.mu.Unlock()
	return child
}

func (n *Node) removeChild(child *Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent node, or nil for a detached node or document root.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Children returns a snapshot of the node's children.
func (n *Node) Children() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// OwnerDocument walks to the root of the tree n belongs to.
func (n *Node) OwnerDocument() *Node {
	root := n
	for root.Parent() != nil {
		root = root.Parent()
	}
	return root
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent() {
		if cur == n {
			return true
		}
	}
	return false
}

// ── Attachment slots ──────────────────────────────────────────────────────────

// SetAttached stores a named out-of-band value on the node.
func (n *Node) SetAttached(key string, value any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.attached == nil {
		n.attached = make(map[string]any)
	}
	n.attached[key] = value
}

// Attached retrieves a named out-of-band value.
func (n *Node) Attached(key string) (any, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.attached[key]
	return v, ok
}
