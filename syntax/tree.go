package syntax

import (
	"iter"
	"slices"
)

// NodeID addresses a [Node] inside its [Tree].
type NodeID int32

// NoNode is the parent of the root node.
const NoNode NodeID = -1

// Node is one entry of a [Tree].
//
// Fields after Children are only meaningful for [KindVariable] nodes.
type Node struct {
	Kind     Kind
	Name     string // empty for the root and anonymous namespaces
	Parent   NodeID
	Children []NodeID

	Decl    Span        // whole declaration, for diagnostics
	Literal LiteralKind // form of the initializer
	Value   Span        // literal token only
	Text    string      // current source text of Value
	Reason  string      // why Literal is unsupported
}

// Fault is a region of the source the parser could not make sense of.
type Fault struct {
	Err  error
	Span Span
}

// Tree is an arena of nodes rooted at [Tree.Root].
type Tree struct {
	nodes  []Node
	faults []Fault
	size   int
}

// New returns a tree for a source buffer of the given size containing only
// the root node.
func New(size int) *Tree {
	return &Tree{
		nodes: []Node{{Kind: KindRoot, Parent: NoNode}},
		size:  size,
	}
}

// Size returns the length of the source buffer the tree describes.
func (t *Tree) Size() int { return t.size }

// Root returns the ID of the root node.
func (*Tree) Root() NodeID { return 0 }

// Len returns the number of nodes in the tree, including the root.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given ID. The returned pointer is valid
// until the next call to [Tree.Add].
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Add appends n as the last child of parent and returns its ID.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))

	n.Parent = parent
	n.Children = nil
	t.nodes = append(t.nodes, n)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)

	return id
}

// AddFault records a damaged region of the source.
func (t *Tree) AddFault(f Fault) { t.faults = append(t.faults, f) }

// Faults returns the damaged regions in the order they were recorded.
func (t *Tree) Faults() []Fault { return t.faults }

// Damaged returns the first fault overlapping s.
func (t *Tree) Damaged(s Span) (Fault, bool) {
	for _, f := range t.faults {
		if f.Span.Overlaps(s) {
			return f, true
		}
	}

	return Fault{}, false
}

// Ancestors returns the IDs of the proper ancestors of id, innermost first.
// The root is included.
func (t *Tree) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p := t.nodes[id].Parent; p != NoNode; p = t.nodes[p].Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Namespace returns the names of the namespaces enclosing id, outermost
// first. Records do not contribute. The result is empty at global scope.
func (t *Tree) Namespace(id NodeID) []string {
	return t.path(id, func(k Kind) bool { return k == KindNamespace })
}

// Scope returns the names of every namespace and record enclosing id,
// outermost first.
func (t *Tree) Scope(id NodeID) []string {
	return t.path(id, func(k Kind) bool {
		return k == KindNamespace || k == KindRecord
	})
}

func (t *Tree) path(id NodeID, keep func(Kind) bool) []string {
	var names []string

	for p := range t.Ancestors(id) {
		if keep(t.nodes[p].Kind) {
			names = append(names, t.nodes[p].Name)
		}
	}

	slices.Reverse(names)

	return names
}

// All returns every node ID in depth-first pre-order, starting at the root.
func (t *Tree) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		stack := []NodeID{t.Root()}

		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(id) {
				return
			}

			children := t.nodes[id].Children
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// Variables returns the IDs of all variable nodes in source order.
func (t *Tree) Variables() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for id := range t.All() {
			if t.nodes[id].Kind == KindVariable && !yield(id) {
				return
			}
		}
	}
}
