package tree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/array"
)

// Node is a tree node carrying a payload of type T. A zero Node is a valid
// root without children.
//
// Nodes must not be copied by assignment; use Copy, Clone or Add.
type Node[T any] struct {
	Value    T
	parent   *Node[T]
	id       int
	children array.Array[Node[T]]
	gen      uint64 // structural generation, authoritative at the root
}

// NewRoot creates a detached node holding v.
func NewRoot[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Parent returns the parent of n, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// ID returns the position of n among its siblings. A root has id 0.
func (n *Node[T]) ID() int {
	return n.id
}

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.children.IsEmpty()
}

// Root returns the root of the tree n belongs to.
func (n *Node[T]) Root() *Node[T] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth returns the number of edges between n and its root.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// CountChildren returns the number of direct children of n.
func (n *Node[T]) CountChildren() int {
	return n.children.Num()
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node[T]) Count() int {
	c := 1
	for i := range n.children.Num() {
		c += n.children.At(i).Count()
	}
	return c
}

// Child returns the i-th child of n. It panics if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	return n.children.At(i)
}

// ChildAt returns the i-th child of n or ErrIndexOutOfBounds.
func (n *Node[T]) ChildAt(i int) (*Node[T], error) {
	if i < 0 || i >= n.children.Num() {
		return nil, fmt.Errorf("%w: child %d of node with %d children",
			containers.ErrIndexOutOfBounds, i, n.children.Num())
	}
	return n.children.At(i), nil
}

// Children returns an iterator over the direct children of n.
func (n *Node[T]) Children() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		root := n.Root()
		gen := root.gen
		for i := 0; i < n.children.Num(); i++ {
			if !yield(i, n.children.At(i)) {
				return
			}
			if root.gen != gen {
				panic(containers.ErrIteratorInvalidated)
			}
		}
	}
}

// --- Lifecycle -------------------------------------------------------------

// Destroy drops the subtree below n and the payload of n. The children's
// payloads are destroyed depth-first through the child arrays.
func (n *Node[T]) Destroy() {
	n.children.Clear()
	containers.Destroy(&n.Value)
	n.touch()
}

// Clone returns a deep copy of the subtree rooted at n. The copy is a
// detached value whose children are not yet stamped; it is meant to be
// placed somewhere (a child array, a variable) and then re-stamped, which
// Copy and Add do. Payloads implementing containers.Cloner are cloned.
func (n *Node[T]) Clone() (Node[T], error) {
	v, err := containers.CloneOf(&n.Value)
	if err != nil {
		return Node[T]{}, err
	}
	children, err := n.children.Clone()
	if err != nil {
		containers.Destroy(&v)
		return Node[T]{}, err
	}
	return Node[T]{Value: v, children: children}, nil
}

// Copy returns a deep copy of the subtree rooted at n as a new detached
// root.
func (n *Node[T]) Copy() (*Node[T], error) {
	c, err := n.Clone()
	if err != nil {
		return nil, err
	}
	root := &c
	root.Restamp()
	return root, nil
}

// --- Linkage ---------------------------------------------------------------

// Restamp re-derives id and parent pointer of every node below n.
// Mutations do this on their own; Restamp is needed after a subtree value
// has been moved to a new address by other means.
func (n *Node[T]) Restamp() {
	for i := range n.children.Num() {
		c := n.children.At(i)
		c.parent = n
		c.id = i
		c.Restamp()
	}
}

// touch increments the generation of n and all its ancestors.
func (n *Node[T]) touch() {
	for p := n; p != nil; p = p.parent {
		p.gen++
	}
}
