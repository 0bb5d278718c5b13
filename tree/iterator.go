package tree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
)

// Iterator walks a subtree in depth-first pre-order: a node is visited
// before its children, children from left to right.
//
// The position one past the last node is represented by a nil node, which
// is what End returns. Stepping back from the first node yields the same
// sentinel, stepping back from the sentinel yields the last node.
//
// Any structural mutation of the tree invalidates the iterator; using it
// afterwards panics with containers.ErrIteratorInvalidated.
type Iterator[T any] struct {
	node *Node[T] // nil is the end sentinel
	top  *Node[T] // root of the traversal
	root *Node[T] // root of the whole tree, holds the generation
	gen  uint64
}

var _ iterator.Bidirectional[int] = &Iterator[int]{}

// Begin returns an iterator positioned at n, the first node of the
// pre-order traversal of n's subtree.
func (n *Node[T]) Begin() *Iterator[T] {
	root := n.Root()
	return &Iterator[T]{node: n, top: n, root: root, gen: root.gen}
}

// End returns the sentinel iterator of the traversal of n's subtree.
func (n *Node[T]) End() *Iterator[T] {
	it := n.Begin()
	it.node = nil
	return it
}

func (it *Iterator[T]) check() {
	if it.root == nil || it.root.gen != it.gen {
		panic(containers.ErrIteratorInvalidated)
	}
}

// Category returns iterator.BidirectionalTag.
func (it *Iterator[T]) Category() iterator.Category {
	return iterator.BidirectionalTag
}

// Valid reports whether it points at a node.
func (it *Iterator[T]) Valid() bool {
	it.check()
	return it.node != nil
}

// Node returns the node it points at, or nil at the end.
func (it *Iterator[T]) Node() *Node[T] {
	it.check()
	return it.node
}

// Value returns the payload of the current node. It panics at the end.
func (it *Iterator[T]) Value() T {
	it.check()
	if it.node == nil {
		panic(fmt.Sprintf("%s: dereferencing end of tree", containers.ErrIndexOutOfBounds))
	}
	return it.node.Value
}

// Next steps to the pre-order successor.
func (it *Iterator[T]) Next() {
	it.check()
	if it.node != nil {
		it.node = it.node.successor(it.top)
	}
}

// Prev steps to the pre-order predecessor.
func (it *Iterator[T]) Prev() {
	it.check()
	if it.node == nil {
		it.node = it.top.lastDescendant()
		return
	}
	it.node = it.node.predecessor(it.top)
}

// Equal reports whether it and other point at the same node.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.node == other.node && it.top == other.top
}

// All returns an iterator over the nodes of n's subtree in pre-order.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for it := n.Begin(); it.Valid(); it.Next() {
			if !yield(it.node) {
				return
			}
		}
	}
}

// successor returns the pre-order successor of n within the subtree of top.
func (n *Node[T]) successor(top *Node[T]) *Node[T] {
	if !n.children.IsEmpty() {
		return n.children.At(0)
	}
	return n.following(top)
}

// following returns the first node after the subtree of n, staying within
// the subtree of top.
func (n *Node[T]) following(top *Node[T]) *Node[T] {
	for n != top && n.parent != nil {
		p := n.parent
		if n.id+1 < p.children.Num() {
			return p.children.At(n.id + 1)
		}
		n = p
	}
	return nil
}

// predecessor returns the pre-order predecessor of n within the subtree of
// top.
func (n *Node[T]) predecessor(top *Node[T]) *Node[T] {
	if n == top || n.parent == nil {
		return nil
	}
	if n.id == 0 {
		return n.parent
	}
	return n.parent.children.At(n.id - 1).lastDescendant()
}

// lastDescendant returns the last node of n's subtree in pre-order.
func (n *Node[T]) lastDescendant() *Node[T] {
	for !n.children.IsEmpty() {
		n = n.children.At(n.children.Num() - 1)
	}
	return n
}

// --- Navigation ------------------------------------------------------------

// Iterate returns the k-th node of n's subtree in pre-order, n being the
// 0-th.
func (n *Node[T]) Iterate(k int) (*Node[T], error) {
	if k >= 0 {
		if found, _ := n.iterate(k); found != nil {
			return found, nil
		}
	}
	return nil, fmt.Errorf("%w: subtree has no node %d", containers.ErrIndexOutOfBounds, k)
}

// iterate descends into the children of n while counting down k. If the
// subtree is exhausted before k reaches 0, the residual count is returned.
func (n *Node[T]) iterate(k int) (*Node[T], int) {
	if k == 0 {
		return n, 0
	}
	k--
	for i := range n.children.Num() {
		found, rest := n.children.At(i).iterate(k)
		if found != nil {
			return found, 0
		}
		k = rest
	}
	return nil, k
}

// NextSibling returns the node following the subtree of n in pre-order:
// its next sibling or, for a last child, the next sibling of the nearest
// ancestor having one. It fails with ErrIndexOutOfBounds if there is no
// such node, which callers treat as "no more nodes".
func (n *Node[T]) NextSibling() (*Node[T], error) {
	if next := n.following(nil); next != nil {
		return next, nil
	}
	return nil, fmt.Errorf("%w: no node after subtree", containers.ErrIndexOutOfBounds)
}

// PreviousSibling returns the sibling directly before n.
func (n *Node[T]) PreviousSibling() (*Node[T], error) {
	if n.parent == nil || n.id == 0 {
		return nil, fmt.Errorf("%w: no previous sibling", containers.ErrIndexOutOfBounds)
	}
	return n.parent.children.At(n.id - 1), nil
}

// PreviousNode returns the pre-order predecessor of n in its tree. It fails
// with ErrIndexOutOfBounds for the root.
func (n *Node[T]) PreviousNode() (*Node[T], error) {
	if prev := n.predecessor(nil); prev != nil {
		return prev, nil
	}
	return nil, fmt.Errorf("%w: root has no predecessor", containers.ErrIndexOutOfBounds)
}
