package tree

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// AddValue appends a new leaf holding v to the children of n and returns it.
func (n *Node[T]) AddValue(v T) (*Node[T], error) {
	if err := n.children.Add(Node[T]{Value: v}); err != nil {
		return nil, err
	}
	return n.adopted(n.children.Num() - 1), nil
}

// Add moves the subtree rooted at child to the end of the children of n
// and returns its new location. child must be a detached root (see
// IsRoot) and must not be the root of n's own tree. After a successful
// call child is an empty leaf with a zero payload; on failure it is
// unchanged.
func (n *Node[T]) Add(child *Node[T]) (*Node[T], error) {
	if err := n.adoptable(child); err != nil {
		return nil, err
	}
	moved := child.detach()
	if err := n.children.Add(moved); err != nil {
		child.reattach(&moved)
		return nil, err
	}
	return n.adopted(n.children.Num() - 1), nil
}

// Insert moves the subtree rooted at child to position pos of the children
// of n, shifting the following siblings. pos may equal CountChildren, in
// which case Insert behaves like Add. Constraints on child are the same as
// for Add.
func (n *Node[T]) Insert(pos int, child *Node[T]) (*Node[T], error) {
	if pos == n.children.Num() {
		return n.Add(child)
	}
	if pos < 0 || pos > n.children.Num() {
		return nil, fmt.Errorf("%w: insert child at %d into node with %d children",
			containers.ErrIndexOutOfBounds, pos, n.children.Num())
	}
	if err := n.adoptable(child); err != nil {
		return nil, err
	}
	moved := child.detach()
	if err := n.children.Insert(pos, moved); err != nil {
		child.reattach(&moved)
		return nil, err
	}
	return n.adopted(pos), nil
}

// InsertValue inserts a new leaf holding v at position pos.
func (n *Node[T]) InsertValue(pos int, v T) (*Node[T], error) {
	if pos == n.children.Num() {
		return n.AddValue(v)
	}
	if err := n.children.Insert(pos, Node[T]{Value: v}); err != nil {
		return nil, err
	}
	return n.adopted(pos), nil
}

// Remove destroys the child at pos together with its subtree. An invalid
// pos leaves n unchanged and returns ErrIndexOutOfBounds.
func (n *Node[T]) Remove(pos int) error {
	if err := n.children.Remove(pos); err != nil {
		return err
	}
	n.Restamp()
	n.touch()
	return nil
}

// Detach moves the child at pos out of n and returns it as a new detached
// root. Payloads of the detached subtree are not destroyed.
func (n *Node[T]) Detach(pos int) (*Node[T], error) {
	moved, err := n.children.Take(pos)
	if err != nil {
		return nil, err
	}
	root := &Node[T]{}
	root.reattach(&moved)
	n.Restamp()
	n.touch()
	return root, nil
}

// adoptable checks that child may be moved below n.
func (n *Node[T]) adoptable(child *Node[T]) error {
	if child == nil {
		return fmt.Errorf("%w: nil child", containers.ErrIllegalArguments)
	}
	if !child.IsRoot() {
		return fmt.Errorf("%w: child %d of another node", ErrNotDetached, child.id)
	}
	if n.Root() == child {
		return fmt.Errorf("%w: cannot add a tree to itself", containers.ErrIllegalArguments)
	}
	return nil
}

// adopted restores linkage after child i has been placed and returns it.
// The child array may have moved every sibling, so all of them are
// re-stamped.
func (n *Node[T]) adopted(i int) *Node[T] {
	n.Restamp()
	n.touch()
	tracer().Debugf("tree: node now has %d children", n.children.Num())
	return n.children.At(i)
}

// detach moves payload and children of n into a fresh value and leaves n
// an empty leaf. The value still has to be re-stamped once placed.
func (n *Node[T]) detach() Node[T] {
	moved := Node[T]{Value: n.Value, children: n.children.Move()}
	var zero T
	n.Value = zero
	n.touch()
	return moved
}

// reattach undoes detach.
func (n *Node[T]) reattach(moved *Node[T]) {
	n.Value = moved.Value
	n.children.MoveFrom(&moved.children)
	n.Restamp()
	n.touch()
}
