package tree

import "fmt"

// Check validates parent pointers and ids of the subtree rooted at n: for
// every child c at position i, c.Parent() is n and c.ID() is i, and the
// child arrays satisfy their own invariants.
func (n *Node[T]) Check() error {
	if err := n.children.Check(); err != nil {
		return err
	}
	for i := range n.children.Num() {
		c := n.children.At(i)
		if c.parent != n {
			return fmt.Errorf("%w: child %d of node at depth %d has a stale parent pointer",
				ErrCorrupted, i, n.Depth())
		}
		if c.id != i {
			return fmt.Errorf("%w: child at position %d has id %d", ErrCorrupted, i, c.id)
		}
		if err := c.Check(); err != nil {
			return err
		}
	}
	return nil
}
