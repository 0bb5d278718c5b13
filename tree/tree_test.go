package tree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func preorder[T any](n *Node[T]) []T {
	var out []T
	for it := n.Begin(); !it.Equal(n.End()); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func mustCheck[T any](t *testing.T, n *Node[T]) {
	t.Helper()
	if err := n.Check(); err != nil {
		t.Fatalf("tree invariants failed: %v", err)
	}
}

// sample builds R(A(C), B).
func sample(t *testing.T) *Node[string] {
	t.Helper()
	root := NewRoot("R")
	a, err := root.AddValue("A")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = root.AddValue("B"); err != nil {
		t.Fatal(err)
	}
	a = root.Child(0)
	if _, err = a.AddValue("C"); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestPreorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	root := sample(t)
	if got := preorder(root); !slices.Equal(got, []string{"R", "A", "C", "B"}) {
		t.Fatalf("expected pre-order [R A C B], got %v", got)
	}
	if root.Count() != 4 || root.CountChildren() != 2 {
		t.Fatalf("expected 4 nodes with 2 children at root, have %d/%d", root.Count(), root.CountChildren())
	}
	if got := preorder(root.Child(0)); !slices.Equal(got, []string{"A", "C"}) {
		t.Fatalf("expected sub-traversal [A C], got %v", got)
	}
	mustCheck(t, root)
}

func TestBackwardTraversal(t *testing.T) {
	root := sample(t)
	var got []string
	it := root.End()
	for it.Prev(); it.Valid(); it.Prev() {
		got = append(got, it.Value())
	}
	if !slices.Equal(got, []string{"B", "C", "A", "R"}) {
		t.Fatalf("expected reverse pre-order [B C A R], got %v", got)
	}
}

func TestParentAndID(t *testing.T) {
	root := sample(t)
	c := root.Child(0).Child(0)
	if c.Value != "C" || c.Parent().Value != "A" || c.Parent().Parent() != root {
		t.Fatalf("unexpected ancestry of C")
	}
	if root.Child(1).ID() != 1 || c.Depth() != 2 || c.Root() != root {
		t.Fatalf("unexpected id/depth/root of nodes")
	}
	if !root.IsRoot() || root.IsLeaf() || !c.IsLeaf() {
		t.Fatalf("unexpected leaf/root state")
	}
	if _, err := root.ChildAt(2); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds for ChildAt(2), got %v", err)
	}
}

func TestInsertRestampsSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	root := sample(t)
	// force several re-allocations of the root's child array
	for i := range 10 {
		if _, err := root.InsertValue(0, string(rune('a'+i))); err != nil {
			t.Fatal(err)
		}
		mustCheck(t, root)
	}
	a := root.Child(10)
	if a.Value != "A" || a.ID() != 10 || a.Child(0).Parent() != a {
		t.Fatalf("A not correctly re-stamped: id=%d", a.ID())
	}
	if _, err := root.InsertValue(root.CountChildren()+1, "x"); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds, got %v", err)
	}
}

func TestAddMovesSubtree(t *testing.T) {
	root := sample(t)
	sub := NewRoot("S")
	if _, err := sub.AddValue("T"); err != nil {
		t.Fatal(err)
	}
	s, err := root.Insert(1, sub)
	if err != nil {
		t.Fatal(err)
	}
	if s.Value != "S" || s.ID() != 1 || s.Child(0).Parent() != s {
		t.Fatalf("subtree not linked correctly")
	}
	if sub.Value != "" || !sub.IsLeaf() {
		t.Fatalf("source of move should be an empty leaf, is %q", sub.Value)
	}
	if got := preorder(root); !slices.Equal(got, []string{"R", "A", "C", "S", "T", "B"}) {
		t.Fatalf("unexpected pre-order %v", got)
	}
	mustCheck(t, root)
	//
	if _, err := root.Add(root.Child(0)); !errors.Is(err, ErrNotDetached) {
		t.Fatalf("expected ErrNotDetached, got %v", err)
	}
	if _, err := root.Child(0).Add(root); !errors.Is(err, containers.ErrIllegalArguments) {
		t.Fatalf("expected cycle to be refused, got %v", err)
	}
}

type payload struct {
	name      string
	destroyed *int
}

func (p *payload) Destroy() {
	if p.destroyed != nil {
		*p.destroyed++
	}
}

func TestRemoveDestroysSubtree(t *testing.T) {
	count := 0
	root := NewRoot(payload{name: "root"})
	a, _ := root.AddValue(payload{name: "a", destroyed: &count})
	_, _ = a.AddValue(payload{name: "a1", destroyed: &count})
	a = root.Child(0)
	_, _ = a.AddValue(payload{name: "a2", destroyed: &count})
	_, _ = root.AddValue(payload{name: "b", destroyed: &count})
	if err := root.Remove(0); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("expected 3 destroyed payloads, have %d", count)
	}
	if root.Child(0).Value.name != "b" || root.Child(0).ID() != 0 {
		t.Fatalf("b not re-stamped after remove")
	}
	if err := root.Remove(5); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds, got %v", err)
	}
	root.Destroy()
	if count != 4 || !root.IsLeaf() {
		t.Fatalf("expected all payloads destroyed, have %d", count)
	}
}

func TestDetach(t *testing.T) {
	root := sample(t)
	a, err := root.Detach(0)
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsRoot() || a.Value != "A" || a.Child(0).Parent() != a {
		t.Fatalf("detached subtree not re-rooted")
	}
	if got := preorder(root); !slices.Equal(got, []string{"R", "B"}) {
		t.Fatalf("unexpected remaining tree %v", got)
	}
	mustCheck(t, root)
	mustCheck(t, a)
}

// strict counts destructions without guarding against zero values.
type strict struct {
	hits *int
}

func (s *strict) Destroy() {
	*s.hits++
}

func TestDetachDoesNotDestroyPayloads(t *testing.T) {
	hits := 0
	root := NewRoot(strict{hits: &hits})
	a, err := root.AddValue(strict{hits: &hits})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = a.AddValue(strict{hits: &hits}); err != nil {
		t.Fatal(err)
	}
	if _, err = root.AddValue(strict{hits: &hits}); err != nil {
		t.Fatal(err)
	}
	sub, err := root.Detach(0)
	if err != nil {
		t.Fatal(err)
	}
	if hits != 0 {
		t.Fatalf("Detach destroyed %d payloads", hits)
	}
	if sub.Count() != 2 || root.Count() != 2 {
		t.Fatalf("expected 2 nodes on each side, have %d/%d", sub.Count(), root.Count())
	}
	mustCheck(t, root)
	mustCheck(t, sub)
	sub.Destroy()
	if hits != 2 {
		t.Fatalf("expected 2 destructions of the detached subtree, have %d", hits)
	}
	if _, err = root.Detach(3); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected out of bounds, got %v", err)
	}
}

func TestCopyIsDeep(t *testing.T) {
	root := sample(t)
	cp, err := root.Copy()
	if err != nil {
		t.Fatal(err)
	}
	mustCheck(t, cp)
	cp.Child(0).Child(0).Value = "changed"
	if root.Child(0).Child(0).Value != "C" {
		t.Fatalf("copy shares nodes with its source")
	}
	if got := preorder(cp); !slices.Equal(got, []string{"R", "A", "changed", "B"}) {
		t.Fatalf("unexpected copy %v", got)
	}
}

func TestIterate(t *testing.T) {
	root := sample(t)
	for k, want := range []string{"R", "A", "C", "B"} {
		n, err := root.Iterate(k)
		if err != nil || n.Value != want {
			t.Fatalf("Iterate(%d): expected %s, got %v (%v)", k, want, n, err)
		}
	}
	if _, err := root.Iterate(4); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected Iterate(4) to fail, got %v", err)
	}
	if n, _ := root.Child(0).Iterate(1); n.Value != "C" {
		t.Fatalf("Iterate relative to A should find C")
	}
}

func TestNavigation(t *testing.T) {
	root := sample(t)
	c := root.Child(0).Child(0)
	if next, err := c.NextSibling(); err != nil || next.Value != "B" {
		t.Fatalf("expected B after the subtree of C, got %v", err)
	}
	if _, err := root.NextSibling(); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("root has no next sibling, got %v", err)
	}
	if _, err := root.PreviousNode(); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("root has no previous node, got %v", err)
	}
	b := root.Child(1)
	if prev, err := b.PreviousNode(); err != nil || prev.Value != "C" {
		t.Fatalf("expected C before B, got %v", err)
	}
	if prev, err := b.PreviousSibling(); err != nil || prev.Value != "A" {
		t.Fatalf("expected A as sibling before B, got %v", err)
	}
	if _, err := c.PreviousSibling(); err == nil {
		t.Fatalf("C has no previous sibling")
	}
}

func TestIteratorInvalidation(t *testing.T) {
	root := sample(t)
	it := root.Begin()
	it.Next()
	_, _ = root.Child(1).AddValue("D")
	defer func() {
		if r := recover(); r != containers.ErrIteratorInvalidated {
			t.Fatalf("expected invalidated iterator to panic, got %v", r)
		}
	}()
	it.Next()
}
