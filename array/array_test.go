package array

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// tracked counts how often live instances are destroyed.
type tracked struct {
	id        int
	destroyed map[int]int
}

func (t *tracked) Destroy() {
	if t.destroyed != nil {
		t.destroyed[t.id]++
	}
}

func collect[T any](a *Array[T]) []T {
	var out []T
	for _, v := range a.All() {
		out = append(out, v)
	}
	return out
}

func mustCheck[T any](t *testing.T, a *Array[T]) {
	t.Helper()
	if err := a.Check(); err != nil {
		t.Fatalf("array invariants failed: %v", err)
	}
}

func TestAddRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	var a Array[int]
	for _, v := range []int{1, 2, 3} {
		if err := a.Add(v); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if err := a.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := collect(&a); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", got)
	}
	if a.Num() != 2 {
		t.Fatalf("expected 2 elements, have %d", a.Num())
	}
	mustCheck(t, &a)
}

func TestInsert(t *testing.T) {
	a := From(1, 2, 3)
	if err := a.Insert(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.Insert(3, 9); err != nil {
		t.Fatal(err)
	}
	if got := collect(a); !slices.Equal(got, []int{0, 1, 2, 9, 3}) {
		t.Fatalf("unexpected content %v", got)
	}
	// positions at or past the end are reported and leave the array alone
	for _, pos := range []int{5, 6, -1} {
		if err := a.Insert(pos, 7); !errors.Is(err, containers.ErrIndexOutOfBounds) {
			t.Fatalf("Insert(%d): expected ErrIndexOutOfBounds, got %v", pos, err)
		}
	}
	if a.Num() != 5 {
		t.Fatalf("failed inserts changed the array: %v", collect(a))
	}
	var empty Array[int]
	if err := empty.Insert(0, 1); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("Insert into empty array should fail, got %v", err)
	}
}

func TestTakeMovesWithoutDestroying(t *testing.T) {
	destroyed := map[int]int{}
	var a Array[tracked]
	for i := range 8 {
		_ = a.Add(tracked{id: i, destroyed: destroyed})
	}
	v, err := a.Take(2)
	if err != nil || v.id != 2 {
		t.Fatalf("expected element 2, got %v (%v)", v.id, err)
	}
	if len(destroyed) != 0 {
		t.Fatalf("Take must not destroy: %v", destroyed)
	}
	if a.Num() != 7 || a.At(2).id != 3 {
		t.Fatalf("elements behind 2 not shifted, num=%d", a.Num())
	}
	if _, err = a.Take(7); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	for a.Num() > 1 {
		_, _ = a.Take(0) // shrinks along the way
		mustCheck(t, &a)
	}
	a.Clear()
	if len(destroyed) != 1 || destroyed[7] != 1 {
		t.Fatalf("only the remaining element may be destroyed: %v", destroyed)
	}
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	a := From(1, 2)
	if err := a.Remove(2); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if got := collect(a); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("array changed: %v", got)
	}
}

func TestCapacityPolicy(t *testing.T) {
	var a Array[int]
	if a.Reserved() != 0 || a.Address() != nil {
		t.Fatalf("zero array must not hold a buffer")
	}
	_ = a.Add(1)
	if a.Reserved() != 2 {
		t.Fatalf("expected 2 slots after first Add, have %d", a.Reserved())
	}
	_ = a.Add(2)
	_ = a.Add(3)
	if a.Reserved() != 6 {
		t.Fatalf("expected 6 slots for 3 elements, have %d", a.Reserved())
	}
	for i := 4; i <= 7; i++ {
		_ = a.Add(i)
	}
	if a.Reserved() != 14 {
		t.Fatalf("expected 14 slots for 7 elements, have %d", a.Reserved())
	}
	// 7 -> 4 elements: 4 > 14/4, no shrink
	for range 3 {
		a.PopBack()
	}
	if a.Reserved() != 14 {
		t.Fatalf("shrunk too early: %d slots for %d elements", a.Reserved(), a.Num())
	}
	a.PopBack() // 3 <= 14/4
	if a.Reserved() != 6 {
		t.Fatalf("expected re-tightening to 6 slots, have %d", a.Reserved())
	}
	for !a.IsEmpty() {
		a.PopBack()
	}
	if a.Reserved() != 0 || a.Address() != nil {
		t.Fatalf("empty array should have dropped its buffer")
	}
	mustCheck(t, &a)
}

func TestPopBackOnEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected PopBack on empty array to panic")
		}
	}()
	var a Array[string]
	a.PopBack()
}

func TestAtPanicsAndClampClamps(t *testing.T) {
	a := From(10, 20, 30)
	if *a.At(1) != 20 {
		t.Fatalf("At(1) = %d", *a.At(1))
	}
	// Clamp keeps the lenient policy: out of range reads the nearest element
	if *a.Clamp(99) != 30 || *a.Clamp(3) != 30 || *a.Clamp(-5) != 10 {
		t.Fatalf("Clamp did not clamp")
	}
	if _, err := a.Get(3); !errors.Is(err, containers.ErrIndexOutOfBounds) {
		t.Fatalf("Get(3) should fail, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected At(3) to panic")
		}
	}()
	_ = a.At(3)
}

func TestResizeRegrowsWithFreshElements(t *testing.T) {
	cfg := Config[int]{Constructor: func() int { return -1 }}
	a, err := NewSized(cfg, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Num() {
		*a.At(i) = i
	}
	if err = a.Resize(2); err != nil {
		t.Fatal(err)
	}
	if err = a.Resize(10); err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, -1, -1, -1, -1, -1, -1, -1, -1}
	if got := collect(a); !slices.Equal(got, want) {
		t.Fatalf("expected %v after re-growth, got %v", want, got)
	}
	if err = a.Resize(-1); !errors.Is(err, containers.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	mustCheck(t, a)
}

func TestDestroyCalledOncePerDroppedElement(t *testing.T) {
	destroyed := map[int]int{}
	var a Array[tracked]
	for i := range 8 {
		_ = a.Add(tracked{id: i, destroyed: destroyed})
	}
	// many moves, but no destruction
	_ = a.Insert(0, tracked{id: 100, destroyed: destroyed})
	_ = a.Remove(0)
	if len(destroyed) != 1 || destroyed[100] != 1 {
		t.Fatalf("only the removed element may be destroyed: %v", destroyed)
	}
	a.PopBack()
	_ = a.Resize(5)
	if err := a.Set(0, tracked{id: 200, destroyed: destroyed}); err != nil {
		t.Fatal(err)
	}
	a.Clear()
	for id := range 8 {
		if destroyed[id] != 1 {
			t.Fatalf("element %d destroyed %d times", id, destroyed[id])
		}
	}
	if destroyed[200] != 1 {
		t.Fatalf("replacement element destroyed %d times", destroyed[200])
	}
}

func TestAllocationFailureRollsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	budget := alloc.NewBudget(-1)
	a, err := New(Config[int64]{Allocator: budget})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		_ = a.Add(int64(i)) // 6 slots
	}
	budget.SetLimit(budget.Stats().Live) // no further growth possible
	for range 3 {
		_ = a.Add(9)
	}
	if err = a.Add(10); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	if a.Num() != 6 {
		t.Fatalf("failed Add changed length to %d", a.Num())
	}
	if err = a.Insert(0, 10); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation from Insert, got %v", err)
	}
	if err = a.Resize(20); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation from Resize, got %v", err)
	}
	// a refused Resize keeps the content instead of resetting the array
	if got := collect(a); !slices.Equal(got, []int64{0, 1, 2, 9, 9, 9}) {
		t.Fatalf("failed operations changed content: %v", got)
	}
	a.Clear()
	if budget.Stats().Live != 0 {
		t.Fatalf("budget still accounts %d bytes", budget.Stats().Live)
	}
}

func TestShrinkRefusalKeepsBuffer(t *testing.T) {
	budget := alloc.NewBudget(-1)
	a, _ := New(Config[int]{Allocator: budget})
	for i := range 8 {
		_ = a.Add(i)
	}
	budget.SetLimit(budget.Stats().Live)
	for range 6 {
		a.PopBack()
	}
	if a.Num() != 2 || a.Reserved() != 14 {
		t.Fatalf("expected refused shrink to keep 14 slots, have %d/%d", a.Num(), a.Reserved())
	}
}

func TestInitRejectsNonEmptyArray(t *testing.T) {
	a := From(1)
	if err := a.Init(Config[int]{}); !errors.Is(err, containers.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestZeroConfigSelectsHeap(t *testing.T) {
	var a Array[int]
	if err := a.Init(Config[int]{}); err != nil {
		t.Fatalf("zero config should be valid, got %v", err)
	}
	if a.Config().Allocator != alloc.Heap {
		t.Fatalf("expected the heap allocator")
	}
}

func TestHugeSizeIsRefused(t *testing.T) {
	a := From[int64](1, 2, 3)
	if err := a.Resize(math.MaxInt / 2); !errors.Is(err, containers.ErrAllocation) {
		t.Fatalf("expected ErrAllocation for an unaddressable size, got %v", err)
	}
	if got := collect(a); !slices.Equal(got, []int64{1, 2, 3}) {
		t.Fatalf("refused Resize changed content: %v", got)
	}
	mustCheck(t, a)
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	a := From("a", "b", "c")
	b := a.Move()
	if a.Num() != 0 || a.Address() != nil {
		t.Fatalf("moved-from array not empty: num=%d", a.Num())
	}
	if got := collect(&b); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("moved-to array has %v", got)
	}
	// the moved-from array stays usable
	if err := a.Add("d"); err != nil || a.Num() != 1 {
		t.Fatalf("moved-from array not usable: %v", err)
	}
	var c Array[string]
	_ = c.Add("x")
	c.MoveFrom(&b)
	if got := collect(&c); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("MoveFrom produced %v", got)
	}
	if b.Num() != 0 || b.Address() != nil {
		t.Fatalf("MoveFrom did not empty source")
	}
}

func TestCloneAndAssign(t *testing.T) {
	a := From(1, 2, 3)
	c, err := a.Clone()
	if err != nil {
		t.Fatal(err)
	}
	*c.At(0) = 100
	if *a.At(0) != 1 {
		t.Fatalf("clone shares storage with source")
	}
	var d Array[int]
	_ = d.Add(7)
	if err = d.Assign(a); err != nil {
		t.Fatal(err)
	}
	if got := collect(&d); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Assign produced %v", got)
	}
	if got := collect(a); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Assign modified its source: %v", got)
	}
}

func TestCloneNestedArraysIsDeep(t *testing.T) {
	var outer Array[Array[int]]
	_ = outer.Add(*From(1, 2))
	c, err := outer.Clone()
	if err != nil {
		t.Fatal(err)
	}
	*c.At(0).At(0) = 42
	if *outer.At(0).At(0) != 1 {
		t.Fatalf("nested clone is shallow")
	}
}

type moveOnly struct{ v int }

func (moveOnly) MoveOnly() {}

func TestCloneRefusesMoveOnly(t *testing.T) {
	var a Array[moveOnly]
	_ = a.Add(moveOnly{1})
	if _, err := a.Clone(); !errors.Is(err, containers.ErrMoveOnly) {
		t.Fatalf("expected ErrMoveOnly, got %v", err)
	}
}

func TestIndexFuncAndLast(t *testing.T) {
	a := From(3, 5, 8)
	if i := a.IndexFunc(func(v int) bool { return v > 4 }); i != 1 {
		t.Fatalf("IndexFunc = %d, want 1", i)
	}
	if last, err := a.Last(); err != nil || last != 8 {
		t.Fatalf("Last = %d, %v", last, err)
	}
	var e Array[int]
	if _, err := e.Last(); !errors.Is(err, containers.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
