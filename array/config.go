package array

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

// Config configures an Array.
type Config[T any] struct {
	// Allocator grants the backing buffer. Defaults to alloc.Heap.
	Allocator alloc.Allocator
	// Constructor creates the elements for slots added by Resize.
	// Defaults to the zero value of T.
	Constructor func() T
}

func (cfg Config[T]) normalized() Config[T] {
	cfg.Allocator = alloc.Default(cfg.Allocator)
	return cfg
}

// Init configures an array. It is legal only for an array which has
// never held a buffer, i.e. a zero Array or one that has been moved from.
// A zero Config is valid and selects the defaults.
func (a *Array[T]) Init(cfg Config[T]) error {
	if a.buf != nil || a.num != 0 {
		return fmt.Errorf("%w: cannot configure a non-empty array", containers.ErrIllegalArguments)
	}
	cfg = cfg.normalized()
	a.alloc = cfg.Allocator
	a.ctor = cfg.Constructor
	return nil
}

// Config returns the effective configuration of a.
func (a *Array[T]) Config() Config[T] {
	return Config[T]{Allocator: a.allocator(), Constructor: a.ctor}
}

// New creates an empty array with a validated configuration.
func New[T any](cfg Config[T]) (*Array[T], error) {
	a := &Array[T]{}
	if err := a.Init(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// NewSized creates an array of n constructed elements.
func NewSized[T any](cfg Config[T], n int) (*Array[T], error) {
	a, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// From creates a heap-backed array holding values.
func From[T any](values ...T) *Array[T] {
	a := &Array[T]{}
	for _, v := range values {
		err := a.Add(v)
		assert(err == nil, "From: heap allocation refused")
	}
	return a
}
