package uptr

import "github.com/npillmayer/containers"

// UniquePtr is the sole owner of a *T. The zero UniquePtr is nil.
//
// UniquePtrs must not be copied by assignment; use Move or MoveFrom.
type UniquePtr[T any] struct {
	p *T
}

var _ containers.MoveOnly = &UniquePtr[int]{}

// New takes ownership of p.
func New[T any](p *T) UniquePtr[T] {
	return UniquePtr[T]{p: p}
}

// Make allocates a T holding v and returns its owner.
func Make[T any](v T) UniquePtr[T] {
	return UniquePtr[T]{p: &v}
}

// MoveOnly marks UniquePtr as not copyable.
func (u *UniquePtr[T]) MoveOnly() {}

// Get returns the owned pointer without giving up ownership.
func (u *UniquePtr[T]) Get() *T {
	return u.p
}

// IsNil reports whether u owns nothing.
func (u *UniquePtr[T]) IsNil() bool {
	return u.p == nil
}

// Release gives up ownership and returns the pointer. u is nil afterwards
// and the caller is responsible for the pointee.
func (u *UniquePtr[T]) Release() *T {
	p := u.p
	u.p = nil
	return p
}

// Switch destroys the currently owned object, if any, and takes ownership
// of p. Switching to the pointer already owned is a no-op.
func (u *UniquePtr[T]) Switch(p *T) {
	if p == u.p {
		return
	}
	u.Destroy()
	u.p = p
}

// Move transfers ownership to the returned UniquePtr and leaves u nil.
func (u *UniquePtr[T]) Move() UniquePtr[T] {
	return UniquePtr[T]{p: u.Release()}
}

// MoveFrom destroys the object owned by u and takes over ownership from
// src, which is left nil.
func (u *UniquePtr[T]) MoveFrom(src *UniquePtr[T]) {
	if src == u {
		return
	}
	u.Switch(src.Release())
}

// Destroy destroys the owned object and leaves u nil.
func (u *UniquePtr[T]) Destroy() {
	if u.p == nil {
		return
	}
	p := u.p
	u.p = nil
	containers.Destroy(p)
}
