package containers

// Destroyer is implemented by element types which hold resources besides
// memory. Containers call Destroy exactly once when they drop an element,
// i.e. on Remove, PopBack, shrinking Resize, Clear and re-assignment.
// Moving an element to a new slot is not dropping it.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types which need more than a plain Go
// assignment to be copied, e.g. types owning a buffer. Containers use Clone
// when copying elements.
type Cloner[T any] interface {
	Clone() (T, error)
}

// MoveOnly marks element types which must never be duplicated. Containers
// refuse to copy arrays of such elements with ErrMoveOnly.
type MoveOnly interface {
	MoveOnly()
}

// Destroy calls Destroy on *x if the element type implements Destroyer.
func Destroy[T any](x *T) {
	if d, ok := any(x).(Destroyer); ok {
		d.Destroy()
	}
}

// CloneOf copies x, using Cloner if *T implements it and a plain assignment
// otherwise. If T is MoveOnly, CloneOf fails with ErrMoveOnly.
func CloneOf[T any](x *T) (T, error) {
	switch c := any(x).(type) {
	case MoveOnly:
		var zero T
		return zero, ErrMoveOnly
	case Cloner[T]:
		return c.Clone()
	}
	return *x, nil
}

// IsMoveOnly reports whether elements of type T are move-only.
func IsMoveOnly[T any]() bool {
	var x T
	_, ok := any(&x).(MoveOnly)
	return ok
}
