package containers

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrAllocation is flagged whenever a container cannot obtain the backing
// storage an operation needs. The container is left as it was before the call.
const ErrAllocation = ContainerError("allocation failed")

// ErrIndexOutOfBounds is flagged whenever a position is outside of the valid
// range of a container.
const ErrIndexOutOfBounds = ContainerError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")

// ErrIteratorInvalidated is flagged when an iterator is used after its
// container has been structurally modified.
const ErrIteratorInvalidated = ContainerError("iterator used after container modification")

// ErrMoveOnly signals an attempt to copy elements which may only be moved.
const ErrMoveOnly = ContainerError("element type may not be copied")

// ErrEmpty is flagged for operations which need at least one element.
const ErrEmpty = ContainerError("container is empty")
