/*
Package tree implements a generic ordered tree whose nodes own their children
by value.

Every node keeps its children in an array.Array[Node[T]], so the subtree
storage of each level is one contiguous buffer. A child knows its parent
(a plain back-pointer, not ownership) and its id, the position in the
parent's child array.

Adding or removing a child may re-allocate the child array of the parent
and thereby move every sibling, and with it the addresses which the
grandchildren use as parent pointers. Therefore each structural mutation
re-stamps ids and parent pointers of the complete subtree below the mutated
node. Check verifies that the linkage is consistent.

Node pointers handed out by the API are references into a child array.
They stay valid until the next structural mutation of the parent's
children (or of any ancestor's).

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'containers'.
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

var (
	// ErrNotDetached signals that a node to be added is still part of a tree.
	ErrNotDetached = errors.New("tree: node is not a detached root")
	// ErrCorrupted signals inconsistent parent/id linkage.
	ErrCorrupted = errors.New("tree: inconsistent node linkage")
)
