/*
Package treeview renders trees for debugging: as indented text for a
console and in Graphviz DOT format.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package treeview

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'containers'.
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
