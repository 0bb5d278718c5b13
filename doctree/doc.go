/*
Package doctree builds trees of document elements from HTML.

Parsing is done by golang.org/x/net/html; doctree converts the parsed nodes
into a tree.Node[Element], where every element keeps its tag, its
attributes and, for text nodes, its text as an sstring.String. The
conversion does not interpret layout or styling.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package doctree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'containers'.
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
