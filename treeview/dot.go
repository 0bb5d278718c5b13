package treeview

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/containers/tree"
)

type nodeids[T any] struct {
	idTable map[*tree.Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*tree.Node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node *tree.Node[T]) int {
	if id, ok := ids.idTable[node]; ok {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the subtree of root in Graphviz DOT format (for debugging
// purposes). Nodes are numbered in pre-order; leaves are drawn as boxes.
func ToDot[T any](w io.Writer, root *tree.Node[T], label func(T) string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var edges strings.Builder
	for n := range root.All() {
		id := ids.alloc(n)
		fmt.Fprintf(&b, "\t\"%d\" [label=\"%s\"%s];\n", id, escape(label(n.Value)), nodeDotStyles(n.IsLeaf(), n.Depth()-root.Depth()))
		if n != root {
			fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", ids.alloc(n.Parent()), id)
		}
	}
	b.WriteString(edges.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func escape(label string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(label)
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
