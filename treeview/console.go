package treeview

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/containers/sstring"
	"github.com/npillmayer/containers/tree"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	Width   int            // maximum line width in en; 0 means unlimited
	Colors  bool           // use the console palette
	Context *uax11.Context // for measuring label widths; nil means Latin
}

// Console prints trees with one node per line, indented by depth with
// box-drawing guides:
//
//	R
//	├─ A
//	│  └─ C
//	└─ B
type Console[T any] struct {
	label   func(T) string
	palette palette
}

type palette struct {
	guides, inner, leaves *color.Color
}

// NewConsole creates a console printer. label renders a node payload; it
// should not contain newlines.
func NewConsole[T any](label func(T) string) *Console[T] {
	return &Console[T]{
		label: label,
		palette: palette{
			guides: color.New(color.FgHiBlack),
			inner:  color.New(color.FgBlue, color.Bold),
			leaves: color.New(color.FgGreen),
		},
	}
}

// Print outputs the subtree of root to stdout. If config is nil, it is
// derived from the current terminal and the user environment.
func (c *Console[T]) Print(root *tree.Node[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return c.Fprint(os.Stdout, root, config)
}

// Fprint outputs the subtree of root to w. Labels too wide for
// config.Width are truncated and marked with an ellipsis.
func (c *Console[T]) Fprint(w io.Writer, root *tree.Node[T], config *Config) error {
	if config == nil {
		config = &Config{}
	}
	for n := range root.All() {
		guide := guides(n, root)
		text := c.fit(c.label(n.Value), config.Width-len([]rune(guide)), config.Context)
		if config.Colors {
			col := c.palette.leaves
			if !n.IsLeaf() {
				col = c.palette.inner
			}
			if _, err := c.palette.guides.Fprint(w, guide); err != nil {
				return err
			}
			if _, err := col.Fprint(w, text); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, guide+text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// guides builds the indentation for n, relative to top.
func guides[T any](n, top *tree.Node[T]) string {
	if n == top {
		return ""
	}
	var parts []string
	for a := n; a != top; a = a.Parent() {
		last := a.ID() == a.Parent().CountChildren()-1
		switch {
		case a == n && last:
			parts = append(parts, "└─ ")
		case a == n:
			parts = append(parts, "├─ ")
		case last:
			parts = append(parts, "   ")
		default:
			parts = append(parts, "│  ")
		}
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}

// fit truncates label to a display width of at most width.
func (c *Console[T]) fit(label string, width int, context *uax11.Context) string {
	if width <= 0 || len(label) <= width { // display width never exceeds byte length
		return label
	}
	s := sstring.FromString(label)
	defer s.Destroy()
	if sstring.DisplayWidth(s, context) <= width {
		return label
	}
	sstring.TruncateWidth(s, width-1, context)
	return s.String() + "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal creates a console Config. If stdin is a terminal, the
// line width is set from the terminal's width and colors are switched on.
func ConfigFromTerminal() *Config {
	config := &Config{Width: 80}
	if term.IsTerminal(0) {
		config.Colors = true
		if w, _, err := term.GetSize(0); err == nil {
			config.Width = max(w, 20)
		}
	}
	tracer().P("treeview", "console").Infof("setting line width to %d en", config.Width)
	return config
}
