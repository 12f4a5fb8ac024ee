package markup

import (
	"io"
	"iter"
	"strings"

	"github.com/vango-dev/mirror/pkg/render"
)

// Node is a member of the markup family: a Renderable that can also stream
// its markup to a writer.
type Node interface {
	render.Renderable
	RenderTo(w io.Writer) error
}

// Sequence is an ordered, read-only run of nodes. An element's children
// slot holds a Sequence so other families can substitute their own list.
type Sequence interface {
	Node
	Len() int
	At(i int) Node
	All() iter.Seq2[int, Node]
}

// Text is fixed markup text.
type Text struct {
	render.Text
}

// NewText creates a Text node.
func NewText(s string) Text {
	return Text{render.Text(s)}
}

// String returns the text.
func (t Text) String() string {
	return string(t.Text)
}

// RenderTo implements Node.
func (t Text) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, string(t.Text))
	return err
}

// LazyText is markup text produced at render time.
type LazyText struct {
	*render.Lazy
}

// NewLazyText wraps a producer that is called on every render.
func NewLazyText(fn func() string) LazyText {
	return LazyText{render.NewLazy(fn)}
}

// RenderTo implements Node.
func (l LazyText) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, l.Render())
	return err
}

// List is an ordered sequence of nodes, fixed at construction.
type List struct {
	nodes []Node
}

// NewList creates a list of the given nodes.
func NewList(nodes ...Node) *List {
	return &List{nodes: append([]Node(nil), nodes...)}
}

// Len returns the number of nodes.
func (l *List) Len() int {
	return len(l.nodes)
}

// At returns the i-th node.
func (l *List) At(i int) Node {
	return l.nodes[i]
}

// All iterates the nodes in order.
func (l *List) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, n := range l.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Render concatenates the renders of all nodes, in order, with no separator.
func (l *List) Render() string {
	var b strings.Builder
	_ = l.RenderTo(&b)
	return b.String()
}

// String returns the concatenated renders.
func (l *List) String() string {
	return l.Render()
}

// RenderTo implements Node.
func (l *List) RenderTo(w io.Writer) error {
	for _, n := range l.nodes {
		if err := n.RenderTo(w); err != nil {
			return err
		}
	}
	return nil
}
