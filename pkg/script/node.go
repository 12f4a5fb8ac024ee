package script

import "github.com/vango-dev/mirror/pkg/markup"

// Node is a member of the script family: a markup node that can also
// describe its render as JavaScript.
type Node interface {
	markup.Node

	// RenderFn returns the source of a zero-argument function computing
	// the node's render.
	RenderFn() JS

	// Handle returns the source of an expression for an object whose
	// render method is RenderFn.
	Handle() JS
}

// Text is fixed text.
type Text struct {
	markup.Text
}

// NewText creates a Text node.
func NewText(s string) Text {
	return Text{markup.NewText(s)}
}

// RenderFn implements Node.
func (t Text) RenderFn() JS { return constFn(t.Render()) }

// Handle implements Node.
func (t Text) Handle() JS { return handleOf(t) }

// LazyText is text produced at render time. Its RenderFn captures the
// render current at the time RenderFn is called.
type LazyText struct {
	markup.LazyText
}

// NewLazyText wraps a producer that is called on every render.
func NewLazyText(fn func() string) LazyText {
	return LazyText{markup.NewLazyText(fn)}
}

// RenderFn implements Node.
func (l LazyText) RenderFn() JS { return constFn(l.Render()) }

// Handle implements Node.
func (l LazyText) Handle() JS { return handleOf(l) }

// List is an ordered sequence of script nodes.
type List struct {
	*markup.List
}

// NewList creates a list of the given nodes.
func NewList(nodes ...Node) *List {
	m := make([]markup.Node, len(nodes))
	for i, n := range nodes {
		m[i] = n
	}
	return &List{markup.NewList(m...)}
}

// Nodes returns the list's nodes as script nodes.
func (l *List) Nodes() []Node {
	return scriptNodes(l.List)
}

// RenderFn joins the renders of the nodes' handles.
func (l *List) RenderFn() JS {
	nodes := l.Nodes()
	handles := make([]JS, len(nodes))
	for i, n := range nodes {
		handles[i] = n.Handle()
	}
	return `function () { return [` + join(handles, ", ") + `].map((h) => h.render()).join(""); }`
}

// Handle implements Node.
func (l *List) Handle() JS { return handleOf(l) }

// AsNode returns n if it is a script node and otherwise a LazyText bound to
// its render.
func AsNode(n markup.Node) Node {
	if s, ok := n.(Node); ok {
		return s
	}
	return NewLazyText(n.Render)
}

func scriptNodes(seq markup.Sequence) []Node {
	nodes := make([]Node, 0, seq.Len())
	for _, n := range seq.All() {
		nodes = append(nodes, AsNode(n))
	}
	return nodes
}
