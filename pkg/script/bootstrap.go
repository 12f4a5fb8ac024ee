package script

import (
	"io"
)

// Bootstrap is the installation script of a live node:
//
//	(() => { <slot> = { getElement: ..., render: ..., children: [...] }; })();
//
// It is itself a node, so it can be placed inside a <script> element. Once
// executed it has nothing to re-render, so its own render function is
// constant.
type Bootstrap struct {
	owner *Live
}

// Owner returns the node the bootstrap installs.
func (b *Bootstrap) Owner() *Live {
	return b.owner
}

// Accessors returns one zero-argument accessor per child, in child order.
// Each returns the child's handle.
func (b *Bootstrap) Accessors() []JS {
	children := b.owner.ChildNodes()
	out := make([]JS, len(children))
	for i, c := range children {
		out[i] = accessor(c.Handle())
	}
	return out
}

// Render returns the installation script.
func (b *Bootstrap) Render() string {
	o := b.owner
	return string("(() => { " + o.Slot() + " = { " +
		"getElement: () => document.getElementById(" + Quote(o.identity) + "), " +
		"render: " + o.RenderFn() + ", " +
		"children: [" + join(b.Accessors(), ", ") + "] " +
		"}; })();")
}

// RenderTo implements markup.Node.
func (b *Bootstrap) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, b.Render())
	return err
}

// RenderFn implements Node.
func (b *Bootstrap) RenderFn() JS {
	return emptyFn
}

// Handle implements Node.
func (b *Bootstrap) Handle() JS {
	return handleOf(b)
}
