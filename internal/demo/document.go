package demo

import (
	"github.com/vango-dev/mirror/pkg/markup"
	"github.com/vango-dev/mirror/pkg/script"
)

// Greeting is the heading text.
const Greeting = "Hello, World!"

// Document is the example tree with its nodes exposed.
type Document struct {
	Root    *script.Live
	Head    *script.Live
	Script  *script.Live
	Body    *script.Live
	Heading *script.Live
}

// New builds the document with b. Identities are drawn in the order head,
// script, body; html and the heading carry explicit ids.
func New(b *script.Builder) *Document {
	d := &Document{
		Root:    b.Live(markup.Tag("html"), markup.Attributes(markup.ID("root"))),
		Head:    b.Live(markup.Tag("head")),
		Script:  b.Frozen(markup.Tag("script"), markup.Attributes(markup.Lang("js"))),
		Body:    b.Live(markup.Tag("body")),
		Heading: b.Live(markup.Tag("span"), markup.Attributes(markup.ID("heading"))),
	}

	d.Root.Set(markup.Children(
		d.Head.Set(markup.Children(
			d.Script.Set(markup.Children(
				d.Root.Bootstrap(),
				d.Head.Bootstrap(),
				d.Script.Bootstrap(),
				d.Body.Bootstrap(),
				d.Heading.Bootstrap(),
			)),
		)),
		d.Body.Set(markup.Children(
			d.Heading.Set(markup.Children(Greeting)),
		)),
	))
	return d
}

// Nodes returns the live nodes in document order.
func (d *Document) Nodes() []*script.Live {
	return []*script.Live{d.Root, d.Head, d.Script, d.Body, d.Heading}
}

// Find returns the node with the given identity.
func (d *Document) Find(identity string) (*script.Live, bool) {
	return script.Find(d.Root, identity)
}

// Render returns the document markup.
func (d *Document) Render() string {
	return d.Root.Render()
}
