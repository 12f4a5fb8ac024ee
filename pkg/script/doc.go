// Package script provides the script node family: markup nodes that can
// also describe their render as JavaScript, and live elements that install
// a client-side mirror of themselves.
//
// # Core Types
//
// Node adds RenderFn and Handle to markup.Node. Text, LazyText and List are
// the script counterparts of the markup leaves and lists; their handle is an
// object literal `{render: ...}` whose render returns the same text.
//
// Live is an element with an identity. Its handle is a global slot,
// window[namespace+identity], and its Bootstrap is a script that fills the
// slot with:
//
//	getElement  looks the element up by id in the live document
//	render      renders that element the way Element.Render does
//	children    one accessor per child returning the child's handle
//
// so a parent's client-side render defers to whatever its children have
// installed. Frozen nodes keep the same slot but render as empty on the
// client; use them for <script> and <style> regions.
//
// # Building a Tree
//
//	b := script.NewBuilder(script.WithIdentities(script.NewSequence("n")))
//	page := b.Live(markup.Tag("html"), markup.Attributes(markup.ID("root")))
//	head := b.Live(markup.Tag("head"))
//	js := b.Frozen(markup.Tag("script"))
//	page.Set(markup.Children(head.Set(markup.Children(js)), "hi"))
//	err := script.Mount(page, js)
//
// Plain markup elements placed under a live node are converted to text, so
// every element that should be mirrored has to be a Live.
//
// Identities come from an explicit id attribute or from the builder's
// IdentitySource. They are pinned as the id attribute for the node's
// lifetime.
package script
