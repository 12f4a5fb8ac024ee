// Package markup provides the markup node family: text, lists and elements
// that render HTML-like markup.
//
// # Core Types
//
// Node is the family capability: Render plus RenderTo. Text is fixed text,
// LazyText is computed on every render, List is an ordered run of nodes and
// Element is a mutable `<tag attrs>children</tag>` node.
//
// # Conversion
//
// Element accepts arbitrary values for its name, attribute values and
// children. They are turned into nodes by a convert.Registry; the default
// chain is returned by Rules and can be cloned and extended by other
// families.
//
// # Element API
//
//	page := markup.Html(markup.ID("root"),
//	    markup.Body(
//	        markup.Span(markup.Class("greeting"), "Hello, World!"),
//	    ),
//	)
//
//	page.Set(markup.Attributes(markup.Lang("en")))
//	page.Set(markup.NoAttributes(), markup.Children())
//
// Nothing is escaped. Use render.Escape or Sanitize for untrusted input.
package markup
