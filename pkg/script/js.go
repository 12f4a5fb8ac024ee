package script

import (
	"encoding/json"
	"strings"
)

// JS is JavaScript source text.
type JS string

// Render implements render.Renderable.
func (j JS) Render() string {
	return string(j)
}

// emptyFn is the render function of nodes that never re-render on the client.
const emptyFn JS = `() => ""`

// Quote returns s as a JavaScript string literal. The literal is JSON
// encoded, so `<`, `>` and `&` are escaped and the text is safe inside a
// <script> element.
func Quote(s string) JS {
	b, _ := json.Marshal(s)
	return JS(b)
}

// constFn returns a function that evaluates to s.
func constFn(s string) JS {
	return "() => " + Quote(s)
}

// handleOf is the handle of a node without a namespace slot.
func handleOf(n Node) JS {
	return "{render: " + n.RenderFn() + "}"
}

// accessor wraps a handle in a zero-argument function. The parentheses keep
// an object literal handle from parsing as a block.
func accessor(handle JS) JS {
	return "() => (" + handle + ")"
}

func join(parts []JS, sep string) JS {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = string(p)
	}
	return JS(strings.Join(s, sep))
}
