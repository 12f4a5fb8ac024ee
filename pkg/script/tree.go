package script

import (
	"github.com/vango-dev/mirror/pkg/markup"
)

// element is what Walk descends into: *markup.Element and *Live.
type element interface {
	Tag() markup.Node
	Attributes() []markup.Attribute
	Children() markup.Sequence
}

// Walk visits root and its descendants depth-first: an element, then its
// name, its attribute values and its children in order. If fn returns
// false the node's descendants are skipped.
func Walk(root markup.Node, fn func(markup.Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	switch n := root.(type) {
	case element:
		Walk(n.Tag(), fn)
		for _, a := range n.Attributes() {
			if a.Value != nil {
				Walk(a.Value, fn)
			}
		}
		Walk(n.Children(), fn)
	case markup.Sequence:
		for _, child := range n.All() {
			Walk(child, fn)
		}
	}
}

// Bootstraps returns the bootstrap of every live node under root, root
// included, in document order.
func Bootstraps(root markup.Node) []*Bootstrap {
	var out []*Bootstrap
	Walk(root, func(n markup.Node) bool {
		if l, ok := n.(*Live); ok {
			out = append(out, l.Bootstrap())
		}
		return true
	})
	return out
}

// Find returns the live node under root with the given identity.
func Find(root markup.Node, identity string) (*Live, bool) {
	var found *Live
	Walk(root, func(n markup.Node) bool {
		if found != nil {
			return false
		}
		if l, ok := n.(*Live); ok && l.Identity() == identity {
			found = l
			return false
		}
		return true
	})
	return found, found != nil
}

// Mount replaces the children of target with the bootstraps of every live
// node under root. target is usually a frozen <script> node inside root.
func Mount(root markup.Node, target *Live) error {
	bootstraps := Bootstraps(root)
	children := make([]any, len(bootstraps))
	for i, b := range bootstraps {
		children[i] = b
	}
	return target.Apply(markup.Children(children...))
}
