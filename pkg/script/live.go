package script

import (
	"github.com/vango-dev/mirror/pkg/markup"
)

// DefaultNamespace prefixes the global slot name of every live node.
const DefaultNamespace = "__jshtml_"

// liveRenderFn renders the installed element the way markup.Element renders
// itself, reading the name, attributes and children from the live document.
// It is called as a method of the node's slot.
const liveRenderFn JS = `function () { ` +
	`const element = this.getElement(); ` +
	`const tag = element.localName; ` +
	`let result = "<" + tag; ` +
	`for (const attr of element.attributes) { ` +
	`result += attr.value === "" ? " " + attr.name : " " + attr.name + "=\"" + attr.value + "\""; ` +
	`} ` +
	`result += ">"; ` +
	`for (const child of this.children) { result += child().render(); } ` +
	`return result + "</" + tag + ">"; ` +
	`}`

// Live is an element with a stable identity that can install a client-side
// mirror of itself under window[namespace+identity].
//
// The identity is fixed at construction and stored as the id attribute; it
// survives every later Set or Apply.
type Live struct {
	*markup.Element

	identity  string
	namespace string
	frozen    bool
	bootstrap *Bootstrap
}

func newLive(el *markup.Element, identity, namespace string, frozen bool) *Live {
	l := &Live{
		Element:   el,
		identity:  identity,
		namespace: namespace,
		frozen:    frozen,
	}
	l.bootstrap = &Bootstrap{owner: l}
	el.Pin("id", NewText(identity))
	return l
}

// Identity returns the node's identity, equal to its id attribute.
func (l *Live) Identity() string {
	return l.identity
}

// Namespace returns the prefix of the node's slot name.
func (l *Live) Namespace() string {
	return l.namespace
}

// Frozen reports whether the node never re-renders on the client.
func (l *Live) Frozen() bool {
	return l.frozen
}

// Set reconfigures the node and returns it. It panics if the registry
// rejects a value.
func (l *Live) Set(opts ...markup.Option) *Live {
	l.Element.Set(opts...)
	return l
}

// Slot returns the expression for the node's global slot, followed by one
// property access per path segment.
func (l *Live) Slot(path ...string) JS {
	slot := "window[" + Quote(l.namespace+l.identity) + "]"
	for _, seg := range path {
		slot += JS("." + seg)
	}
	return slot
}

// Handle implements Node. A live node is reached through its slot.
func (l *Live) Handle() JS {
	return l.Slot()
}

// RenderFn implements Node. Frozen nodes always render as empty.
func (l *Live) RenderFn() JS {
	if l.frozen {
		return emptyFn
	}
	return liveRenderFn
}

// Bootstrap returns the script that installs the node's slot.
func (l *Live) Bootstrap() *Bootstrap {
	return l.bootstrap
}

// ChildNodes returns the children as script nodes.
func (l *Live) ChildNodes() []Node {
	return scriptNodes(l.Children())
}
