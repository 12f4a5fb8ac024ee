package markup

import "sort"

// Attr is an unconverted attribute. A nil or "" Value marks the attribute
// as present without a value.
type Attr struct {
	Key   string
	Value any
}

// Prop creates an attribute with a value.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Bare creates an attribute rendered as its key alone.
func Bare(key string) Attr {
	return Attr{Key: key}
}

// Option configures an element on construction or reconfiguration.
type Option func(*change)

// change collects what one New or Apply call asks for. Unset parameters
// leave the element as it is.
type change struct {
	setTag      bool
	tag         any
	setChildren bool
	children    []any
	clearAttrs  bool
	attrs       []Attr
}

// Tag sets the element name. Nil renders as an empty name.
func Tag(v any) Option {
	return func(c *change) {
		c.setTag = true
		c.tag = v
	}
}

// Children replaces the children. Children() with no values empties them.
func Children(values ...any) Option {
	return func(c *change) {
		c.setChildren = true
		c.children = values
	}
}

// Attributes merges attrs into the element: existing keys keep their
// position and take the new value, new keys are appended in order.
func Attributes(attrs ...Attr) Option {
	return func(c *change) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// AttributeMap merges m the way Attributes does, in sorted key order.
func AttributeMap(m map[string]any) Option {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Attr{Key: k, Value: m[k]})
	}
	return Attributes(attrs...)
}

// NoAttributes removes every attribute before the call's merges apply.
func NoAttributes() Option {
	return func(c *change) {
		c.clearAttrs = true
	}
}
