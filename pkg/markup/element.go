package markup

import (
	"io"
	"strings"

	"github.com/vango-dev/mirror/pkg/convert"
)

// Attribute is a converted attribute. A nil Value is the absent marker and
// renders as a bare key.
type Attribute struct {
	Key   string
	Value Node
}

// Bare reports whether the attribute renders without a value.
func (a Attribute) Bare() bool {
	return a.Value == nil
}

// Render returns `key="value"`. Bare attributes and values that render
// empty give just `key`, which is also how a document reports them back.
func (a Attribute) Render() string {
	if a.Value == nil {
		return a.Key
	}
	v := a.Value.Render()
	if v == "" {
		return a.Key
	}
	return a.Key + `="` + v + `"`
}

// Element is a mutable markup node: an element name, ordered attributes and
// a sequence of children. The element name, attribute values and children
// are converted from arbitrary values by the element's registry.
//
// Element performs no escaping of its name, attributes or text; callers
// pre-escape untrusted content (see render.Escape and Sanitize). This keeps
// the engine agnostic of the markup dialect it produces.
//
// The zero Element renders as `<></>` and converts with the default markup
// registry. Elements are not safe for concurrent mutation.
type Element struct {
	registry *convert.Registry[Node]
	tag      Node
	attrs    []Attribute
	pins     []Attribute
	children Sequence
}

// New creates an element converted with the default markup registry.
// It panics only if that registry has been altered to reject a value.
func New(opts ...Option) *Element {
	e, err := NewWith(Registry(), opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewWith creates an element whose values are converted by reg. Absent
// options leave an empty name, no attributes and no children.
func NewWith(reg *convert.Registry[Node], opts ...Option) (*Element, error) {
	e := &Element{registry: reg}
	defaults := []Option{Tag(nil), Children()}
	if err := e.Apply(append(defaults, opts...)...); err != nil {
		return nil, err
	}
	return e, nil
}

// Apply reconfigures the element in place. Every value is converted before
// anything changes, so on error the element is left untouched.
func (e *Element) Apply(opts ...Option) error {
	var c change
	for _, opt := range opts {
		opt(&c)
	}

	var (
		tag      Node
		children Sequence
		err      error
	)
	if c.setTag {
		if tag, err = e.Registry().Convert(c.tag); err != nil {
			return err
		}
	}
	if c.setChildren {
		if children, err = e.sequence(c.children); err != nil {
			return err
		}
	}
	attrs := make([]Attribute, 0, len(c.attrs))
	for _, a := range c.attrs {
		value, err := e.attributeValue(a.Value)
		if err != nil {
			return err
		}
		attrs = append(attrs, Attribute{Key: a.Key, Value: value})
	}

	if c.setTag {
		e.tag = tag
	}
	if c.setChildren {
		e.children = children
	}
	if c.clearAttrs {
		e.attrs = nil
	}
	for _, a := range attrs {
		e.setAttribute(a)
	}
	for _, pin := range e.pins {
		e.setAttribute(pin)
	}
	return nil
}

// Set is the chaining form of Apply: it mutates the element and returns it.
// It panics if the registry rejects a value.
func (e *Element) Set(opts ...Option) *Element {
	if err := e.Apply(opts...); err != nil {
		panic(err)
	}
	return e
}

// Pin fixes an attribute: it is set now and restored after every later
// reconfiguration, including NoAttributes and attempts to overwrite it.
func (e *Element) Pin(key string, value Node) {
	a := Attribute{Key: key, Value: value}
	for i := range e.pins {
		if e.pins[i].Key == key {
			e.pins[i] = a
			e.setAttribute(a)
			return
		}
	}
	e.pins = append(e.pins, a)
	e.setAttribute(a)
}

// Tag returns the element name node.
func (e *Element) Tag() Node {
	return e.tag
}

// Attributes returns a copy of the attributes in order.
func (e *Element) Attributes() []Attribute {
	return append([]Attribute(nil), e.attrs...)
}

// Lookup returns the attribute stored under key.
func (e *Element) Lookup(key string) (Attribute, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attribute{}, false
}

// Children returns the children sequence.
func (e *Element) Children() Sequence {
	if e.children == nil {
		return NewList()
	}
	return e.children
}

// Registry returns the registry that converts values for this element.
func (e *Element) Registry() *convert.Registry[Node] {
	if e.registry == nil {
		return Registry()
	}
	return e.registry
}

// Render returns `<tag attrs>children</tag>`.
func (e *Element) Render() string {
	var b strings.Builder
	_ = e.RenderTo(&b)
	return b.String()
}

// String returns the rendered markup.
func (e *Element) String() string {
	return e.Render()
}

// RenderTo implements Node. The element name is rendered once per call and
// reused for the closing tag.
func (e *Element) RenderTo(w io.Writer) error {
	var tag string
	if e.tag != nil {
		tag = e.tag.Render()
	}
	sw := &stickyWriter{w: w}

	sw.WriteString("<")
	sw.WriteString(tag)
	for _, a := range e.attrs {
		sw.WriteString(" ")
		sw.WriteString(a.Render())
	}
	sw.WriteString(">")
	if sw.err == nil && e.children != nil {
		if err := e.children.RenderTo(sw); err != nil {
			return err
		}
	}
	sw.WriteString("</")
	sw.WriteString(tag)
	sw.WriteString(">")
	return sw.err
}

func (e *Element) setAttribute(a Attribute) {
	for i := range e.attrs {
		if e.attrs[i].Key == a.Key {
			e.attrs[i].Value = a.Value
			return
		}
	}
	e.attrs = append(e.attrs, a)
}

// attributeValue converts a raw attribute value; nil and "" mean absent.
func (e *Element) attributeValue(v any) (Node, error) {
	if IsNil(v) {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	return e.Registry().Convert(v)
}

// sequence converts children values into the family's sequence type.
func (e *Element) sequence(values []any) (Sequence, error) {
	if values == nil {
		values = []any{}
	}
	n, err := e.Registry().Convert(values)
	if err != nil {
		return nil, err
	}
	if s, ok := n.(Sequence); ok {
		return s, nil
	}
	return NewList(n), nil
}

// stickyWriter stops writing after the first error and remembers it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

func (s *stickyWriter) WriteString(str string) {
	if s.err == nil {
		_, s.err = io.WriteString(s.w, str)
	}
}
