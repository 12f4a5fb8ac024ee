package markup

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/mirror/pkg/convert"
	"github.com/vango-dev/mirror/pkg/render"
)

// Rule names of the default chain. Other families replace rules by these
// names.
const (
	RuleNode       = "node"
	RuleRenderable = "renderable"
	RuleProducer   = "producer"
	RuleNil        = "nil"
	RuleSequence   = "sequence"
	RuleText       = "text"
)

var defaultRegistry = NewRegistry()

// Registry returns the shared markup registry used by New.
func Registry() *convert.Registry[Node] {
	return defaultRegistry
}

// NewRegistry returns a fresh markup registry with the default chain.
func NewRegistry() *convert.Registry[Node] {
	return convert.New[Node]("markup", Rules()...)
}

// Rules returns the default markup chain:
//
//	markup node        -> itself
//	other Renderable   -> LazyText bound to its Render
//	func() string      -> LazyText
//	nil                -> empty Text
//	slice or array     -> List, each element converted
//	anything else      -> Text of its fmt.Sprint form
func Rules() []convert.Rule[Node] {
	return []convert.Rule[Node]{
		{
			Name: RuleNode,
			Match: func(v any) bool {
				_, ok := v.(Node)
				return ok && !IsNil(v)
			},
			Convert: func(_ convert.Converter[Node], v any) (Node, error) {
				return v.(Node), nil
			},
		},
		{
			Name:  RuleRenderable,
			Match: IsRenderable,
			Convert: func(_ convert.Converter[Node], v any) (Node, error) {
				return NewLazyText(v.(render.Renderable).Render), nil
			},
		},
		{
			Name:  RuleProducer,
			Match: IsProducer,
			Convert: func(_ convert.Converter[Node], v any) (Node, error) {
				return NewLazyText(v.(func() string)), nil
			},
		},
		{
			Name:  RuleNil,
			Match: IsNil,
			Convert: func(_ convert.Converter[Node], _ any) (Node, error) {
				return NewText(""), nil
			},
		},
		{
			Name:  RuleSequence,
			Match: IsSequence,
			Convert: func(c convert.Converter[Node], v any) (Node, error) {
				nodes, err := ConvertEach(c, v)
				if err != nil {
					return nil, err
				}
				return NewList(nodes...), nil
			},
		},
		{
			Name:  RuleText,
			Match: func(any) bool { return true },
			Convert: func(_ convert.Converter[Node], v any) (Node, error) {
				return NewText(Stringify(v)), nil
			},
		},
	}
}

// IsNil reports whether v is nil or a nil pointer, func, map, chan or
// interface. Nil slices are empty sequences, not nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsRenderable reports whether v is a non-nil Renderable.
func IsRenderable(v any) bool {
	_, ok := v.(render.Renderable)
	return ok && !IsNil(v)
}

// IsProducer reports whether v is a non-nil func() string.
func IsProducer(v any) bool {
	fn, ok := v.(func() string)
	return ok && fn != nil
}

// IsSequence reports whether v is a slice or array other than []byte.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// ConvertEach converts every element of the slice or array v, in order.
func ConvertEach(c convert.Converter[Node], v any) ([]Node, error) {
	rv := reflect.ValueOf(v)
	nodes := make([]Node, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		n, err := c.Convert(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// Stringify returns the text form of a value: []byte as its string,
// anything else through fmt.Sprint.
func Stringify(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(v)
}
