package script

import (
	"github.com/vango-dev/mirror/pkg/convert"
	"github.com/vango-dev/mirror/pkg/markup"
	"github.com/vango-dev/mirror/pkg/render"
)

var defaultRegistry = NewRegistry()

// Registry returns the shared script registry.
func Registry() *convert.Registry[markup.Node] {
	return defaultRegistry
}

// NewRegistry returns the markup chain cloned as family "script", with each
// rule replaced so that conversion produces script nodes:
//
//	script node                 -> itself
//	markup node or Renderable   -> LazyText bound to its Render
//	func() string               -> LazyText
//	nil                         -> empty Text
//	slice or array              -> List, each element converted
//	anything else               -> Text of its string form
func NewRegistry() *convert.Registry[markup.Node] {
	reg := markup.NewRegistry().Clone("script")
	for _, rule := range rules() {
		reg.Replace(rule.Name, rule)
	}
	return reg
}

func rules() []convert.Rule[markup.Node] {
	return []convert.Rule[markup.Node]{
		{
			Name: markup.RuleNode,
			Match: func(v any) bool {
				_, ok := v.(Node)
				return ok && !markup.IsNil(v)
			},
			Convert: func(_ convert.Converter[markup.Node], v any) (markup.Node, error) {
				return v.(Node), nil
			},
		},
		{
			Name:  markup.RuleRenderable,
			Match: markup.IsRenderable,
			Convert: func(_ convert.Converter[markup.Node], v any) (markup.Node, error) {
				return NewLazyText(v.(render.Renderable).Render), nil
			},
		},
		{
			Name:  markup.RuleProducer,
			Match: markup.IsProducer,
			Convert: func(_ convert.Converter[markup.Node], v any) (markup.Node, error) {
				return NewLazyText(v.(func() string)), nil
			},
		},
		{
			Name:  markup.RuleNil,
			Match: markup.IsNil,
			Convert: func(_ convert.Converter[markup.Node], _ any) (markup.Node, error) {
				return NewText(""), nil
			},
		},
		{
			Name:  markup.RuleSequence,
			Match: markup.IsSequence,
			Convert: func(c convert.Converter[markup.Node], v any) (markup.Node, error) {
				nodes, err := markup.ConvertEach(c, v)
				if err != nil {
					return nil, err
				}
				list := make([]Node, len(nodes))
				for i, n := range nodes {
					list[i] = AsNode(n)
				}
				return NewList(list...), nil
			},
		},
		{
			Name:  markup.RuleText,
			Match: func(any) bool { return true },
			Convert: func(_ convert.Converter[markup.Node], v any) (markup.Node, error) {
				return NewText(markup.Stringify(v)), nil
			},
		},
	}
}
