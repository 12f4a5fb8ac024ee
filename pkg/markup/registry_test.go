package markup

import (
	"errors"
	"testing"

	"github.com/vango-dev/mirror/pkg/convert"
	"github.com/vango-dev/mirror/pkg/render"
)

type point struct{ X, Y int }

type greeter struct{ name string }

func (g *greeter) Render() string { return "hi " + g.name }

func TestDefaultConversion(t *testing.T) {
	var nilPtr *greeter
	var nilMap map[string]int
	g := &greeter{name: "bob"}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"int", 42, "42"},
		{"bool", false, "false"},
		{"float", 1.5, "1.5"},
		{"struct", point{1, 2}, "{1 2}"},
		{"bytes", []byte("raw"), "raw"},
		{"nil", nil, ""},
		{"nil pointer", nilPtr, ""},
		{"nil map", nilMap, ""},
		{"node", NewText("node"), "node"},
		{"renderable", g, "hi bob"},
		{"render text", render.Text("plain"), "plain"},
		{"producer", func() string { return "made" }, "made"},
		{"slice", []any{"a", 1, nil, []string{"b", "c"}}, "a1bc"},
		{"array", [2]int{3, 4}, "34"},
		{"nil slice", []string(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Registry().Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert(%v): %v", tt.in, err)
			}
			if got := n.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConversionIsLazyForRenderables(t *testing.T) {
	g := &greeter{name: "a"}
	n := Registry().MustConvert(g)
	g.name = "b"

	if got := n.Render(); got != "hi b" {
		t.Errorf("Render() = %q, want current value", got)
	}
}

func TestConversionKinds(t *testing.T) {
	reg := Registry()

	if _, ok := reg.MustConvert([]int{1}).(*List); !ok {
		t.Error("slices should convert to *List")
	}
	if _, ok := reg.MustConvert("x").(Text); !ok {
		t.Error("strings should convert to Text")
	}
	if _, ok := reg.MustConvert(func() string { return "" }).(LazyText); !ok {
		t.Error("producers should convert to LazyText")
	}
	n := NewText("same")
	if got := reg.MustConvert(n); got != Node(n) {
		t.Error("nodes should pass through unchanged")
	}
}

func TestNewRegistryIsIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Replace(RuleText, convert.Rule[Node]{
		Name:  RuleText,
		Match: func(any) bool { return true },
		Convert: func(_ convert.Converter[Node], _ any) (Node, error) {
			return NewText("?"), nil
		},
	})

	if got := reg.MustConvert(1).Render(); got != "?" {
		t.Errorf("replaced rule = %q", got)
	}
	if got := Registry().MustConvert(1).Render(); got != "1" {
		t.Errorf("shared registry changed: %q", got)
	}
	if reg.Family() != "markup" {
		t.Errorf("Family() = %q", reg.Family())
	}
}

func TestConversionDepthGuard(t *testing.T) {
	loop := []any{nil}
	loop[0] = loop

	_, err := NewRegistry().Convert(loop)
	var ce *convert.ConversionError
	if !errors.As(err, &ce) || !ce.TooDeep() {
		t.Fatalf("err = %v, want depth error", err)
	}
}

func TestPredicates(t *testing.T) {
	var nilFn func() string

	tests := []struct {
		name string
		fn   func(any) bool
		in   any
		want bool
	}{
		{"IsNil nil", IsNil, nil, true},
		{"IsNil nil func", IsNil, nilFn, true},
		{"IsNil nil slice", IsNil, []int(nil), false},
		{"IsNil zero int", IsNil, 0, false},
		{"IsProducer nil func", IsProducer, nilFn, false},
		{"IsProducer func", IsProducer, func() string { return "" }, true},
		{"IsSequence bytes", IsSequence, []byte("x"), false},
		{"IsSequence array", IsSequence, [1]int{}, true},
		{"IsSequence nil", IsSequence, nil, false},
		{"IsRenderable text", IsRenderable, render.Text(""), true},
		{"IsRenderable nil pointer", IsRenderable, (*greeter)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
