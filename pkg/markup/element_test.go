package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/mirror/pkg/convert"
)

func attrKeys(e *Element) []string {
	var keys []string
	for _, a := range e.Attributes() {
		keys = append(keys, a.Key)
	}
	return keys
}

func TestElementRender(t *testing.T) {
	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{"no parameters", New(), "<></>"},
		{"tag only", New(Tag("div")), "<div></div>"},
		{"nil tag", New(Tag(nil)), "<></>"},
		{"tag from node", New(Tag(NewText("p"))), "<p></p>"},
		{"attributes only", New(Attributes(ID("a"))), `< id="a"></>`},
		{"children only", New(Children("x")), "<>x</>"},
		{"empty children", New(Tag("ul"), Children()), "<ul></ul>"},
		{"nil child", New(Tag("b"), Children(nil)), "<b></b>"},
		{
			"all parameters",
			New(Tag("span"), Attributes(ID("heading"), Class("a", "b")), Children("Hello, World!")),
			`<span id="heading" class="a b">Hello, World!</span>`,
		},
		{
			"nested",
			Html(ID("root"), Body(Span("hi"), Span(1, 2))),
			`<html id="root"><body><span>hi</span><span>12</span></body></html>`,
		},
		{
			"void tags get closing tags",
			Input(Type("text"), Disabled()),
			`<input type="text" disabled></input>`,
		},
		{
			"no escaping",
			Div(Prop("title", `"q"`), "<b>&</b>"),
			`<div title=""q""><b>&</b></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			var b strings.Builder
			if err := tt.el.RenderTo(&b); err != nil {
				t.Fatalf("RenderTo: %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("RenderTo wrote %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestAttributeValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil is bare", nil, `<a k></a>`},
		{"empty string is bare", "", `<a k></a>`},
		{"false is a value", false, `<a k="false"></a>`},
		{"zero is a value", 0, `<a k="0"></a>`},
		{"string", "v", `<a k="v"></a>`},
		{"node", NewText("n"), `<a k="n"></a>`},
		{"producer", func() string { return "p" }, `<a k="p"></a>`},
		{"empty node is bare", NewText(""), `<a k></a>`},
		{"empty producer is bare", func() string { return "" }, `<a k></a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Tag("a"), Attributes(Prop("k", tt.value)))
			if got := e.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributeBare(t *testing.T) {
	e := New(Attributes(Bare("hidden"), Prop("id", "x")))

	a, ok := e.Lookup("hidden")
	if !ok || !a.Bare() || a.Render() != "hidden" {
		t.Errorf("hidden = %+v, ok=%v", a, ok)
	}
	a, ok = e.Lookup("id")
	if !ok || a.Bare() || a.Render() != `id="x"` {
		t.Errorf("id = %+v, ok=%v", a, ok)
	}
	if _, ok := e.Lookup("missing"); ok {
		t.Error("Lookup(missing) found an attribute")
	}
}

func TestChildrenOrder(t *testing.T) {
	e := New(Tag("div"), Children("a", []any{"b", []string{"c", "d"}}, nil, []byte("e"), Span("f")))

	if got := e.Render(); got != "<div>abcde<span>f</span></div>" {
		t.Errorf("Render() = %q", got)
	}
	if n := e.Children().Len(); n != 5 {
		t.Errorf("Children().Len() = %d, want 5", n)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	e := Div(ID("x"), Span("a"), "b")
	first := e.Render()
	for i := 0; i < 3; i++ {
		if got := e.Render(); got != first {
			t.Fatalf("render %d = %q, want %q", i, got, first)
		}
	}
}

func TestRenderSeesLazyChanges(t *testing.T) {
	count := 0
	e := Span(func() string {
		count++
		return strings.Repeat("!", count)
	})

	if got := e.Render(); got != "<span>!</span>" {
		t.Errorf("first = %q", got)
	}
	if got := e.Render(); got != "<span>!!</span>" {
		t.Errorf("second = %q", got)
	}
}

func TestReconfigure(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		want      string
		wantAttrs []string
	}{
		{
			"nothing changes",
			nil,
			`<div id="a" class="b">x</div>`,
			[]string{"id", "class"},
		},
		{
			"tag only",
			[]Option{Tag("p")},
			`<p id="a" class="b">x</p>`,
			[]string{"id", "class"},
		},
		{
			"tag reset to empty",
			[]Option{Tag(nil)},
			`< id="a" class="b">x</>`,
			[]string{"id", "class"},
		},
		{
			"children replaced",
			[]Option{Children("y", "z")},
			`<div id="a" class="b">yz</div>`,
			[]string{"id", "class"},
		},
		{
			"children cleared",
			[]Option{Children()},
			`<div id="a" class="b"></div>`,
			[]string{"id", "class"},
		},
		{
			"attributes merge in place and append",
			[]Option{Attributes(Lang("en"), ID("c"))},
			`<div id="c" class="b" lang="en">x</div>`,
			[]string{"id", "class", "lang"},
		},
		{
			"empty attribute merge",
			[]Option{Attributes()},
			`<div id="a" class="b">x</div>`,
			[]string{"id", "class"},
		},
		{
			"reset",
			[]Option{NoAttributes()},
			`<div>x</div>`,
			nil,
		},
		{
			"reset then merge",
			[]Option{NoAttributes(), Attributes(Lang("en"))},
			`<div lang="en">x</div>`,
			[]string{"lang"},
		},
		{
			"merge then reset still clears first",
			[]Option{Attributes(Lang("en")), NoAttributes()},
			`<div lang="en">x</div>`,
			[]string{"lang"},
		},
		{
			"map merge is sorted",
			[]Option{AttributeMap(map[string]any{"z": 1, "m": "", "id": "q"})},
			`<div id="q" class="b" m z="1">x</div>`,
			[]string{"id", "class", "m", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Div(ID("a"), Class("b"), "x")
			if err := e.Apply(tt.opts...); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := e.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(tt.wantAttrs, attrKeys(e)); diff != "" {
				t.Errorf("attribute keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetChains(t *testing.T) {
	e := New().Set(Tag("ul")).Set(Children(Li("a"), Li("b")))
	if got := e.Render(); got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("Render() = %q", got)
	}
}

func nodesOnly() *convert.Registry[Node] {
	return convert.New("strict", Rules()[0])
}

func TestNewWithReportsConversionErrors(t *testing.T) {
	e, err := NewWith(nodesOnly(), Tag(NewText("div")))
	if !convert.IsConversionError(err) {
		t.Fatalf("err = %v, want ConversionError", err)
	}
	if e != nil {
		t.Error("NewWith returned an element on error")
	}
}

func TestApplyLeavesElementOnError(t *testing.T) {
	reg := NewRegistry()
	e, err := NewWith(reg, Tag("div"), Attributes(ID("a")), Children("x"))
	if err != nil {
		t.Fatalf("NewWith: %v", err)
	}

	reg.Replace(RuleText, convert.Rule[Node]{
		Name:  RuleText,
		Match: func(v any) bool {
			_, ok := v.(int)
			return !ok
		},
		Convert: func(_ convert.Converter[Node], v any) (Node, error) {
			return NewText(Stringify(v)), nil
		},
	})

	err = e.Apply(Tag("p"), Attributes(Lang("en")), Children("ok", 1))
	if !convert.IsConversionError(err) {
		t.Fatalf("Apply err = %v, want ConversionError", err)
	}
	if got := e.Render(); got != `<div id="a">x</div>` {
		t.Errorf("element changed on failed Apply: %q", got)
	}

	err = e.Apply(Attributes(Prop("n", 1)), Tag("p"))
	if err == nil {
		t.Fatal("bad attribute value should fail")
	}
	if got := e.Render(); got != `<div id="a">x</div>` {
		t.Errorf("element changed on failed Apply: %q", got)
	}
}

func TestSetPanicsOnConversionError(t *testing.T) {
	e := New()
	defer func() {
		err, ok := recover().(error)
		if !ok || !convert.IsConversionError(err) {
			t.Fatalf("recover() = %v, want ConversionError", err)
		}
	}()
	e.registry = convert.New[Node]("empty")
	e.Set(Tag("x"))
	t.Fatal("Set should have panicked")
}

func TestPin(t *testing.T) {
	e := Div(Class("c"), "x")
	e.Pin("id", NewText("fixed"))

	if got := e.Render(); got != `<div class="c" id="fixed">x</div>` {
		t.Errorf("after Pin = %q", got)
	}

	e.Set(Attributes(ID("other"), Lang("en")))
	if got := e.Render(); got != `<div class="c" id="fixed" lang="en">x</div>` {
		t.Errorf("pinned value overwritten: %q", got)
	}

	e.Set(NoAttributes())
	if got := e.Render(); got != `<div id="fixed">x</div>` {
		t.Errorf("pinned value lost on reset: %q", got)
	}

	e.Pin("id", NewText("moved"))
	if got := e.Render(); got != `<div id="moved">x</div>` {
		t.Errorf("re-pin = %q", got)
	}
}

func TestAccessors(t *testing.T) {
	e := Span(ID("a"), "x")

	if e.Tag().Render() != "span" {
		t.Errorf("Tag() = %q", e.Tag().Render())
	}
	if e.Children().Render() != "x" {
		t.Errorf("Children() = %q", e.Children().Render())
	}
	if e.Registry() != Registry() {
		t.Error("Registry() should be the default registry")
	}

	attrs := e.Attributes()
	attrs[0].Key = "changed"
	if _, ok := e.Lookup("id"); !ok {
		t.Error("Attributes() should return a copy")
	}
}

func TestElOptionsApplyAfterArguments(t *testing.T) {
	e := El("div", "child", Tag("section"), Children("replaced"), []Attr{ID("a"), Lang("en")})
	if got := e.Render(); got != `<section id="a" lang="en">replaced</section>` {
		t.Errorf("Render() = %q", got)
	}
}

func TestZeroElement(t *testing.T) {
	var e Element
	if got := e.Render(); got != "<></>" {
		t.Errorf("Render() = %q, want <></>", got)
	}
	if e.Registry() != Registry() {
		t.Error("zero Element should use the default registry")
	}

	e.Set(Tag("b"), Attributes(Prop("k", 1)), Children("x"))
	if got := e.String(); got != `<b k="1">x</b>` {
		t.Errorf("String() = %q", got)
	}
}
