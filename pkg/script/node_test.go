package script

import (
	"testing"

	"github.com/vango-dev/mirror/pkg/convert"
	"github.com/vango-dev/mirror/pkg/markup"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want JS
	}{
		{"", `""`},
		{"Hello, World!", `"Hello, World!"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\nb", `"a\nb"`},
		{"</script>", `"\u003c/script\u003e"`},
		{`back\slash`, `"back\\slash"`},
	}

	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTextNode(t *testing.T) {
	n := NewText("hi")

	if n.Render() != "hi" {
		t.Errorf("Render() = %q", n.Render())
	}
	if got := n.RenderFn(); got != `() => "hi"` {
		t.Errorf("RenderFn() = %s", got)
	}
	if got := n.Handle(); got != `{render: () => "hi"}` {
		t.Errorf("Handle() = %s", got)
	}
}

func TestLazyTextRenderFnSnapshotsCurrentRender(t *testing.T) {
	value := "a"
	n := NewLazyText(func() string { return value })

	if got := n.RenderFn(); got != `() => "a"` {
		t.Errorf("RenderFn() = %s", got)
	}
	value = "b"
	if got := n.RenderFn(); got != `() => "b"` {
		t.Errorf("RenderFn() after change = %s", got)
	}
	if got := n.Handle(); got != `{render: () => "b"}` {
		t.Errorf("Handle() = %s", got)
	}
}

func TestList(t *testing.T) {
	l := NewList(NewText("a"), NewText("b"))

	if l.Render() != "ab" {
		t.Errorf("Render() = %q", l.Render())
	}
	want := JS(`function () { return [{render: () => "a"}, {render: () => "b"}].map((h) => h.render()).join(""); }`)
	if got := l.RenderFn(); got != want {
		t.Errorf("RenderFn() =\n%s\nwant\n%s", got, want)
	}
	if got := NewList().RenderFn(); got != `function () { return [].map((h) => h.render()).join(""); }` {
		t.Errorf("empty RenderFn() = %s", got)
	}
	if got := l.Handle(); got != "{render: "+want+"}" {
		t.Errorf("Handle() = %s", got)
	}
}

func TestRegistryProducesScriptNodes(t *testing.T) {
	live := NewBuilder(WithIdentities(NewSequence("n"))).Live(markup.Tag("b"))

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"number", 7, "7"},
		{"nil", nil, ""},
		{"markup text", markup.NewText("m"), "m"},
		{"markup element", markup.Span("s"), "<span>s</span>"},
		{"producer", func() string { return "p" }, "p"},
		{"sequence", []any{"a", []int{1, 2}}, "a12"},
		{"live", live, `<b id="n1"></b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Registry().Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if _, ok := n.(Node); !ok {
				t.Fatalf("Convert(%v) = %T, not a script node", tt.in, n)
			}
			if got := n.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistryKinds(t *testing.T) {
	reg := Registry()

	if _, ok := reg.MustConvert(markup.NewText("m")).(LazyText); !ok {
		t.Error("markup nodes should be wrapped as LazyText")
	}
	if _, ok := reg.MustConvert([]string{"a"}).(*List); !ok {
		t.Error("sequences should convert to *List")
	}
	n := NewText("same")
	if got := reg.MustConvert(n); got != markup.Node(n) {
		t.Error("script nodes should pass through")
	}
	if reg.Family() != "script" {
		t.Errorf("Family() = %q", reg.Family())
	}
	if _, ok := markup.Registry().MustConvert("x").(Text); ok {
		t.Error("markup registry should be unaffected")
	}
}

func TestRegistryRulesKeepMarkupOrder(t *testing.T) {
	var names []string
	for _, r := range NewRegistry().Rules() {
		names = append(names, r.Name)
	}
	var want []string
	for _, r := range markup.Rules() {
		want = append(want, r.Name)
	}
	if len(names) != len(want) {
		t.Fatalf("rules = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("rule %d = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestAsNode(t *testing.T) {
	s := NewText("s")
	if AsNode(s) != Node(s) {
		t.Error("script nodes should be returned unchanged")
	}
	n := AsNode(markup.NewText("m"))
	if got := n.RenderFn(); got != `() => "m"` {
		t.Errorf("RenderFn() = %s", got)
	}
}

func TestEmptyRegistryFailsLiveConstruction(t *testing.T) {
	b := NewBuilder(WithRegistry(convert.New[markup.Node]("empty")))

	if _, err := b.LiveWith(markup.Tag("div")); !convert.IsConversionError(err) {
		t.Fatalf("LiveWith err = %v, want ConversionError", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Live should panic")
		}
	}()
	b.Live()
}
