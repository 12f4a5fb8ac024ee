package markup

// El creates an element named tag with the default registry.
// Arguments can be: nil, Attr, []Attr, Option, or any child value.
// Nil arguments are skipped so attributes can be conditional.
func El(tag string, args ...any) *Element {
	var (
		attrs    []Attr
		opts     []Option
		children []any
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			attrs = append(attrs, v)
		case []Attr:
			attrs = append(attrs, v...)
		case Option:
			opts = append(opts, v)
		default:
			children = append(children, v)
		}
	}

	all := []Option{Tag(tag), Attributes(attrs...), Children(children...)}
	return New(append(all, opts...)...)
}

// Document structure

func Html(args ...any) *Element { return El("html", args...) }

func Head(args ...any) *Element { return El("head", args...) }

func Body(args ...any) *Element { return El("body", args...) }

func Title(args ...any) *Element { return El("title", args...) }

func Script(args ...any) *Element { return El("script", args...) }

func Style(args ...any) *Element { return El("style", args...) }

// Content

func Div(args ...any) *Element { return El("div", args...) }

func Span(args ...any) *Element { return El("span", args...) }

func P(args ...any) *Element { return El("p", args...) }

func A(args ...any) *Element { return El("a", args...) }

func Ul(args ...any) *Element { return El("ul", args...) }

func Li(args ...any) *Element { return El("li", args...) }

// Forms

func Button(args ...any) *Element { return El("button", args...) }

// Input renders with a closing tag like every other element.
func Input(args ...any) *Element { return El("input", args...) }
