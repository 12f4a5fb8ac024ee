package render

import "io"

// Renderable is anything that can produce text.
type Renderable interface {
	Render() string
}

// Streamer is implemented by renderables that can write their output
// directly to a writer instead of building a string first.
type Streamer interface {
	RenderTo(w io.Writer) error
}

// Text is a fixed piece of text.
type Text string

// Render implements Renderable.
func (t Text) Render() string {
	return string(t)
}

// Lazy produces its text by calling fn on every Render.
// The producer runs at render time, never at construction time, and a
// panicking producer propagates to the caller.
type Lazy struct {
	fn func() string
}

// NewLazy wraps a zero-argument producer.
func NewLazy(fn func() string) *Lazy {
	return &Lazy{fn: fn}
}

// Render implements Renderable.
func (l *Lazy) Render() string {
	return l.fn()
}

// Func adapts a plain producer function into a Renderable.
type Func func() string

// Render implements Renderable.
func (f Func) Render() string {
	return f()
}
