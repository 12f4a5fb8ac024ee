// Package render defines the text-production capability shared by every
// node in a mirror tree.
//
// # Core Types
//
// Renderable is the single operation every node supports. Text is fixed
// text; Lazy and Func call a producer on every Render, so the text is
// computed at render time rather than at construction time.
//
// Streamer is the optional capability of writing output directly to an
// io.Writer. Markup nodes implement it so large documents need not be
// materialised as one string.
//
// # Escaping
//
// Nodes never escape what they render. Escape and EscapeAttr are provided
// for callers that hand untrusted text to a tree:
//
//	markup.Span(render.Escape(userInput))
//
// # Instrumented Rendering
//
// Renderer renders any Renderable for a context, recording Prometheus
// metrics, an OpenTelemetry span and a structured log record per call:
//
//	r, err := render.NewRenderer(
//	    render.WithRegisterer(reg),
//	    render.WithLogger(logger),
//	)
//	html, err := r.Render(ctx, "page", doc)
//
// Metrics collected:
//   - mirror_renders_total: Counter of renders by name and status
//   - mirror_render_bytes: Histogram of output size
//   - mirror_render_duration_seconds: Histogram of render duration
package render
