package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/mirror/internal/demo"
	"github.com/vango-dev/mirror/pkg/render"
)

func renderCmd(a *app) *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the example document",
		Long: `Render the example document: an html element with a head holding
the bootstrap scripts of every element and a body holding a greeting.

With --metrics the render metrics are printed after the document in the
Prometheus text format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, showMetrics)
		},
	}

	cmd.Flags().BoolVarP(&showMetrics, "metrics", "m", false, "print render metrics after the document")

	return cmd
}

func (a *app) render(cmd *cobra.Command, showMetrics bool) error {
	registry := prometheus.NewRegistry()
	renderer, err := render.NewRenderer(
		render.WithNamespace(a.config.Metrics.Namespace),
		render.WithRegisterer(registry),
		render.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	doc := demo.New(a.config.Builder())
	out := cmd.OutOrStdout()
	if err := renderer.RenderTo(cmd.Context(), out, "document", doc.Root); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if showMetrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// writeMetrics writes every gathered metric family in the text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
