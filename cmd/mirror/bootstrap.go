package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/mirror/internal/demo"
	"github.com/vango-dev/mirror/internal/errors"
	"github.com/vango-dev/mirror/pkg/script"
)

func bootstrapCmd(a *app) *cobra.Command {
	var node string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Print the bootstrap scripts of the example document",
		Long: `Print the bootstrap script of every live element of the example
document, one per line in document order, or only the script of the
element whose id is given with --node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := demo.New(a.config.Builder())

			bootstraps := script.Bootstraps(doc.Root)
			if node != "" {
				l, ok := doc.Find(node)
				if !ok {
					ids := make([]string, len(bootstraps))
					for i, b := range bootstraps {
						ids[i] = b.Owner().Identity()
					}
					return errors.New("M201").
						WithDetail(fmt.Sprintf("No element has the id %q.", node)).
						WithSuggestion(fmt.Sprintf("Use one of %q", ids))
				}
				bootstraps = []*script.Bootstrap{l.Bootstrap()}
			}

			out := cmd.OutOrStdout()
			for _, b := range bootstraps {
				fmt.Fprintln(out, b.Render())
			}
			a.logger.Debug("bootstraps printed", "count", len(bootstraps))
			return nil
		},
	}

	cmd.Flags().StringVarP(&node, "node", "n", "", "id of the element to print")

	return cmd
}
