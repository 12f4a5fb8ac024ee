package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/mirror/internal/errors"
)

func explainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [code]",
		Short: "Explain an error code",
		Long: `Print the category, message and explanation of an error code.
Without a code, list every code mirror can report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "%s  %-10s  %s\n", code, t.Category, t.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.New("M201").
					WithDetail(fmt.Sprintf("%q is not an error code.", args[0])).
					WithSuggestion("Run 'mirror explain' to list the codes")
			}
			fmt.Fprintf(out, "%s (%s): %s\n\n%s\n", code, t.Category, t.Message, t.Detail)
			return nil
		},
	}

	return cmd
}
