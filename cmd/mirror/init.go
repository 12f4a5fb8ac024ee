package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/mirror/internal/config"
	"github.com/vango-dev/mirror/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var name string
			switch format {
			case "yaml":
				name = config.YAMLFileName
			case "json":
				name = config.JSONFileName
			default:
				return errors.New("M201").
					WithDetail(fmt.Sprintf("Unknown format %q.", format)).
					WithSuggestion(`Use --format yaml or --format json`)
			}

			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New("M201").
					WithDetail(path + " already exists.").
					WithSuggestion("Pass --force to overwrite it")
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "file format: yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
