package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/mirror/internal/config"
	"github.com/vango-dev/mirror/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by every command, set up before a command runs.
type app struct {
	configPath  string
	logLevel    string
	noColor     bool
	errorFormat string

	config *config.Config
	logger *slog.Logger
}

// Error output formats.
const (
	errorFormatFull    = "full"
	errorFormatCompact = "compact"
	errorFormatJSON    = "json"
)

func main() {
	a := &app{}
	if err := a.rootCmd().Execute(); err != nil {
		a.printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mirror",
		Short: "Render markup trees that mirror themselves on the client",
		Long: `mirror renders a markup tree whose elements install a JavaScript
mirror of themselves in the page.

Every live element gets a stable id and a bootstrap script that registers
a render function under window["<namespace><id>"]. The render function
rebuilds the element's markup from the live document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: ./mirror.yaml or ./mirror.json if present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored error output")
	flags.StringVar(&a.errorFormat, "error-format", "", "error output: full, compact or json (default: json when log.format is json, else full)")

	rootCmd.AddCommand(
		renderCmd(a),
		bootstrapCmd(a),
		explainCmd(),
		initCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	if a.noColor {
		errors.DisableColors()
	}
	switch a.errorFormat {
	case "", errorFormatFull, errorFormatCompact, errorFormatJSON:
	default:
		format := a.errorFormat
		a.errorFormat = ""
		return errors.New("M201").
			WithDetail(fmt.Sprintf("Unknown error format %q.", format)).
			WithSuggestion("Use full, compact or json")
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.config = cfg

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(stderr, opts)
	} else {
		handler = slog.NewTextHandler(stderr, opts)
	}
	a.logger = slog.New(handler)
	a.logger.Debug("configuration loaded",
		"path", cfg.Path(),
		"namespace", cfg.Namespace,
		"identities", cfg.Identities,
	)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}
	if path, ok := config.Find(wd); ok {
		return config.LoadFile(path)
	}
	return config.New(), nil
}

// printError writes err to w in the selected error format. Without
// --error-format, JSON logs get JSON errors.
func (a *app) printError(w io.Writer, err error) {
	e := errors.FromError(err, "M201")

	format := a.errorFormat
	if format == "" {
		format = errorFormatFull
		if a.config != nil && a.config.Log.Format == "json" {
			format = errorFormatJSON
		}
	}

	switch format {
	case errorFormatJSON:
		fmt.Fprintln(w, e.FormatJSON())
	case errorFormatCompact:
		fmt.Fprintln(w, e.FormatCompact())
	default:
		errors.Print(w, e)
	}
}
