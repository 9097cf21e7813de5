// Package main provides the entry point for the tscsym CLI tool.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscsym/pkg/config"
	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
	"github.com/Sumatoshi-tech/tscsym/pkg/observability"
	"github.com/Sumatoshi-tech/tscsym/pkg/version"
)

const (
	binaryName  = "tscsym"
	colorAlways = "always"
	colorNever  = "never"
	formatJSON  = "json"
)

// app carries the state shared by all subcommands once the root has run its
// persistent pre-run.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
	table  *grammar.Table
}

func main() {
	version.InitBinaryVersion()

	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   binaryName,
		Short: "tscsym - tree-sitter-c symbol resolver",
		Long: `tscsym resolves tree-sitter-c node kind, keyword and field names to the
numeric identifiers of the linked grammar.

Commands:
  resolve   Resolve names to identifiers
  list      List the names of a namespace
  gen       Generate Go constants from a symbol manifest
  snapshot  Dump the grammar table as YAML
  walk      Walk a C source file using resolved identifiers`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./tscsym.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newResolveCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newGenCommand(a))
	rootCmd.AddCommand(newSnapshotCommand(a))
	rootCmd.AddCommand(newWalkCommand(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	switch {
	case a.noColor || cfg.Output.Color == colorNever:
		color.NoColor = true //nolint:reassign // intentional override of library global
	case cfg.Output.Color == colorAlways:
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	level, err := a.logLevel()
	if err != nil {
		return err
	}

	table, err := loadTable(cfg.Grammar.Snapshot)
	if err != nil {
		return err
	}

	a.table = table
	a.logger = observability.NewLogger(observability.Config{
		Output:  cmd.ErrOrStderr(),
		Service: binaryName,
		Grammar: table.Name(),
		Level:   level,
		JSON:    cfg.Logging.Format == formatJSON,
	})

	a.logger.Debug("grammar loaded",
		"symbols", table.SymbolCount(),
		"fields", table.FieldCount(),
		"snapshot", cfg.Grammar.Snapshot,
	)

	return nil
}

func (a *app) logLevel() (slog.Level, error) {
	switch {
	case a.verbose && a.quiet:
		return 0, errVerboseQuiet
	case a.verbose:
		return slog.LevelDebug, nil
	case a.quiet:
		return slog.LevelError, nil
	default:
		return observability.ParseLevel(a.cfg.Logging.Level)
	}
}

var errVerboseQuiet = errors.New("--verbose and --quiet are mutually exclusive")

// loadTable returns the snapshot table when path is set and the linked
// tree-sitter-c table otherwise.
func loadTable(path string) (*grammar.Table, error) {
	if path == "" {
		return grammar.C(), nil
	}

	table, err := grammar.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("load grammar snapshot %s: %w", path, err)
	}

	return table, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String(binaryName))
		},
	}
}
