package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscsym/internal/symgen"
	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

func newGenCommand(a *app) *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go constants from a symbol manifest",
		Long: `Resolve every name listed in a YAML manifest and write a gofmt'ed Go file
of typed constants. Unknown names are reported as manifest:line:col errors.

With --check nothing is written: the command fails with a diff when the file
on disk is out of date.

Examples:
  tscsym gen
  tscsym gen -f internal/cnodes/symbols.yaml --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if manifestPath == "" {
				manifestPath = a.cfg.Gen.Manifest
			}

			if outputPath == "" {
				outputPath = a.cfg.Gen.Output
			}

			return runGen(a, cmd.OutOrStdout(), cmd.ErrOrStderr(), manifestPath, outputPath, check)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "", "symbol manifest (default from config: gen.manifest)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "override the manifest's output path")
	cmd.Flags().BoolVar(&check, "check", false, "fail if the generated file is out of date")

	return cmd
}

func runGen(a *app, stdout, stderr io.Writer, manifestPath, outputPath string, check bool) error {
	m, err := symgen.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	src, err := symgen.Generate(m, symbols.New(a.table))
	if err != nil {
		return err
	}

	out := m.OutputPath()
	if outputPath != "" {
		out = outputPath
	}

	if check {
		diff, checkErr := symgen.Check(out, src)
		if checkErr != nil {
			printDiff(stderr, diff)

			return checkErr
		}

		a.logger.Info("generated file is up to date", "path", out)

		return nil
	}

	err = symgen.Write(out, src)
	if err != nil {
		return err
	}

	constants := len(m.Kinds) + len(m.Keywords) + len(m.Fields)
	a.logger.Debug("generated constants", "manifest", manifestPath, "path", out, "constants", constants)

	fmt.Fprintf(stdout, "wrote %s (%d constants, %s)\n", out, constants, humanize.Bytes(uint64(len(src))))

	return nil
}

func printDiff(w io.Writer, diff string) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	header := color.New(color.Bold)

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			header.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			added.Fprint(w, line)
		case strings.HasPrefix(line, "-"):
			removed.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
