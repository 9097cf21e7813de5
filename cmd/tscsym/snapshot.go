package main

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
)

func newSnapshotCommand(a *app) *cobra.Command {
	var (
		outputPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the grammar table as YAML or JSON",
		Long: `Write every symbol and field of the grammar as a snapshot. Point
grammar.snapshot at the file to resolve against it instead of the linked
grammar. Files ending in .json are written as JSON, anything else as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outputPath != "" && outputPath != "-" {
				return grammar.SaveSnapshot(outputPath, a.table)
			}

			codec, err := grammar.CodecByName(format)
			if err != nil {
				return err
			}

			return grammar.EncodeSnapshot(cmd.OutOrStdout(), a.table, codec)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "yaml", "stdout format: yaml or json")

	return cmd
}
