package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

func newListCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list kinds|keywords|fields",
		Short: "List the resolvable names of a namespace",
		Long: `List the names of a namespace with their identifiers.

Only names that resolve are listed: when several symbols share a name the
first one wins. Use --all to list hidden and shadowed symbols too.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"kinds", "keywords", "fields"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseNamespace(args[0])
			if err != nil {
				return err
			}

			return runList(a.table, cmd.OutOrStdout(), ns, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include hidden and shadowed symbols")

	return cmd
}

func runList(t *grammar.Table, w io.Writer, ns symbols.Namespace, all bool) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	var rows int

	if ns == symbols.NamespaceField {
		tbl.AppendHeader(table.Row{"ID", "FIELD"})

		for _, f := range t.Fields() {
			tbl.AppendRow(table.Row{f.ID, f.Name})
			rows++
		}
	} else {
		tbl.AppendHeader(table.Row{"ID", "SYMBOL", "NAME", "KIND"})

		named := ns == symbols.NamespaceKind
		listed := make(map[string]bool)

		for _, sym := range t.Symbols() {
			resolvable := sym.Kind.Resolvable() && sym.Kind.Named() == named

			// Only the first symbol of a name resolves; later ones are shadowed.
			first := resolvable && !listed[sym.Name]
			if resolvable {
				listed[sym.Name] = true
			}

			if !all && !first {
				continue
			}

			tbl.AppendRow(table.Row{sym.Public, sym.ID, sym.Name, sym.Kind})
			rows++
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %s %s", humanize.Comma(int64(rows)), plural(ns))})
	tbl.Render()

	return nil
}

func plural(ns symbols.Namespace) string {
	switch ns {
	case symbols.NamespaceKind:
		return "kinds"
	case symbols.NamespaceKeyword:
		return "keywords"
	case symbols.NamespaceField:
		return "fields"
	default:
		return "names"
	}
}
