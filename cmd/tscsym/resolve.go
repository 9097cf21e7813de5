package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

const (
	nsKind    = "kind"
	nsKeyword = "keyword"
	nsField   = "field"
)

// ErrUnresolved is returned when at least one name did not resolve.
var ErrUnresolved = errors.New("unresolved names")

var errUnknownNamespaceArg = errors.New("namespace must be one of kind, keyword, field")

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve kind|keyword|field NAME...",
		Short: "Resolve names to grammar identifiers",
		Long: `Resolve node kind, keyword or field names against the grammar and print
one "name<TAB>id" line per name. Every unknown name is reported before the
command exits with a non-zero status.

Examples:
  tscsym resolve kind function_definition identifier
  tscsym resolve keyword if else while
  tscsym resolve field declarator body`,
		Args:      cobra.MinimumNArgs(2), //nolint:mnd // namespace and at least one name
		ValidArgs: []string{nsKind, nsKeyword, nsField},
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := parseNamespace(args[0])
			if err != nil {
				return err
			}

			return runResolve(a, cmd.OutOrStdout(), cmd.ErrOrStderr(), ns, args[1:])
		},
	}
}

func parseNamespace(s string) (symbols.Namespace, error) {
	switch s {
	case nsKind, "kinds":
		return symbols.NamespaceKind, nil
	case nsKeyword, "keywords":
		return symbols.NamespaceKeyword, nil
	case nsField, "fields":
		return symbols.NamespaceField, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownNamespaceArg, s)
	}
}

func runResolve(a *app, stdout, stderr io.Writer, ns symbols.Namespace, names []string) error {
	reqs := make([]symbols.Request, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, symbols.Request{Name: name, Namespace: ns})
	}

	results, resolveErr := symbols.New(a.table).ResolveAll(reqs)

	for _, res := range results {
		fmt.Fprintf(stdout, "%s\t%d\n", res.Name, res.ID)
	}

	if resolveErr == nil {
		return nil
	}

	red := color.New(color.FgRed)
	hint := color.New(color.FgYellow)

	for _, err := range splitJoined(resolveErr) {
		red.Fprintln(stderr, err)

		var unknown *symbols.UnknownSymbolError
		if errors.As(err, &unknown) && unknown.Suggestion != "" {
			hint.Fprintf(stderr, "  did you mean %q?\n", unknown.Suggestion)
		}
	}

	return fmt.Errorf("%w: %d of %d", ErrUnresolved, len(reqs)-len(results), len(reqs))
}

// splitJoined undoes errors.Join.
func splitJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}

	return []error{err}
}
