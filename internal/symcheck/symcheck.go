// Package symcheck defines an Analyzer that validates tree-sitter-c grammar
// names passed to the csym package.
package symcheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

// CsymPath is the import path of the checked package.
const CsymPath = "github.com/Sumatoshi-tech/tscsym/pkg/csym"

// Doc is the analyzer documentation.
const Doc = `report invalid tree-sitter-c grammar names

The symcheck analysis reports calls to csym.Kind, csym.Keyword and csym.Field
whose argument is not a constant string, or names a node kind, keyword or
field that does not exist in the linked tree-sitter-c grammar. Such calls
would panic when the program starts.`

// Analyzer reports invalid grammar names.
var Analyzer = &analysis.Analyzer{
	Name:     "symcheck",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var namespaces = map[string]symbols.Namespace{
	"Kind":    symbols.NamespaceKind,
	"Keyword": symbols.NamespaceKeyword,
	"Field":   symbols.NamespaceField,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Path() == CsymPath {
		return nil, nil //nolint:nilnil // analyzers without results return nil, nil
	}

	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	resolver := symbols.New(grammar.C())

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		call, _ := n.(*ast.CallExpr)

		fn := typeutil.StaticCallee(pass.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != CsymPath {
			return
		}

		ns, ok := namespaces[fn.Name()]
		if !ok || len(call.Args) != 1 {
			return
		}

		arg := call.Args[0]

		tv := pass.TypesInfo.Types[arg]
		if tv.Value == nil || tv.Value.Kind() != constant.String {
			pass.Reportf(arg.Pos(), "argument to csym.%s must be a constant string", fn.Name())

			return
		}

		_, err := resolver.Resolve(symbols.Request{Namespace: ns, Name: constant.StringVal(tv.Value)})
		if err != nil {
			pass.Report(diagnose(fn.Name(), arg, err))
		}
	})

	return nil, nil //nolint:nilnil // analyzers without results return nil, nil
}

// diagnose builds the report for an unknown name, offering the closest valid
// name as a fix when the argument is a string literal.
func diagnose(fnName string, arg ast.Expr, err error) analysis.Diagnostic {
	diag := analysis.Diagnostic{
		Pos:     arg.Pos(),
		End:     arg.End(),
		Message: fmt.Sprintf("csym.%s: %v", fnName, err),
	}

	var unknown *symbols.UnknownSymbolError
	if !errors.As(err, &unknown) || unknown.Suggestion == "" {
		return diag
	}

	diag.Message += fmt.Sprintf(" (did you mean %q?)", unknown.Suggestion)

	if _, isLit := arg.(*ast.BasicLit); isLit {
		diag.SuggestedFixes = []analysis.SuggestedFix{{
			Message: fmt.Sprintf("Replace with %q", unknown.Suggestion),
			TextEdits: []analysis.TextEdit{{
				Pos:     arg.Pos(),
				End:     arg.End(),
				NewText: []byte(strconv.Quote(unknown.Suggestion)),
			}},
		}}
	}

	return diag
}
