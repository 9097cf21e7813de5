// Package csym resolves tree-sitter-c grammar names to identifiers.
//
// It is meant to be used from package-level variable blocks so that every name
// is resolved exactly once, when the program starts:
//
//	var (
//		kindFunctionDefinition = csym.Kind("function_definition")
//		kwIf                   = csym.Keyword("if")
//		fieldDeclarator        = csym.Field("declarator")
//	)
//
// An unknown name panics. Run the symcheck analyzer (cmd/symcheck) in the
// build to reject such names before the program runs, or pre-generate
// constants with "tscsym gen".
package csym

import (
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

var resolver = sync.OnceValue(func() *symbols.Resolver {
	return symbols.New(grammar.C())
})

// Resolver returns the shared resolver over the C grammar.
func Resolver() *symbols.Resolver {
	return resolver()
}

// Table returns the C grammar table.
func Table() *grammar.Table {
	return resolver().Table()
}

// Language returns the tree-sitter-c language.
func Language() *sitter.Language {
	return grammar.CLanguage()
}

// Kind returns the id of the named node kind called name.
func Kind(name string) grammar.Symbol {
	id, err := resolver().Kind(name)
	if err != nil {
		panic(err)
	}

	return id
}

// Keyword returns the id of the anonymous token called name.
func Keyword(name string) grammar.Symbol {
	id, err := resolver().Keyword(name)
	if err != nil {
		panic(err)
	}

	return id
}

// Field returns the non-zero id of the field called name.
func Field(name string) grammar.FieldID {
	id, err := resolver().Field(name)
	if err != nil {
		panic(err)
	}

	return id
}

// Is reports whether n is of kind sym.
func Is(n sitter.Node, sym grammar.Symbol) bool {
	return !n.IsNull() && grammar.Symbol(n.Symbol()) == sym
}

// ChildByField returns the child of n stored under field f. The result is a
// null node when n has no such child, which is distinct from f being unknown
// to the grammar.
func ChildByField(n sitter.Node, f grammar.FieldID) sitter.Node {
	if f == 0 || n.IsNull() {
		return sitter.Node{}
	}

	return n.ChildByFieldID(sitter.FieldID(f))
}
