package a

import "github.com/Sumatoshi-tech/tscsym/pkg/csym"

const declaratorField = "declarator"

var (
	fnDef   = csym.Kind("function_definition")
	root    = csym.Kind("translation_unit")
	kwIf    = csym.Keyword("if")
	kwBrace = csym.Keyword("{")
	decl    = csym.Field(declaratorField)

	bogusKind  = csym.Kind("not_a_real_kind")        // want `csym.Kind: "not_a_real_kind" is not a valid node kind in the tree-sitter-c grammar`
	namedAsKw  = csym.Keyword("function_definition") // want `csym.Keyword: "function_definition" is not a valid keyword`
	kwAsKind   = csym.Kind("while")                  // want `csym.Kind: "while" is not a valid node kind`
	bogusField = csym.Field("not_a_real_field")      // want `csym.Field: "not_a_real_field" is not a valid field in the tree-sitter-c grammar`
	emptyField = csym.Field("")                      // want `csym.Field: field: symbol name is empty`
)

func dynamic(name string) {
	_ = csym.Kind(name) // want `argument to csym.Kind must be a constant string`
}

func typo() {
	_ = csym.Kind("identifer")      // want `csym.Kind: "identifer" is not a valid node kind in the tree-sitter-c grammar \(did you mean "identifier"\?\)`
	_ = csym.Field("declarater")    // want `\(did you mean "declarator"\?\)`
}
