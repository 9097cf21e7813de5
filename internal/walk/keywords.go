package walk

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/tscsym/pkg/csym"
	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
)

// ControlKeywords are the flow-control keywords counted by [KeywordCounts].
var ControlKeywords = []string{
	"if", "else", "switch", "case", "default",
	"for", "while", "do",
	"break", "continue", "goto", "return",
}

var controlKeywordIDs = func() map[grammar.Symbol]string {
	ids := make(map[grammar.Symbol]string, len(ControlKeywords))
	for _, kw := range ControlKeywords {
		ids[csym.Keyword(kw)] = kw
	}

	return ids
}()

// KeywordCounts counts the flow-control keyword tokens under root.
func KeywordCounts(root sitter.Node) map[string]int {
	counts := make(map[string]int)

	Visit(root, func(n sitter.Node) bool {
		if n.IsNamed() {
			return true
		}

		if kw, ok := controlKeywordIDs[grammar.Symbol(n.Symbol())]; ok {
			counts[kw]++
		}

		return true
	})

	return counts
}
