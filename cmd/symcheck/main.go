// The symcheck command validates tree-sitter-c grammar names passed to the
// csym package. It can be run directly or as "go vet -vettool=$(which symcheck)".
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Sumatoshi-tech/tscsym/internal/symcheck"
)

func main() {
	singlechecker.Main(symcheck.Analyzer)
}
