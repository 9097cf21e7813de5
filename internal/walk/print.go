package walk

import (
	"fmt"
	"io"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

const indentWidth = 2

// PrintTree writes one line per node: its kind, its zero-based start row and,
// for leaves, the quoted source text.
func PrintTree(w io.Writer, root sitter.Node, src []byte) error {
	return printNode(w, root, src, 0)
}

func printNode(w io.Writer, n sitter.Node, src []byte, depth int) error {
	var leaf string
	if n.ChildCount() == 0 {
		leaf = fmt.Sprintf(" %q", n.Content(src))
	}

	_, err := fmt.Fprintf(w, "%s%s (%d)%s\n", strings.Repeat(" ", depth*indentWidth), n.Type(), n.StartPoint().Row, leaf)
	if err != nil {
		return fmt.Errorf("print tree: %w", err)
	}

	for i := range n.ChildCount() {
		err = printNode(w, n.Child(i), src, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}
