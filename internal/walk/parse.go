// Package walk traverses tree-sitter-c syntax trees using identifiers
// resolved through csym instead of node type strings.
package walk

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/Sumatoshi-tech/tscsym/pkg/csym"
)

var (
	errPoolType   = errors.New("unexpected parser type in pool")
	errNoRootNode = errors.New("syntax tree has no root node")
)

var parserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(csym.Language())

		return p
	},
}

// Parse parses C source. The caller must Close the returned tree.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	p, ok := parserPool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer parserPool.Put(p)

	tree, err := p.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse c source: %w", err)
	}

	if tree.RootNode().IsNull() {
		tree.Close()

		return nil, errNoRootNode
	}

	return tree, nil
}

// Visit calls fn for n and every descendant in pre-order, anonymous tokens
// included. Returning false from fn skips the node's children.
func Visit(n sitter.Node, fn func(sitter.Node) bool) {
	if n.IsNull() || !fn(n) {
		return
	}

	for i := range n.ChildCount() {
		Visit(n.Child(i), fn)
	}
}
