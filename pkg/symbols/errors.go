package symbols

import (
	"errors"
	"fmt"
)

// Sentinel errors for symbol resolution.
var (
	// ErrUnknownSymbol is wrapped by every [UnknownSymbolError].
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrEmptyName is returned for an empty symbol name.
	ErrEmptyName = errors.New("symbol name is empty")
	// ErrUnknownNamespace is returned for a request outside the three namespaces.
	ErrUnknownNamespace = errors.New("unknown namespace")
)

// UnknownSymbolError reports a name that does not exist in a grammar namespace.
type UnknownSymbolError struct {
	Grammar   string
	Name      string
	Namespace Namespace
	// Suggestion is the closest valid name, if any. It is not part of Error.
	Suggestion string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%q is not a valid %s in the tree-sitter-%s grammar", e.Name, e.Namespace, e.Grammar)
}

// Unwrap returns [ErrUnknownSymbol].
func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}
