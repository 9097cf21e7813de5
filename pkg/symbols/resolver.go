// Package symbols resolves grammar names to tree-sitter identifiers.
//
// A [Resolver] answers three questions against an immutable [grammar.Table]:
// the id of a named node kind, the id of an anonymous token (keyword or
// punctuation) and the id of a field. Lookups are pure, so a Resolver may be
// shared by any number of goroutines.
package symbols

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
)

// Namespace selects which part of the grammar a name is looked up in.
type Namespace uint8

// Namespaces.
const (
	NamespaceKind Namespace = iota
	NamespaceKeyword
	NamespaceField
)

func (ns Namespace) String() string {
	switch ns {
	case NamespaceKind:
		return "node kind"
	case NamespaceKeyword:
		return "keyword"
	case NamespaceField:
		return "field"
	default:
		return fmt.Sprintf("Namespace(%d)", uint8(ns))
	}
}

// Request is a name to resolve within a namespace.
type Request struct {
	Name      string
	Namespace Namespace
}

// Result is a resolved request. ID is a [grammar.Symbol] for kinds and
// keywords and a non-zero [grammar.FieldID] for fields.
type Result struct {
	Request
	ID uint16
}

// Resolver resolves names against a grammar table.
type Resolver struct {
	table *grammar.Table
}

// New returns a resolver over table.
func New(table *grammar.Table) *Resolver {
	return &Resolver{table: table}
}

// Table returns the grammar table backing r.
func (r *Resolver) Table() *grammar.Table {
	return r.table
}

// NodeKind resolves name among named productions when named is true and among
// anonymous tokens otherwise.
func (r *Resolver) NodeKind(name string, named bool) (grammar.Symbol, error) {
	ns := NamespaceKeyword
	if named {
		ns = NamespaceKind
	}

	if name == "" {
		return 0, fmt.Errorf("%s: %w", ns, ErrEmptyName)
	}

	id, ok := r.table.LookupKind(name, named)
	if !ok {
		return 0, r.unknown(ns, name)
	}

	return id, nil
}

// Kind resolves a named node kind such as "function_definition".
func (r *Resolver) Kind(name string) (grammar.Symbol, error) {
	return r.NodeKind(name, true)
}

// Keyword resolves an anonymous token such as "if" or "{".
func (r *Resolver) Keyword(name string) (grammar.Symbol, error) {
	return r.NodeKind(name, false)
}

// Field resolves a field name. A nil error guarantees a non-zero id.
func (r *Resolver) Field(name string) (grammar.FieldID, error) {
	if name == "" {
		return 0, fmt.Errorf("%s: %w", NamespaceField, ErrEmptyName)
	}

	id, ok := r.table.LookupField(name)
	if !ok || id == 0 {
		return 0, r.unknown(NamespaceField, name)
	}

	return id, nil
}

// Resolve dispatches req to the lookup of its namespace.
func (r *Resolver) Resolve(req Request) (Result, error) {
	var (
		id  uint16
		err error
	)

	switch req.Namespace {
	case NamespaceKind:
		var sym grammar.Symbol
		sym, err = r.Kind(req.Name)
		id = uint16(sym)
	case NamespaceKeyword:
		var sym grammar.Symbol
		sym, err = r.Keyword(req.Name)
		id = uint16(sym)
	case NamespaceField:
		var f grammar.FieldID
		f, err = r.Field(req.Name)
		id = uint16(f)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownNamespace, req.Namespace)
	}

	if err != nil {
		return Result{}, err
	}

	return Result{Request: req, ID: id}, nil
}

// ResolveAll resolves every request in order. Failures do not stop the pass:
// the returned error joins all of them and the results hold the successes.
func (r *Resolver) ResolveAll(reqs []Request) ([]Result, error) {
	results := make([]Result, 0, len(reqs))

	var errs []error

	for _, req := range reqs {
		res, err := r.Resolve(req)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func (r *Resolver) unknown(ns Namespace, name string) error {
	return &UnknownSymbolError{
		Grammar:    r.table.Name(),
		Namespace:  ns,
		Name:       name,
		Suggestion: r.Suggest(ns, name),
	}
}
