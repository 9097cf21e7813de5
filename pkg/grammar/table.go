// Package grammar exposes the symbol and field tables of a tree-sitter grammar.
package grammar

import (
	"errors"
	"fmt"
	"sort"
)

// Symbol is a node kind identifier of a grammar.
type Symbol uint16

// FieldID is a field identifier of a grammar. Zero means "no field".
type FieldID uint16

// SymbolError is the builtin symbol tree-sitter assigns to ERROR nodes.
const SymbolError Symbol = 0xFFFF

const errorSymbolName = "ERROR"

// SymbolKind classifies the visibility of a grammar symbol.
type SymbolKind uint8

// Symbol kinds.
const (
	// KindHidden symbols never appear in a syntax tree.
	KindHidden SymbolKind = iota
	// KindNamed symbols are named productions.
	KindNamed
	// KindAnonymous symbols are literal tokens such as keywords and punctuation.
	KindAnonymous
	// KindSupertype symbols are invisible named abstractions such as
	// "expression". They resolve as named kinds.
	KindSupertype
)

var kindNames = map[SymbolKind]string{
	KindHidden:    "hidden",
	KindNamed:     "named",
	KindAnonymous: "anonymous",
	KindSupertype: "supertype",
}

func (k SymbolKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("SymbolKind(%d)", uint8(k))
}

// Named reports whether symbols of kind k resolve as named kinds.
func (k SymbolKind) Named() bool {
	return k == KindNamed || k == KindSupertype
}

// Resolvable reports whether symbols of kind k can be looked up by name.
func (k SymbolKind) Resolvable() bool {
	return k != KindHidden
}

// ParseSymbolKind is the inverse of [SymbolKind.String].
func ParseSymbolKind(s string) (SymbolKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbolKind, s)
}

// Sentinel errors for table construction.
var (
	ErrZeroField         = errors.New("field id 0 is reserved")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrEmptyName         = errors.New("empty symbol name")
	ErrUnknownSymbolKind = errors.New("unknown symbol kind")
	ErrNilLanguage       = errors.New("tree-sitter language is nil")
)

// SymbolInfo describes one grammar symbol.
type SymbolInfo struct {
	Name string
	// ID is the symbol's index in the grammar.
	ID Symbol
	// Public is the identifier syntax tree nodes of this symbol carry. Aliased
	// symbols share the public identifier of their canonical symbol. Zero
	// means the symbol is its own public symbol.
	Public Symbol
	Kind   SymbolKind
}

// FieldInfo describes one grammar field.
type FieldInfo struct {
	Name string
	ID   FieldID
}

// Table is an immutable view of a grammar's symbol and field namespaces.
// It is safe for concurrent use.
type Table struct {
	name       string
	symbols    []SymbolInfo
	fields     []FieldInfo
	named      map[string]Symbol
	anonymous  map[string]Symbol
	fieldIDs   map[string]FieldID
	symbolByID map[Symbol]int
	fieldByID  map[FieldID]string
}

// New builds a table from raw symbol and field lists. Symbols are kept in ID
// order; when several resolvable symbols share a name and named-ness, the
// lowest ID wins and lookups return its public identifier.
func New(name string, symbols []SymbolInfo, fields []FieldInfo) (*Table, error) {
	t := &Table{
		name:       name,
		symbols:    append([]SymbolInfo(nil), symbols...),
		fields:     append([]FieldInfo(nil), fields...),
		named:      make(map[string]Symbol),
		anonymous:  make(map[string]Symbol),
		fieldIDs:   make(map[string]FieldID, len(fields)),
		symbolByID: make(map[Symbol]int, len(symbols)),
		fieldByID:  make(map[FieldID]string, len(fields)),
	}

	sort.SliceStable(t.symbols, func(i, j int) bool { return t.symbols[i].ID < t.symbols[j].ID })
	sort.SliceStable(t.fields, func(i, j int) bool { return t.fields[i].ID < t.fields[j].ID })

	for idx := range t.symbols {
		sym := &t.symbols[idx]

		if _, dup := t.symbolByID[sym.ID]; dup {
			return nil, fmt.Errorf("%w: symbol %d", ErrDuplicateID, sym.ID)
		}

		t.symbolByID[sym.ID] = idx

		if sym.Public == 0 {
			sym.Public = sym.ID
		}

		if !sym.Kind.Resolvable() {
			continue
		}

		names := t.anonymous
		if sym.Kind.Named() {
			names = t.named
		}

		if _, seen := names[sym.Name]; !seen {
			names[sym.Name] = sym.Public
		}
	}

	for _, f := range t.fields {
		if f.ID == 0 {
			return nil, fmt.Errorf("%w: %q", ErrZeroField, f.Name)
		}

		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d", ErrEmptyName, f.ID)
		}

		if _, dup := t.fieldByID[f.ID]; dup {
			return nil, fmt.Errorf("%w: field %d", ErrDuplicateID, f.ID)
		}

		t.fieldByID[f.ID] = f.Name

		if _, seen := t.fieldIDs[f.Name]; !seen {
			t.fieldIDs[f.Name] = f.ID
		}
	}

	return t, nil
}

// Name returns the grammar name, e.g. "c".
func (t *Table) Name() string {
	return t.name
}

// LookupKind returns the public identifier of the first resolvable symbol
// called name whose named-ness equals named. "ERROR" resolves to
// [SymbolError] whatever named is.
func (t *Table) LookupKind(name string, named bool) (Symbol, bool) {
	if name == errorSymbolName {
		return SymbolError, true
	}

	names := t.anonymous
	if named {
		names = t.named
	}

	id, ok := names[name]

	return id, ok
}

// LookupField returns the identifier of the field called name.
func (t *Table) LookupField(name string) (FieldID, bool) {
	id, ok := t.fieldIDs[name]

	return id, ok
}

// SymbolName returns the name of sym, or "" if the table has no such symbol.
// Public identifiers are symbol indexes too, so node symbols map back to
// their names.
func (t *Table) SymbolName(sym Symbol) string {
	if sym == SymbolError {
		return errorSymbolName
	}

	idx, ok := t.symbolByID[sym]
	if !ok {
		return ""
	}

	return t.symbols[idx].Name
}

// FieldName returns the name of id, or "" for 0 and unknown ids.
func (t *Table) FieldName(id FieldID) string {
	return t.fieldByID[id]
}

// Symbols returns a copy of every symbol in ID order, hidden ones included.
func (t *Table) Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), t.symbols...)
}

// Fields returns a copy of every field in ID order.
func (t *Table) Fields() []FieldInfo {
	return append([]FieldInfo(nil), t.fields...)
}

// SymbolCount returns the number of symbols, hidden ones included.
func (t *Table) SymbolCount() int {
	return len(t.symbols)
}

// FieldCount returns the number of fields.
func (t *Table) FieldCount() int {
	return len(t.fields)
}
