package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
)

func sampleTable(t *testing.T) *grammar.Table {
	t.Helper()

	table, err := grammar.New("sample",
		[]grammar.SymbolInfo{
			{ID: 0, Name: "end", Kind: grammar.KindHidden},
			{ID: 1, Name: "identifier", Kind: grammar.KindNamed},
			{ID: 2, Name: "if", Kind: grammar.KindAnonymous},
			{ID: 3, Name: "_statement", Kind: grammar.KindHidden},
			{ID: 4, Name: "if_statement", Kind: grammar.KindNamed},
			{ID: 5, Name: "identifier", Kind: grammar.KindNamed},
			{ID: 6, Name: "if", Kind: grammar.KindNamed},
		},
		[]grammar.FieldInfo{
			{ID: 2, Name: "condition"},
			{ID: 1, Name: "body"},
		},
	)
	require.NoError(t, err)

	return table
}

func TestTableLookupKind(t *testing.T) {
	t.Parallel()

	table := sampleTable(t)

	id, ok := table.LookupKind("if_statement", true)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(4), id)

	// Named-ness separates the keyword from a named production of the same name.
	id, ok = table.LookupKind("if", false)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(2), id)

	id, ok = table.LookupKind("if", true)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(6), id)

	// Lowest id wins for aliases.
	id, ok = table.LookupKind("identifier", true)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(1), id)

	_, ok = table.LookupKind("_statement", true)
	assert.False(t, ok, "hidden symbols are not resolvable")

	_, ok = table.LookupKind("_statement", false)
	assert.False(t, ok)

	_, ok = table.LookupKind("if_statement", false)
	assert.False(t, ok)
}

func TestTableErrorSymbol(t *testing.T) {
	t.Parallel()

	table := sampleTable(t)

	id, ok := table.LookupKind("ERROR", true)
	require.True(t, ok)
	assert.Equal(t, grammar.SymbolError, id)
	assert.Equal(t, "ERROR", table.SymbolName(grammar.SymbolError))

	id, ok = table.LookupKind("ERROR", false)
	require.True(t, ok, "ERROR resolves whatever the named flag")
	assert.Equal(t, grammar.SymbolError, id)
}

func TestTablePublicSymbols(t *testing.T) {
	t.Parallel()

	table, err := grammar.New("aliased",
		[]grammar.SymbolInfo{
			{ID: 3, Name: "expression", Kind: grammar.KindSupertype},
			{ID: 10, Name: "call_expression", Public: 20, Kind: grammar.KindNamed},
			{ID: 20, Name: "call_expression", Kind: grammar.KindNamed},
			{ID: 11, Name: "(", Kind: grammar.KindAnonymous},
		}, nil)
	require.NoError(t, err)

	// Lookups return the identifier nodes carry, not the symbol index.
	id, ok := table.LookupKind("call_expression", true)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(20), id)
	assert.Equal(t, "call_expression", table.SymbolName(id))

	id, ok = table.LookupKind("expression", true)
	require.True(t, ok, "supertypes resolve as named kinds")
	assert.Equal(t, grammar.Symbol(3), id)

	_, ok = table.LookupKind("expression", false)
	assert.False(t, ok)

	// A zero Public means the symbol is its own public symbol.
	id, ok = table.LookupKind("(", false)
	require.True(t, ok)
	assert.Equal(t, grammar.Symbol(11), id)

	for _, sym := range table.Symbols() {
		assert.NotZero(t, sym.Public, sym.Name)
	}
}

func TestTableFields(t *testing.T) {
	t.Parallel()

	table := sampleTable(t)

	id, ok := table.LookupField("condition")
	require.True(t, ok)
	assert.Equal(t, grammar.FieldID(2), id)

	_, ok = table.LookupField("consequence")
	assert.False(t, ok)

	assert.Equal(t, "body", table.FieldName(1))
	assert.Empty(t, table.FieldName(0))
	assert.Equal(t, 2, table.FieldCount())

	fields := table.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "body", fields[0].Name, "fields are kept in id order")
}

func TestTableSymbolName(t *testing.T) {
	t.Parallel()

	table := sampleTable(t)

	assert.Equal(t, "if_statement", table.SymbolName(4))
	assert.Empty(t, table.SymbolName(99))
	assert.Equal(t, 7, table.SymbolCount())
	assert.Equal(t, "sample", table.Name())
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := grammar.New("x", nil, []grammar.FieldInfo{{ID: 0, Name: "body"}})
	require.ErrorIs(t, err, grammar.ErrZeroField)

	_, err = grammar.New("x", nil, []grammar.FieldInfo{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	require.ErrorIs(t, err, grammar.ErrDuplicateID)

	_, err = grammar.New("x", []grammar.SymbolInfo{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}, nil)
	require.ErrorIs(t, err, grammar.ErrDuplicateID)

	_, err = grammar.New("x", nil, []grammar.FieldInfo{{ID: 3}})
	require.ErrorIs(t, err, grammar.ErrEmptyName)
}

func TestSymbolKindNamed(t *testing.T) {
	t.Parallel()

	assert.True(t, grammar.KindNamed.Named())
	assert.True(t, grammar.KindSupertype.Named())
	assert.False(t, grammar.KindAnonymous.Named())
	assert.False(t, grammar.KindHidden.Resolvable())
	assert.True(t, grammar.KindSupertype.Resolvable())
}

func TestParseSymbolKind(t *testing.T) {
	t.Parallel()

	for _, k := range []grammar.SymbolKind{grammar.KindHidden, grammar.KindNamed, grammar.KindAnonymous, grammar.KindSupertype} {
		parsed, err := grammar.ParseSymbolKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := grammar.ParseSymbolKind("auxiliary")
	require.ErrorIs(t, err, grammar.ErrUnknownSymbolKind)
}
