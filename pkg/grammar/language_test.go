package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscsym/pkg/grammar"
)

func TestCTable(t *testing.T) {
	t.Parallel()

	table := grammar.C()
	require.NotNil(t, table)
	assert.Equal(t, grammar.CName, table.Name())
	assert.Positive(t, table.SymbolCount())
	assert.Positive(t, table.FieldCount())
	assert.Same(t, table, grammar.C(), "the C table is built once")
}

func TestCTableNamedKinds(t *testing.T) {
	t.Parallel()

	table := grammar.C()

	seen := make(map[grammar.Symbol]string)

	for _, name := range []string{"translation_unit", "function_definition", "binary_expression", "struct_specifier", "call_expression"} {
		id, ok := table.LookupKind(name, true)
		require.True(t, ok, name)
		assert.Positive(t, id, name)
		assert.Equal(t, name, table.SymbolName(id))

		prev, dup := seen[id]
		assert.False(t, dup, "%s and %s share id %d", name, prev, id)

		seen[id] = name
	}

	_, ok := table.LookupKind("not_a_real_kind", true)
	assert.False(t, ok)
}

func TestCTableKeywords(t *testing.T) {
	t.Parallel()

	table := grammar.C()

	ifID, ok := table.LookupKind("if", false)
	require.True(t, ok)

	forID, ok := table.LookupKind("for", false)
	require.True(t, ok)

	whileID, ok := table.LookupKind("while", false)
	require.True(t, ok)

	assert.NotEqual(t, ifID, forID)
	assert.NotEqual(t, ifID, whileID)
	assert.NotEqual(t, forID, whileID)
}

func TestCTableFields(t *testing.T) {
	t.Parallel()

	table := grammar.C()

	for _, f := range table.Fields() {
		assert.NotZero(t, f.ID)

		id, ok := table.LookupField(f.Name)
		require.True(t, ok, f.Name)
		assert.Equal(t, f.Name, table.FieldName(id))
	}

	_, ok := table.LookupField("not_a_real_field")
	assert.False(t, ok)
}

func TestFromLanguageNil(t *testing.T) {
	t.Parallel()

	_, err := grammar.FromLanguage("c", nil)
	require.ErrorIs(t, err, grammar.ErrNilLanguage)
}

func TestCTableMatchesTreeSitterLookup(t *testing.T) {
	t.Parallel()

	lang := grammar.CLanguage()
	table := grammar.C()

	var checked int

	for _, sym := range table.Symbols() {
		if !sym.Kind.Resolvable() {
			continue
		}

		named := sym.Kind.Named()
		want := grammar.Symbol(lang.SymbolID(sym.Name, named))

		got, ok := table.LookupKind(sym.Name, named)
		require.True(t, ok, "%q named=%v", sym.Name, named)
		assert.Equal(t, want, got, "%q named=%v", sym.Name, named)

		checked++
	}

	assert.Positive(t, checked)

	for _, f := range table.Fields() {
		assert.Equal(t, grammar.FieldID(lang.FieldID(f.Name)), f.ID, f.Name)
	}
}

func TestCTableSupertypes(t *testing.T) {
	t.Parallel()

	lang := grammar.CLanguage()
	table := grammar.C()

	for _, name := range []string{"expression", "statement", "type_specifier", "_declarator"} {
		id, ok := table.LookupKind(name, true)
		require.True(t, ok, name)
		assert.Equal(t, grammar.Symbol(lang.SymbolID(name, true)), id, name)
	}
}

func TestCTableErrorSymbol(t *testing.T) {
	t.Parallel()

	for _, named := range []bool{true, false} {
		id, ok := grammar.C().LookupKind("ERROR", named)
		require.True(t, ok)
		assert.Equal(t, grammar.Symbol(grammar.CLanguage().SymbolID("ERROR", named)), id)
	}
}
