package symgen_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscsym/internal/symgen"
	"github.com/Sumatoshi-tech/tscsym/pkg/csym"
	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

func mustManifest(t *testing.T, doc string) *symgen.Manifest {
	t.Helper()

	m, err := symgen.ParseManifest("symbols.yaml", []byte(doc))
	require.NoError(t, err)

	return m
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	src, err := symgen.Generate(mustManifest(t, sampleManifest), csym.Resolver())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, symgen.Header)
	assert.Contains(t, out, "package cnodes")
	assert.Contains(t, out, fmt.Sprintf("KindFunctionDefinition grammar.Symbol = %d", csym.Kind("function_definition")))
	assert.Contains(t, out, fmt.Sprintf("Root                   grammar.Symbol = %d", csym.Kind("translation_unit")))
	assert.Contains(t, out, fmt.Sprintf("KeywordIf grammar.Symbol = %d", csym.Keyword("if")))
	assert.Contains(t, out, fmt.Sprintf("LBrace    grammar.Symbol = %d", csym.Keyword("{")))
	assert.Contains(t, out, fmt.Sprintf("FieldDeclarator grammar.FieldID = %d", csym.Field("declarator")))
	assert.Contains(t, out, `// "{"`)

	_, parseErr := parser.ParseFile(token.NewFileSet(), "nodes_gen.go", src, parser.ParseComments)
	require.NoError(t, parseErr)
}

func TestGenerateIdempotent(t *testing.T) {
	t.Parallel()

	first, err := symgen.Generate(mustManifest(t, sampleManifest), csym.Resolver())
	require.NoError(t, err)

	second, err := symgen.Generate(mustManifest(t, sampleManifest), csym.Resolver())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateOmitsEmptySections(t *testing.T) {
	t.Parallel()

	src, err := symgen.Generate(mustManifest(t, "package: f\nfields: [body]\n"), csym.Resolver())
	require.NoError(t, err)

	assert.NotContains(t, string(src), "// Node kinds.")
	assert.NotContains(t, string(src), "// Keywords.")
	assert.Contains(t, string(src), "// Fields.")
}

func TestGenerateUnknownNamesCarryPositions(t *testing.T) {
	t.Parallel()

	doc := `package: x
kinds:
  - translation_unit
  - not_a_real_kind
fields:
  - not_a_real_field
`

	_, err := symgen.Generate(mustManifest(t, doc), csym.Resolver())
	require.ErrorIs(t, err, symbols.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `symbols.yaml:4:5: "not_a_real_kind" is not a valid node kind in the tree-sitter-c grammar`)
	assert.Contains(t, err.Error(), `symbols.yaml:6:5: "not_a_real_field" is not a valid field in the tree-sitter-c grammar`)
}

func TestGenerateNeedsConstForPunctuation(t *testing.T) {
	t.Parallel()

	_, err := symgen.Generate(mustManifest(t, "package: x\nkeywords: [\"{\"]\n"), csym.Resolver())
	require.ErrorIs(t, err, symgen.ErrNoConstName)
}

func TestGenerateDuplicateConst(t *testing.T) {
	t.Parallel()

	doc := `package: x
kinds:
  - name: translation_unit
    const: Root
  - name: function_definition
    const: Root
`

	_, err := symgen.Generate(mustManifest(t, doc), csym.Resolver())
	require.ErrorIs(t, err, symgen.ErrDuplicateConst)
}

func TestGenerateEmptyManifest(t *testing.T) {
	t.Parallel()

	_, err := symgen.Generate(&symgen.Manifest{Package: "x"}, symbols.New(csym.Table()))
	require.ErrorIs(t, err, symgen.ErrEmptyManifest)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	src, err := symgen.Generate(mustManifest(t, sampleManifest), csym.Resolver())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nodes_gen.go")

	diff, err := symgen.Check(path, src)
	require.ErrorIs(t, err, symgen.ErrStale, "a missing file is stale")
	assert.Contains(t, diff, "+package cnodes")

	require.NoError(t, symgen.Write(path, src))

	diff, err = symgen.Check(path, src)
	require.NoError(t, err)
	assert.Empty(t, diff)

	require.NoError(t, symgen.Write(path, append([]byte("// edited\n"), src...)))

	diff, err = symgen.Check(path, src)
	require.ErrorIs(t, err, symgen.ErrStale)
	assert.Contains(t, diff, "-// edited")
}

func TestLineDiff(t *testing.T) {
	t.Parallel()

	diff := symgen.LineDiff("f.go", "a\nb\nc\n", "a\nB\nc\n")
	assert.Contains(t, diff, "--- f.go (on disk)")
	assert.Contains(t, diff, " a\n")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+B\n")
	assert.Contains(t, diff, " c\n")
}
