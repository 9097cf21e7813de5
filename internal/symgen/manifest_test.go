package symgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscsym/internal/symgen"
)

const sampleManifest = `package: cnodes
output: nodes_gen.go
kinds:
  - function_definition
  - name: translation_unit
    const: Root
keywords:
  - if
  - name: "{"
    const: LBrace
fields:
  - declarator
  - name
`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := symgen.ParseManifest("symbols.yaml", []byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "cnodes", m.Package)
	require.Len(t, m.Kinds, 2)
	assert.Equal(t, "function_definition", m.Kinds[0].Name)
	assert.Empty(t, m.Kinds[0].Const)
	assert.Equal(t, 4, m.Kinds[0].Line)
	assert.Equal(t, "translation_unit", m.Kinds[1].Name)
	assert.Equal(t, "Root", m.Kinds[1].Const)
	assert.Equal(t, 5, m.Kinds[1].Line)

	require.Len(t, m.Keywords, 2)
	assert.Equal(t, "{", m.Keywords[1].Name)
	assert.Equal(t, "LBrace", m.Keywords[1].Const)

	require.Len(t, m.Fields, 2)
	assert.Equal(t, filepath.Join(".", "nodes_gen.go"), m.OutputPath())
}

func TestParseManifestSchemaErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing package": "kinds: [translation_unit]\n",
		"bad package":     "package: Bad-Name\nkinds: [translation_unit]\n",
		"unknown key":     "package: x\nkinds: [translation_unit]\nextra: 1\n",
		"empty name":      "package: x\nkinds: [\"\"]\n",
		"lowercase const": "package: x\nkinds: [{name: translation_unit, const: root}]\n",
		"bad output":      "package: x\noutput: out.txt\nkinds: [translation_unit]\n",
		"empty document":  "",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := symgen.ParseManifest("m.yaml", []byte(doc))
			require.ErrorIs(t, err, symgen.ErrInvalidManifest)
		})
	}
}

func TestParseManifestEmpty(t *testing.T) {
	t.Parallel()

	_, err := symgen.ParseManifest("m.yaml", []byte("package: x\nkinds: []\n"))
	require.ErrorIs(t, err, symgen.ErrEmptyManifest)
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	m, err := symgen.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, path, m.Path)
	assert.Equal(t, filepath.Join(dir, "nodes_gen.go"), m.OutputPath())

	_, err = symgen.LoadManifest(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestOutputPathDefault(t *testing.T) {
	t.Parallel()

	m := &symgen.Manifest{Path: filepath.Join("pkg", "nodes", "symbols.yaml")}
	assert.Equal(t, filepath.Join("pkg", "nodes", symgen.DefaultOutput), m.OutputPath())
}
