// Package symgen generates Go constants for tree-sitter-c grammar names.
//
// The input is a YAML manifest listing the node kinds, keywords and fields a
// package needs. Every name is resolved against the grammar before any code is
// written; unknown names abort generation with the manifest line they came from.
package symgen

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the generated file name used when the manifest names none.
const DefaultOutput = "symbols_gen.go"

//go:embed manifest.schema.json
var manifestSchema []byte

// Sentinel errors for manifest loading.
var (
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrEmptyManifest   = errors.New("manifest lists no symbols")
)

// Entry is one name in a manifest, written either as a bare string or as
// {name, const}.
type Entry struct {
	Name   string `yaml:"name"`
	Const  string `yaml:"const"`
	Line   int    `yaml:"-"`
	Column int    `yaml:"-"`
}

// UnmarshalYAML accepts both entry forms and records the source position.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	e.Line, e.Column = value.Line, value.Column

	if value.Kind == yaml.ScalarNode {
		e.Name = value.Value

		return nil
	}

	type plain Entry

	var p plain

	err := value.Decode(&p)
	if err != nil {
		return err
	}

	e.Name, e.Const = p.Name, p.Const

	return nil
}

// Manifest lists the names to generate constants for.
type Manifest struct {
	Package  string  `yaml:"package"`
	Output   string  `yaml:"output"`
	Kinds    []Entry `yaml:"kinds"`
	Keywords []Entry `yaml:"keywords"`
	Fields   []Entry `yaml:"fields"`

	// Path is the file the manifest was read from, used in diagnostics.
	Path string `yaml:"-"`
}

// OutputPath returns the generated file location, relative to the manifest.
func (m *Manifest) OutputPath() string {
	out := m.Output
	if out == "" {
		out = DefaultOutput
	}

	if filepath.IsAbs(out) || m.Path == "" {
		return out
	}

	return filepath.Join(filepath.Dir(m.Path), out)
}

func (m *Manifest) size() int {
	return len(m.Kinds) + len(m.Keywords) + len(m.Fields)
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return ParseManifest(path, data)
}

// ParseManifest validates data against the manifest schema and decodes it.
// path is only used to label diagnostics.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidManifest, err)
	}

	err = validateSchema(path, doc)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Path: path}

	err = yaml.Unmarshal(data, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidManifest, err)
	}

	if m.size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyManifest)
	}

	return m, nil
}

func validateSchema(path string, doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(manifestSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalidManifest, err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		msgs = append(msgs, verr.String())
	}

	return fmt.Errorf("%s: %w: %s", path, ErrInvalidManifest, strings.Join(msgs, "; "))
}
