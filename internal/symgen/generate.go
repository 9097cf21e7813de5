package symgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/Sumatoshi-tech/tscsym/pkg/symbols"
)

// Sentinel errors for code generation.
var (
	ErrNoConstName    = errors.New("name does not yield an identifier, set const")
	ErrDuplicateConst = errors.New("duplicate constant name")
)

// Header marks generated files.
const Header = "// Code generated by tscsym gen. DO NOT EDIT."

type constant struct {
	Ident string
	Name  string
	ID    uint16
}

type section struct {
	Title  string
	Type   string
	Consts []constant
}

type fileData struct {
	Header   string
	Grammar  string
	Package  string
	Sections []section
	Symbols  int
	Fields   int
}

var fileTemplate = template.Must(template.New("symbols").Parse(`{{.Header}}

// Identifiers resolved against the tree-sitter-{{.Grammar}} grammar ({{.Symbols}} symbols, {{.Fields}} fields).

package {{.Package}}

import "github.com/Sumatoshi-tech/tscsym/pkg/grammar"
{{range .Sections}}{{$typ := .Type}}
// {{.Title}}.
const (
{{- range .Consts}}
	{{.Ident}} {{$typ}} = {{.ID}} // {{printf "%q" .Name}}
{{- end}}
)
{{end}}`))

type namespaceSpec struct {
	entries []Entry
	title   string
	typ     string
	prefix  string
	ns      symbols.Namespace
}

// Generate resolves every manifest entry with r and returns the formatted Go
// source of the constants file. All unknown names are reported together, each
// prefixed with its manifest position. The output depends only on the
// manifest and the grammar, so repeated runs are byte-identical.
func Generate(m *Manifest, r *symbols.Resolver) ([]byte, error) {
	if m.size() == 0 {
		return nil, fmt.Errorf("%s: %w", m.Path, ErrEmptyManifest)
	}

	specs := []namespaceSpec{
		{entries: m.Kinds, title: "Node kinds", typ: "grammar.Symbol", prefix: "Kind", ns: symbols.NamespaceKind},
		{entries: m.Keywords, title: "Keywords", typ: "grammar.Symbol", prefix: "Keyword", ns: symbols.NamespaceKeyword},
		{entries: m.Fields, title: "Fields", typ: "grammar.FieldID", prefix: "Field", ns: symbols.NamespaceField},
	}

	data := fileData{
		Header:  Header,
		Grammar: r.Table().Name(),
		Package: m.Package,
		Symbols: r.Table().SymbolCount(),
		Fields:  r.Table().FieldCount(),
	}

	seen := make(map[string]Entry)

	var errs []error

	for _, spec := range specs {
		if len(spec.entries) == 0 {
			continue
		}

		sec := section{Title: spec.title, Type: spec.typ}

		for _, entry := range spec.entries {
			c, err := resolveEntry(r, spec, entry, seen)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s:%d:%d: %w", m.Path, entry.Line, entry.Column, err))

				continue
			}

			sec.Consts = append(sec.Consts, c)
		}

		data.Sections = append(data.Sections, sec)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return render(data)
}

func resolveEntry(r *symbols.Resolver, spec namespaceSpec, entry Entry, seen map[string]Entry) (constant, error) {
	res, err := r.Resolve(symbols.Request{Namespace: spec.ns, Name: entry.Name})
	if err != nil {
		return constant{}, err
	}

	ident := entry.Const
	if ident == "" {
		camel := strcase.ToCamel(entry.Name)
		if camel == "" {
			return constant{}, fmt.Errorf("%s %q: %w", spec.ns, entry.Name, ErrNoConstName)
		}

		ident = spec.prefix + camel
	}

	if !token.IsIdentifier(ident) || !token.IsExported(ident) {
		return constant{}, fmt.Errorf("%s %q: %w", spec.ns, entry.Name, ErrNoConstName)
	}

	if prev, dup := seen[ident]; dup {
		return constant{}, fmt.Errorf("%w: %s (also line %d)", ErrDuplicateConst, ident, prev.Line)
	}

	seen[ident] = entry

	return constant{Ident: ident, Name: entry.Name, ID: res.ID}, nil
}

func render(data fileData) ([]byte, error) {
	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}
