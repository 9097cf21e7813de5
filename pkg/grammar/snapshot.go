package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot errors.
var (
	// ErrSnapshotMismatch is returned when a snapshot's counts disagree with its lists.
	ErrSnapshotMismatch = errors.New("snapshot counts do not match contents")
	// ErrUnknownFormat is returned by [CodecByName].
	ErrUnknownFormat = errors.New("unknown snapshot format")
)

// quotedName is always written as a double-quoted YAML scalar. Symbol names
// include control characters such as "\n" that plain or block scalars do not
// carry through a round trip.
type quotedName string

// MarshalYAML implements yaml.Marshaler.
func (q quotedName) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: string(q)}, nil
}

type snapshotSymbol struct {
	Name   quotedName `json:"name"             yaml:"name"`
	Kind   string     `json:"kind"             yaml:"kind"`
	ID     uint16     `json:"id"               yaml:"id"`
	Public uint16     `json:"public,omitempty" yaml:"public,omitempty"`
}

type snapshotField struct {
	Name quotedName `json:"name" yaml:"name"`
	ID   uint16     `json:"id"   yaml:"id"`
}

type snapshot struct {
	Grammar     string           `json:"grammar"      yaml:"grammar"`
	Symbols     []snapshotSymbol `json:"symbols"      yaml:"symbols"`
	Fields      []snapshotField  `json:"fields"       yaml:"fields"`
	SymbolCount int              `json:"symbol_count" yaml:"symbol_count"`
	FieldCount  int              `json:"field_count"  yaml:"field_count"`
}

// EncodeSnapshot serializes t with codec.
func EncodeSnapshot(w io.Writer, t *Table, codec Codec) error {
	snap := snapshot{
		Grammar:     t.Name(),
		SymbolCount: t.SymbolCount(),
		FieldCount:  t.FieldCount(),
		Symbols:     make([]snapshotSymbol, 0, t.SymbolCount()),
		Fields:      make([]snapshotField, 0, t.FieldCount()),
	}

	for _, sym := range t.symbols {
		s := snapshotSymbol{ID: uint16(sym.ID), Name: quotedName(sym.Name), Kind: sym.Kind.String()}
		if sym.Public != sym.ID {
			s.Public = uint16(sym.Public)
		}

		snap.Symbols = append(snap.Symbols, s)
	}

	for _, f := range t.fields {
		snap.Fields = append(snap.Fields, snapshotField{ID: uint16(f.ID), Name: quotedName(f.Name)})
	}

	err := codec.Encode(w, &snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}

// DecodeSnapshot loads a table previously written by [EncodeSnapshot] with
// the same codec.
func DecodeSnapshot(r io.Reader, codec Codec) (*Table, error) {
	var snap snapshot

	err := codec.Decode(r, &snap)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	if snap.SymbolCount != len(snap.Symbols) || snap.FieldCount != len(snap.Fields) {
		return nil, fmt.Errorf("%w: symbols %d/%d, fields %d/%d", ErrSnapshotMismatch,
			len(snap.Symbols), snap.SymbolCount, len(snap.Fields), snap.FieldCount)
	}

	symbols := make([]SymbolInfo, 0, len(snap.Symbols))

	for _, s := range snap.Symbols {
		kind, kindErr := ParseSymbolKind(s.Kind)
		if kindErr != nil {
			return nil, fmt.Errorf("symbol %d: %w", s.ID, kindErr)
		}

		symbols = append(symbols, SymbolInfo{ID: Symbol(s.ID), Public: Symbol(s.Public), Name: string(s.Name), Kind: kind})
	}

	fields := make([]FieldInfo, 0, len(snap.Fields))
	for _, f := range snap.Fields {
		fields = append(fields, FieldInfo{ID: FieldID(f.ID), Name: string(f.Name)})
	}

	return New(snap.Grammar, symbols, fields)
}

// WriteSnapshot serializes t as YAML.
func WriteSnapshot(w io.Writer, t *Table) error {
	return EncodeSnapshot(w, t, NewYAMLCodec())
}

// ReadSnapshot loads a YAML snapshot.
func ReadSnapshot(r io.Reader) (*Table, error) {
	return DecodeSnapshot(r, NewYAMLCodec())
}

// SaveSnapshot writes t to path, choosing the codec from its extension.
func SaveSnapshot(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	err = EncodeSnapshot(f, t, CodecFor(path))
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads a snapshot file, choosing the codec from its extension.
func LoadSnapshot(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return DecodeSnapshot(f, CodecFor(path))
}
