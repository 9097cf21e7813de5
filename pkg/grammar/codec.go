package grammar

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot file extensions.
const (
	yamlExtension = ".yaml"
	jsonExtension = ".json"
)

const (
	defaultYAMLIndent = 2
	defaultJSONIndent = "  "
)

// Codec defines how a snapshot document is serialized and deserialized.
type Codec interface {
	// Encode writes v to w.
	Encode(w io.Writer, v any) error
	// Decode reads r into v, which must be a pointer.
	Decode(r io.Reader, v any) error
	// Extension returns the file extension for this codec, e.g. ".yaml".
	Extension() string
}

// YAMLCodec is the default snapshot codec.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a YAML codec with 2-space indentation.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: defaultYAMLIndent}
}

// Encode implements Codec.Encode.
func (c *YAMLCodec) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(c.Indent)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode.
func (c *YAMLCodec) Decode(r io.Reader, v any) error {
	err := yaml.NewDecoder(r).Decode(v)
	if err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension.
func (c *YAMLCodec) Extension() string {
	return yamlExtension
}

// JSONCodec writes snapshots as JSON. An empty Indent means compact output.
type JSONCodec struct {
	Indent string
}

// NewJSONCodec creates a JSON codec with pretty-printing (2-space indent).
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: defaultJSONIndent}
}

// Encode implements Codec.Encode.
func (c *JSONCodec) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode.
func (c *JSONCodec) Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension.
func (c *JSONCodec) Extension() string {
	return jsonExtension
}

// CodecFor picks a codec from the extension of path; anything that is not
// .json is YAML.
func CodecFor(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), jsonExtension) {
		return NewJSONCodec()
	}

	return NewYAMLCodec()
}

// CodecByName returns the codec for a format name: yaml, yml or json.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
