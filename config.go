package banner

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLayout reads a YAML layout file and overlays it on DefaultLayout. Keys
// absent from the file keep their default values; a "lines" list, when
// present, replaces the default text entirely.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout is LoadLayout for in-memory YAML.
func ParseLayout(data []byte) (Layout, error) {
	layout := DefaultLayout()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && err != io.EOF {
		return Layout{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// WriteLayout encodes the layout as YAML in the same shape LoadLayout reads.
func WriteLayout(w io.Writer, layout Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
