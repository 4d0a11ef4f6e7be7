package rules

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a keyword table from a TOML or YAML file.
// An empty path returns the built-in table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return nil, fmt.Errorf("reading keyword table: %w", err)
	}

	format := strings.ToLower(filepath.Ext(path))
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a keyword table. format is a file extension: ".toml", ".yaml" or ".yml".
func Parse(data []byte, format string) (*Table, error) {
	var t Table
	switch format {
	case ".toml":
		if _, err := toml.Decode(string(data), &t); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	t.Normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// WriteTOML encodes the table in the TOML layout Load understands.
func WriteTOML(path string, t *Table) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user-chosen output
	if err != nil {
		return fmt.Errorf("creating keyword file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("encoding keyword table: %w", err)
	}
	return f.Close()
}
