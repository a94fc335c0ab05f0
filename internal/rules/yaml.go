package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region yaml-file

// catalogFile is the on-disk YAML shape for a full catalog override.
type catalogFile struct {
	Version string  `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// #endregion

// #region load-file

// LoadFile parses a YAML catalog file and validates every entry. The result
// replaces the built-in catalog wholesale; there is no per-lift merging.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML bytes.
func Parse(data []byte) (*MemoryCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("parse catalog: missing version")
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("parse catalog: no entries")
	}
	return NewMemoryCatalog(f.Version, f.Entries)
}

// #endregion
