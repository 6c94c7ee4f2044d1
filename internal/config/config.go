// Package config loads the CLI's selector manifest file. This is the
// ambient configuration layer SPEC_FULL.md §2/§6 calls for: a small YAML
// file naming the selectors a streaming run should register,
// so the CLI does not require a --select flag per selector.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk selector configuration format described in
// SPEC_FULL.md §6.
type Manifest struct {
	Selectors []string `yaml:"selectors"`
}

// Load reads and parses a selector manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if len(m.Selectors) == 0 {
		return nil, fmt.Errorf("config: %s declares no selectors", path)
	}
	return &m, nil
}
