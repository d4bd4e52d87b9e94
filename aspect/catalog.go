package aspect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogConfig holds the aspects configuration file layout.
type catalogConfig struct {
	Aspects []Definition `yaml:"aspects"`
}

// LoadCatalog loads an aspect catalog from a YAML file, replacing the
// built-in table.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading aspects file: %w", err)
	}

	var config catalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing aspects file: %w", err)
	}
	if len(config.Aspects) == 0 {
		return nil, fmt.Errorf("aspects file %s: no definitions", path)
	}

	cat, err := NewCatalog(config.Aspects)
	if err != nil {
		return nil, fmt.Errorf("validating aspects file: %w", err)
	}
	return cat, nil
}
