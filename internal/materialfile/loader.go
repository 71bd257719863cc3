// Package materialfile loads user-supplied material definitions from YAML.
//
// The file is a flat mapping of material name to definition:
//
//	oak:
//	  f1: 300
//	  mass: 1.1
//	  type: flexible
//	tile:
//	  f1: 120
//	  mass: 1.8
//	  type: brittle
//
// Definitions are merged into the default catalog by name: unknown names are
// added, known names replaced wholesale. Validation lives in the core; this
// package only reads and unmarshals.
package materialfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/tameshiwari"
)

// Load reads a YAML override file and returns the default catalog merged
// with its definitions.
func Load(path string) (tameshiwari.Catalog, error) {
	return LoadInto(tameshiwari.DefaultCatalog(), path)
}

// LoadInto reads a YAML override file and merges it into the given catalog.
func LoadInto(base tameshiwari.Catalog, path string) (tameshiwari.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return tameshiwari.Catalog{}, fmt.Errorf("materials file %s: %w", path, err)
	}

	specs, err := Parse(b)
	if err != nil {
		return tameshiwari.Catalog{}, fmt.Errorf("materials file %s: %w", path, err)
	}

	merged, err := base.WithOverrides(specs)
	if err != nil {
		return tameshiwari.Catalog{}, fmt.Errorf("materials file %s: %w", path, err)
	}
	return merged, nil
}

// Parse unmarshals raw YAML into the override mapping. An empty document is
// a valid, empty override set.
func Parse(b []byte) (map[string]tameshiwari.MaterialSpec, error) {
	var specs map[string]tameshiwari.MaterialSpec
	if err := yaml.Unmarshal(b, &specs); err != nil {
		return nil, fmt.Errorf("%w: %v", tameshiwari.ErrInvalidMaterialDefinition, err)
	}
	return specs, nil
}
