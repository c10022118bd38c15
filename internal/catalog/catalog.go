// Package catalog provides the known-model vocabulary used to recognize a
// model name inside a free-text listing title.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable lookup table from lowercased brand name to the
// ordered set of known model name strings for that brand.
type Catalog struct {
	brands map[string][]string
}

// New builds a catalog from the given table. Brand keys are lowercased and
// model lists are copied, so the caller's map cannot mutate the catalog.
func New(table map[string][]string) *Catalog {
	brands := make(map[string][]string, len(table))
	for brand, ms := range table {
		cp := make([]string, len(ms))
		copy(cp, ms)
		brands[strings.ToLower(brand)] = cp
	}

	return &Catalog{brands: brands}
}

// Default returns a catalog with the built-in brand table.
func Default() *Catalog {
	return New(knownModels)
}

// LoadYAML reads a brand table from a YAML file of the form
//
//	mini:
//	  - Cooper S
//	  - Cooper
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}

	return New(table), nil
}

// Models returns the known models for a brand, longest string first. The
// longest-first order is what keeps "Cooper" from shadowing "Cooper S".
// Unknown brands yield an empty slice.
func (c *Catalog) Models(brand string) []string {
	ms, ok := c.brands[strings.ToLower(brand)]
	if !ok {
		return nil
	}

	out := make([]string, len(ms))
	copy(out, ms)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})

	return out
}

// Brands returns the sorted list of brand names in the catalog.
func (c *Catalog) Brands() []string {
	names := make([]string, 0, len(c.brands))
	for b := range c.brands {
		names = append(names, b)
	}

	sort.Strings(names)

	return names
}

// HasBrand reports whether the catalog knows the given brand.
func (c *Catalog) HasBrand(brand string) bool {
	_, ok := c.brands[strings.ToLower(brand)]

	return ok
}

// MarshalYAML serializes the full brand table, for cmd/vocab dumps.
func (c *Catalog) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(c.brands)
}
