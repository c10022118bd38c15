package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"carcrawl/internal/models"
)

// Source file errors. A missing or malformed source file is fatal for the
// whole merge invocation: silently treating it as empty would misrepresent
// the merged totals.
var (
	ErrNoListings       = errors.New("source file has no listings array")
	ErrListingNotObject = errors.New("listing entry is not an object")
)

// Loader reads and validates per-source result files.
type Loader struct{}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every path into a SourceInput, in the given order. When a
// file lacks a "source" value the label falls back to one derived from the
// file name ("kijiji_result.json" -> "kijiji"). All file failures are
// aggregated so one invocation reports every broken input at once.
func (l *Loader) Load(paths []string) ([]SourceInput, error) {
	inputs := make([]SourceInput, 0, len(paths))

	var loadErr error

	for _, path := range paths {
		in, err := l.loadOne(path)
		if err != nil {
			loadErr = multierr.Append(loadErr, err)

			continue
		}

		inputs = append(inputs, in)
	}

	if loadErr != nil {
		return nil, loadErr
	}

	return inputs, nil
}

func (l *Loader) loadOne(path string) (SourceInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SourceInput{}, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	var result models.SourceResult

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&result); err != nil {
		return SourceInput{}, fmt.Errorf("failed to parse JSON in %s: %w", path, err)
	}

	if err := validate(result); err != nil {
		return SourceInput{}, fmt.Errorf("%s: %w", path, err)
	}

	label := result.Source
	if label == "" {
		label = labelFromPath(path)
	}

	return SourceInput{Label: label, Result: result}, nil
}

// validate checks the structural requirements of a decoded source file.
func validate(result models.SourceResult) error {
	if result.Listings == nil {
		return ErrNoListings
	}

	for i, raw := range result.Listings {
		if raw == nil {
			return fmt.Errorf("%w: index %d", ErrListingNotObject, i)
		}
	}

	return nil
}

// labelFromPath derives a source label from a file name:
// "results/kijiji_result.json" -> "kijiji".
func labelFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, "_result")

	return base
}
