// Package models defines the record types shared across the crawl and merge stages.
package models

// RawListing is the loosely-typed field map a scrape adapter emits for one
// listing card. No key is guaranteed to be present, non-empty, or well formed.
type RawListing map[string]any

// Listing is the per-spider record written to a source result file.
// Field declaration order fixes the JSON key order. Transmission, fuel and
// deal tag are only emitted by sources that carry them.
type Listing struct {
	Title        *string `json:"title"`
	Price        *int    `json:"price"`
	MileageKM    *int    `json:"mileage_km"`
	Transmission *string `json:"transmission,omitempty"`
	Fuel         *string `json:"fuel,omitempty"`
	Year         *int    `json:"year"`
	Model        *string `json:"model"`
	DealTag      *string `json:"deal_tag,omitempty"`
	ProvinceCity *string `json:"province_city"`
	Link         *string `json:"link"`
}

// CanonicalListing is the merged-dataset record. Every key is always present,
// in this exact order, even when null. Source is set once by the builder and
// never changes. Extra preserves producer fields outside the canonical schema.
type CanonicalListing struct {
	Title        *string        `json:"title"`
	Price        *int           `json:"price"`
	MileageKM    *int           `json:"mileage_km"`
	Year         *int           `json:"year"`
	Model        *string        `json:"model"`
	ProvinceCity *string        `json:"province_city"`
	Link         *string        `json:"link"`
	Source       string         `json:"source"`
	Extra        map[string]any `json:"extra"`
}

// SourceResult is the shape of one per-spider result file, both as written by
// cmd/spider and as read back by the merge loader.
type SourceResult struct {
	Brand      string       `json:"brand"`
	Location   string       `json:"location"`
	TotalCount int          `json:"total_number"`
	TotalPages int          `json:"total_pages,omitempty"`
	Source     string       `json:"source"`
	Listings   []RawListing `json:"listings"`
}

// SpiderResult is the typed form of a result file as a spider writes it.
// Merge reads the same file back as a SourceResult, whose loosely-typed
// listings survive schema drift between crawler versions.
type SpiderResult struct {
	Brand      string    `json:"brand"`
	Location   string    `json:"location"`
	TotalCount int       `json:"total_number"`
	TotalPages int       `json:"total_pages"`
	Source     string    `json:"source"`
	Listings   []Listing `json:"listings"`
}

// MergedDataset is the deduplicated output artifact.
type MergedDataset struct {
	Brand       *string            `json:"brand"`
	Location    *string            `json:"location"`
	TotalMerged int                `json:"total_number_merged"`
	GeneratedAt string             `json:"generated_at"`
	Sources     []string           `json:"sources"`
	Listings    []CanonicalListing `json:"listings"`
}

// StrPtr returns a pointer to s. Convenience for building records in tests
// and spiders.
func StrPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }
