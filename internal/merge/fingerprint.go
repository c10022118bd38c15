// Package merge combines per-source listing collections into one
// deduplicated dataset, link-based dedup first and content fingerprints
// second.
package merge

import (
	"regexp"
	"strconv"
	"strings"

	"carcrawl/internal/models"
)

var (
	// punctPattern removes everything outside letters, digits, underscore
	// and whitespace.
	punctPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	// spaceRunPattern collapses internal whitespace runs.
	spaceRunPattern = regexp.MustCompile(`\s+`)
)

// Fingerprint derives the content-based dedup key for a record:
// "<clean_title>|<year>|<price>". The same physical listing fingerprints
// identically across sources regardless of punctuation, casing or
// whitespace differences in the title. Distinct listings sharing title,
// year and price will collide; downstream consumers depend on this exact
// key, so do not refine it.
func Fingerprint(rec models.CanonicalListing) string {
	title := ""
	if rec.Title != nil {
		title = strings.ToLower(*rec.Title)
		title = punctPattern.ReplaceAllString(title, "")
		title = strings.TrimSpace(spaceRunPattern.ReplaceAllString(title, " "))
	}

	year := ""
	if rec.Year != nil {
		year = strconv.Itoa(*rec.Year)
	}

	price := ""
	if rec.Price != nil {
		price = strconv.Itoa(*rec.Price)
	}

	return title + "|" + year + "|" + price
}
