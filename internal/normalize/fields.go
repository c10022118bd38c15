// Package normalize converts raw scraped fields into the canonical typed
// shapes every downstream stage relies on. All functions here are total:
// malformed input degrades to nil or a sentinel value, never an error.
package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// nonNumericPattern strips everything a permissive integer parse ignores.
	nonNumericPattern = regexp.MustCompile(`[^\d\-]`)
	// locationSplitPattern covers the separators sites use in location strings.
	locationSplitPattern = regexp.MustCompile(`[,/|-]`)
)

// NormalizeText trims whitespace and applies NFKC normalization so that
// full-width and composed variants of the same text compare equal.
// Returns nil for empty input.
func NormalizeText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = norm.NFKC.String(s)

	return &s
}

// ParseInt extracts an integer from any raw value: "$24,500" parses to
// 24500, "120,000 km" to 120000. Every rune that is not a digit or minus
// sign is dropped before parsing. Unparseable or empty input yields nil.
func ParseInt(v any) *int {
	if v == nil {
		return nil
	}

	s := nonNumericPattern.ReplaceAllString(Stringify(v), "")
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &n
}

// CanonicalizeLocation reduces a free-text location to at most two
// title-cased components joined by ", ", e.g. "toronto / ontario" becomes
// "Toronto, Ontario". Listings carry at most a city and a region; any
// further components are dropped. Returns nil when nothing survives.
func CanonicalizeLocation(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var parts []string

	for _, p := range locationSplitPattern.Split(s, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		parts = append(parts, titleCase(p))
		if len(parts) == 2 {
			break
		}
	}

	if len(parts) == 0 {
		return nil
	}

	joined := strings.Join(parts, ", ")

	return &joined
}

// Capitalize normalizes a controlled-vocabulary value to a single casing:
// first rune upper, the rest lower ("automatic" -> "Automatic").
func Capitalize(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]

	return string(runes)
}

// CleanDealTag maps free-text deal labels like "Great price!" onto the
// fixed vocabulary Great, Good, Fair, Overpriced or Unknown.
func CleanDealTag(s string) string {
	text := strings.ToLower(s)

	switch {
	case strings.Contains(text, "great"):
		return "Great"
	case strings.Contains(text, "good"):
		return "Good"
	case strings.Contains(text, "fair"):
		return "Fair"
	case strings.Contains(text, "over"):
		return "Overpriced"
	default:
		return "Unknown"
	}
}

// Stringify renders any JSON-decoded value as the string a permissive
// parser should see. Whole-number floats print without an exponent or
// trailing fraction so re-parsing spider output round-trips.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest, matching how location strings are canonicalized.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}

	return strings.Join(words, " ")
}
