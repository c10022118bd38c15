package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"carcrawl/internal/catalog"
)

// leadingYearPattern matches titles of the form "2021 Countryman S ...".
var leadingYearPattern = regexp.MustCompile(`^(\d{4})\s+(.*)`)

// TitleParser extracts a model year and a known model name from free-text
// listing titles, using an injected vocabulary rather than ambient state so
// tests can run against synthetic brand tables.
type TitleParser struct {
	vocab *catalog.Catalog
}

// NewTitleParser creates a parser over the given vocabulary.
func NewTitleParser(vocab *catalog.Catalog) *TitleParser {
	return &TitleParser{vocab: vocab}
}

// Parse returns the year and model found in title for the given brand.
// Either may be nil. Candidates are tried longest-first and matched with
// word-boundary anchoring, so "Cooper S" wins over "Cooper" and a bare "3"
// never matches inside "350Z".
func (p *TitleParser) Parse(title, brand string) (*int, *string) {
	if title == "" {
		return nil, nil
	}

	var year *int

	rest := title

	if m := leadingYearPattern.FindStringSubmatch(title); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			year = &y
		}

		rest = m[2]
	}

	// Sites append trim/package info after '|'.
	rest = strings.TrimSpace(strings.SplitN(rest, "|", 2)[0])
	textLower := strings.ToLower(rest)

	for _, candidate := range p.vocab.Models(brand) {
		pattern := `\b` + regexp.QuoteMeta(strings.ToLower(candidate)) + `\b`
		if matched, err := regexp.MatchString(pattern, textLower); err == nil && matched {
			model := candidate

			return year, &model
		}
	}

	return year, nil
}
