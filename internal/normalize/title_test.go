package normalize

import (
	"testing"

	"carcrawl/internal/catalog"
)

func testVocab() *catalog.Catalog {
	return catalog.New(map[string][]string{
		"mini":   {"Cooper", "Cooper S", "Countryman"},
		"nissan": {"3", "370Z"},
	})
}

func TestTitleParser_YearAndModel(t *testing.T) {
	p := NewTitleParser(testVocab())

	year, model := p.Parse("2020 Cooper S Hardtop", "mini")

	if year == nil || *year != 2020 {
		t.Errorf("year = %v, want 2020", year)
	}

	if model == nil || *model != "Cooper S" {
		t.Errorf("model = %v, want Cooper S (longest match wins over Cooper)", model)
	}
}

func TestTitleParser_LongestMatchFirst(t *testing.T) {
	p := NewTitleParser(catalog.New(map[string][]string{
		"mini": {"Cooper", "Cooper S"},
	}))

	_, model := p.Parse("2020 Cooper S Hardtop", "mini")
	if model == nil || *model != "Cooper S" {
		t.Fatalf("model = %v, want Cooper S", model)
	}
}

func TestTitleParser_BoundaryAnchoring(t *testing.T) {
	p := NewTitleParser(testVocab())

	_, model := p.Parse("2019 350Z Special", "nissan")
	if model != nil {
		t.Errorf("model = %q, want nil: %q must not match inside 350Z", *model, "3")
	}

	_, model = p.Parse("2019 370Z Touring", "nissan")
	if model == nil || *model != "370Z" {
		t.Errorf("model = %v, want 370Z", model)
	}
}

func TestTitleParser_NoLeadingYear(t *testing.T) {
	p := NewTitleParser(testVocab())

	year, model := p.Parse("Countryman Cooper low kms", "mini")

	if year != nil {
		t.Errorf("year = %d, want nil", *year)
	}

	if model == nil || *model != "Countryman" {
		t.Errorf("model = %v, want Countryman", model)
	}
}

func TestTitleParser_TruncatesAtPipe(t *testing.T) {
	p := NewTitleParser(testVocab())

	// Model name after '|' is trim/package noise and must be ignored.
	_, model := p.Parse("2018 Clean title | Cooper S package", "mini")
	if model != nil {
		t.Errorf("model = %q, want nil: text after | must not match", *model)
	}
}

func TestTitleParser_CaseInsensitive(t *testing.T) {
	p := NewTitleParser(testVocab())

	_, model := p.Parse("2021 COUNTRYMAN all4", "mini")
	if model == nil || *model != "Countryman" {
		t.Errorf("model = %v, want Countryman", model)
	}
}

func TestTitleParser_EmptyTitle(t *testing.T) {
	p := NewTitleParser(testVocab())

	year, model := p.Parse("", "mini")
	if year != nil || model != nil {
		t.Errorf("Parse(\"\") = (%v, %v), want (nil, nil)", year, model)
	}
}

func TestTitleParser_UnknownBrand(t *testing.T) {
	p := NewTitleParser(testVocab())

	year, model := p.Parse("2020 Cooper S", "delorean")

	if year == nil || *year != 2020 {
		t.Errorf("year = %v, want 2020 even when brand is unknown", year)
	}

	if model != nil {
		t.Errorf("model = %q, want nil for unknown brand", *model)
	}
}
