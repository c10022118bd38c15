package normalize

import (
	"carcrawl/internal/models"
)

// canonicalKeys are the raw key spellings the builder consumes directly.
// Anything else is preserved in Extra rather than dropped.
var canonicalKeys = map[string]struct{}{
	"title":         {},
	"name":          {},
	"price":         {},
	"mileage_km":    {},
	"mileage":       {},
	"year":          {},
	"model":         {},
	"province_city": {},
	"location":      {},
	"city":          {},
	"link":          {},
	"url":           {},
}

// BuildCanonical assembles exactly one CanonicalListing from a raw field
// map, tagging it with the producing source. Alias keys resolve
// first-present-wins (mileage_km over mileage, province_city over location
// over city, link over url). The function is total: any map, including
// nil, yields a complete record.
func BuildCanonical(raw models.RawListing, source string) models.CanonicalListing {
	title := NormalizeText(firstString(raw, "title", "name"))
	price := ParseInt(firstValue(raw, "price"))
	mileage := ParseInt(firstValue(raw, "mileage_km", "mileage"))
	year := ParseInt(firstValue(raw, "year"))
	model := NormalizeText(firstString(raw, "model"))
	provinceCity := CanonicalizeLocation(firstString(raw, "province_city", "location", "city"))
	link := NormalizeText(firstString(raw, "link", "url"))

	var extra map[string]any

	for k, v := range raw {
		if _, known := canonicalKeys[k]; known {
			continue
		}

		if extra == nil {
			extra = make(map[string]any)
		}

		extra[k] = v
	}

	return models.CanonicalListing{
		Title:        title,
		Price:        price,
		MileageKM:    mileage,
		Year:         year,
		Model:        model,
		ProvinceCity: provinceCity,
		Link:         link,
		Source:       source,
		Extra:        extra,
	}
}

// firstValue returns the first non-nil value among the given keys.
func firstValue(raw models.RawListing, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

// firstString returns the first key whose value renders to a non-empty
// string.
func firstString(raw models.RawListing, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}

		if s := Stringify(v); s != "" {
			return s
		}
	}

	return ""
}
