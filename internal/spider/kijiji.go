package spider

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"carcrawl/internal/models"
	"carcrawl/internal/normalize"
)

const kijijiBase = "https://www.kijiji.ca"

// fuel keywords kijiji shows in the detail strip.
var kijijiFuelTypes = []string{"gas", "diesel", "electric", "hybrid"}

// Kijiji scrapes kijiji.ca car listing pages. Kijiji renders the listing
// grid server-side but only exposes the last page number through its
// pagination widget, so page discovery goes through a headless browser.
type Kijiji struct {
	brand    string
	location string
	parser   TitleParser
}

// NewKijiji creates the kijiji adapter for a brand and location.
func NewKijiji(brand, location string, parser TitleParser) *Kijiji {
	return &Kijiji{
		brand:    strings.ToLower(brand),
		location: strings.ToLower(location),
		parser:   parser,
	}
}

// Name implements Site.
func (k *Kijiji) Name() string { return "kijiji.ca" }

// Slug implements Site.
func (k *Kijiji) Slug() string { return "kijiji" }

// listURL is the first listing page, also used for pagination discovery.
func (k *Kijiji) listURL() string {
	return fmt.Sprintf("%s/b-cars-trucks/%s/%s/c174l0a54?view=list", kijijiBase, k.location, k.brand)
}

// PageURL implements Site.
func (k *Kijiji) PageURL(page int) string {
	return fmt.Sprintf("%s/b-cars-trucks/%s/%s/page-%d/c174l0a54?view=list", kijijiBase, k.location, k.brand, page)
}

// DiscoverPages implements Site by reading the last pagination link with a
// headless browser. Any failure degrades to a single page.
func (k *Kijiji) DiscoverPages(_ *Scraper) (int, error) {
	return detectLastPage(k.listURL())
}

// ParsePage implements Site: one listing per result card.
func (k *Kijiji) ParsePage(html string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var listings []models.Listing

	doc.Find(`li[data-testid^="listing-card-list-item"]`).Each(func(_ int, li *goquery.Selection) {
		titleTag := li.Find(`a[data-testid="listing-link"]`).First()

		title := strings.TrimSpace(titleTag.Text())
		price := strings.TrimSpace(li.Find(`p[data-testid="autos-listing-price"]`).First().Text())
		dealTagRaw := strings.TrimSpace(li.Find(`div.sc-eb45309b-0.bOFieq span`).First().Text())
		provinceCity := strings.TrimSpace(li.Find(`p[data-testid="listing-location"]`).First().Text())

		link, _ := titleTag.Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = kijijiBase + link
		}

		// The detail strip mixes mileage, transmission and fuel in
		// indistinguishable <p> tags; classify by content.
		var mileage, transmission, fuel string

		li.Find(`p.sc-991ea11d-0.epsmyv.sc-4b5a8895-2.eEvVV`).Each(func(_ int, d *goquery.Selection) {
			text := strings.ToLower(strings.TrimSpace(d.Text()))

			switch {
			case strings.Contains(text, "km"):
				mileage = text
			case strings.Contains(text, "automatic") || strings.Contains(text, "manual"):
				transmission = text
			case containsAny(text, kijijiFuelTypes):
				fuel = text
			}
		})

		year, model := k.parser.Parse(title, k.brand)

		listings = append(listings, models.Listing{
			Title:        normalize.NormalizeText(title),
			Price:        normalize.ParseInt(price),
			MileageKM:    normalize.ParseInt(mileage),
			Transmission: controlledValue(transmission),
			Fuel:         controlledValue(fuel),
			Year:         year,
			Model:        model,
			DealTag:      models.StrPtr(normalize.CleanDealTag(dealTagRaw)),
			ProvinceCity: normalize.NormalizeText(provinceCity),
			Link:         normalize.NormalizeText(link),
		})
	})

	return listings
}

// controlledValue normalizes a controlled-vocabulary value, degrading to
// "Unknown" when the source card did not carry it.
func controlledValue(s string) *string {
	if strings.TrimSpace(s) == "" {
		return models.StrPtr("Unknown")
	}

	return models.StrPtr(normalize.Capitalize(s))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
