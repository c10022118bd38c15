package spider

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"carcrawl/internal/models"
	"carcrawl/internal/normalize"
)

const (
	autotraderBase = "https://www.autotrader.ca"
	// resultsPerPage is the rcp value autotrader accepts.
	resultsPerPage = 100
)

// AutoTrader scrapes autotrader.ca search result pages. Pagination is
// offset-based, so the result count on the first page determines the page
// count without browser automation.
type AutoTrader struct {
	brand  string
	parser TitleParser
}

// NewAutoTrader creates the autotrader adapter for a brand.
func NewAutoTrader(brand string, parser TitleParser) *AutoTrader {
	return &AutoTrader{
		brand:  strings.ToLower(brand),
		parser: parser,
	}
}

// Name implements Site.
func (a *AutoTrader) Name() string { return "autotrader.ca" }

// Slug implements Site.
func (a *AutoTrader) Slug() string { return "autotrader" }

// PageURL implements Site.
func (a *AutoTrader) PageURL(page int) string {
	offset := (page - 1) * resultsPerPage

	return fmt.Sprintf("%s/cars/%s/?rcp=%d&rcs=%d", autotraderBase, a.brand, resultsPerPage, offset)
}

// DiscoverPages implements Site by reading the total result count from the
// first page.
func (a *AutoTrader) DiscoverPages(s *Scraper) (int, error) {
	html, err := s.Fetch(a.PageURL(1))
	if err != nil {
		return 1, fmt.Errorf("failed to fetch first page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 1, fmt.Errorf("failed to parse first page: %w", err)
	}

	countText := strings.TrimSpace(doc.Find("span.title-count").First().Text())
	countText = strings.ReplaceAll(countText, ",", "")

	total, err := strconv.Atoi(countText)
	if err != nil || total < 1 {
		return 1, nil
	}

	return int(math.Ceil(float64(total) / float64(resultsPerPage))), nil
}

// ParsePage implements Site: one listing per result item.
func (a *AutoTrader) ParsePage(html string) []models.Listing {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var listings []models.Listing

	doc.Find("div.result-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".title-with-trim").First().Text())
		price := strings.TrimSpace(item.Find(".price-amount").First().Text())
		mileage := strings.TrimSpace(item.Find(".kms").First().Text())

		linkTag := item.Find("a.inner-link").First()

		link, _ := linkTag.Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = autotraderBase + link
		}

		provinceCity := strings.TrimSpace(item.Find("div.proximity span.proximity-text").First().Text())
		if provinceCity == "" {
			provinceCity = locationFromHref(linkTag)
		}

		year, model := a.parser.Parse(title, a.brand)

		listings = append(listings, models.Listing{
			Title:        normalize.NormalizeText(title),
			Price:        normalize.ParseInt(price),
			MileageKM:    normalize.ParseInt(mileage),
			Year:         year,
			Model:        model,
			ProvinceCity: normalize.NormalizeText(provinceCity),
			Link:         normalize.NormalizeText(link),
		})
	})

	return listings
}

// locationFromHref recovers "City, Province" from a listing URL when the
// proximity box is absent. Detail URLs embed the city and province as the
// fourth- and third-to-last path segments.
func locationFromHref(linkTag *goquery.Selection) string {
	href, ok := linkTag.Attr("href")
	if !ok {
		return ""
	}

	parts := strings.Split(href, "/")
	if len(parts) < 6 {
		return ""
	}

	city, err := url.PathUnescape(parts[len(parts)-4])
	if err != nil {
		return ""
	}

	province, err := url.PathUnescape(parts[len(parts)-3])
	if err != nil {
		return ""
	}

	return city + ", " + province
}
