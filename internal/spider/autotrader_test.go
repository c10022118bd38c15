package spider

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"carcrawl/internal/catalog"
	"carcrawl/internal/config"
	"carcrawl/internal/normalize"
)

const autotraderPageFixture = `
<html><body>
<span class="title-count">1,234</span>
<div class="result-item">
  <span class="title-with-trim">2019 MINI Cooper S Turbo</span>
  <span class="price-amount">$19,500</span>
  <span class="kms">Mileage 60,000 km</span>
  <div class="proximity"><span class="proximity-text">Moncton, NB</span></div>
  <a class="inner-link" href="/a/mini/cooper/moncton/new%20brunswick/5_123456_abc/"></a>
</div>
<div class="result-item">
  <span class="title-with-trim">2020 MINI Countryman</span>
  <span class="price-amount">$28,000</span>
  <a class="inner-link" href="/a/mini/countryman/calgary/alberta/5_654321_def/"></a>
</div>
</body></html>`

func newAutoTraderForTest() *AutoTrader {
	parser := normalize.NewTitleParser(catalog.Default())

	return NewAutoTrader("mini", parser)
}

func TestAutoTrader_ParsePage(t *testing.T) {
	listings := newAutoTraderForTest().ParsePage(autotraderPageFixture)

	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	first := listings[0]

	if first.Title == nil || *first.Title != "2019 MINI Cooper S Turbo" {
		t.Errorf("Title = %v", first.Title)
	}

	if first.Price == nil || *first.Price != 19500 {
		t.Errorf("Price = %v, want 19500", first.Price)
	}

	if first.MileageKM == nil || *first.MileageKM != 60000 {
		t.Errorf("MileageKM = %v, want 60000", first.MileageKM)
	}

	if first.Year == nil || *first.Year != 2019 {
		t.Errorf("Year = %v, want 2019", first.Year)
	}

	if first.Model == nil || *first.Model != "Cooper S" {
		t.Errorf("Model = %v, want Cooper S", first.Model)
	}

	if first.ProvinceCity == nil || *first.ProvinceCity != "Moncton, NB" {
		t.Errorf("ProvinceCity = %v, want proximity box to win", first.ProvinceCity)
	}

	if first.Link == nil || *first.Link != "https://www.autotrader.ca/a/mini/cooper/moncton/new%20brunswick/5_123456_abc/" {
		t.Errorf("Link = %v", first.Link)
	}

	// Autotrader cards never carry transmission/fuel/deal tag.
	if first.Transmission != nil || first.Fuel != nil || first.DealTag != nil {
		t.Errorf("controlled fields should be absent: %+v", first)
	}
}

func TestAutoTrader_LocationFallbackFromHref(t *testing.T) {
	listings := newAutoTraderForTest().ParsePage(autotraderPageFixture)
	second := listings[1]

	if second.ProvinceCity == nil || *second.ProvinceCity != "calgary, alberta" {
		t.Errorf("ProvinceCity = %v, want href fallback calgary, alberta", second.ProvinceCity)
	}
}

func TestAutoTrader_PageURL(t *testing.T) {
	a := newAutoTraderForTest()

	want := "https://www.autotrader.ca/cars/mini/?rcp=100&rcs=200"
	if got := a.PageURL(3); got != want {
		t.Errorf("PageURL(3) = %q, want %q", got, want)
	}
}

func TestAutoTrader_DiscoverPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, autotraderPageFixture)
	}))
	defer srv.Close()

	a := newAutoTraderForTest()
	scraper := newTestScraper(srv.URL)

	pages, err := a.DiscoverPages(scraper)
	if err != nil {
		t.Fatalf("DiscoverPages failed: %v", err)
	}

	// 1234 results at 100 per page.
	if pages != 13 {
		t.Errorf("pages = %d, want 13", pages)
	}
}

func TestAutoTrader_DiscoverPages_NoCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body>no results</body></html>")
	}))
	defer srv.Close()

	pages, err := newAutoTraderForTest().DiscoverPages(newTestScraper(srv.URL))
	if err != nil {
		t.Fatalf("DiscoverPages failed: %v", err)
	}

	if pages != 1 {
		t.Errorf("pages = %d, want 1 when no count is shown", pages)
	}
}

// newTestScraper returns a scraper whose requests land on the test server
// regardless of the adapter's URL.
func newTestScraper(baseURL string) *Scraper {
	policy := &config.RetryPolicy{
		MaxAttempts:       1,
		InitialDelayMs:    0,
		MaxDelayMs:        0,
		BackoffMultiplier: 1.0,
		TimeoutSec:        5,
	}

	s := NewScraper(policy)
	s.client.Transport = rewriteTransport{base: baseURL}

	return s
}

type rewriteTransport struct {
	base string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	target := t.base + "/?" + req.URL.RawQuery

	redirected, err := http.NewRequest(req.Method, target, nil)
	if err != nil {
		return nil, err
	}

	return http.DefaultTransport.RoundTrip(redirected)
}
