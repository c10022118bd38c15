package spider

import (
	"testing"

	"carcrawl/internal/catalog"
	"carcrawl/internal/normalize"
)

const kijijiPageFixture = `
<html><body><ul>
<li data-testid="listing-card-list-item-0">
  <a data-testid="listing-link" href="/v-cars-trucks/toronto/2021-mini-countryman/1234">2021 MINI Countryman S | Premium Package</a>
  <p data-testid="autos-listing-price">$25,000</p>
  <div class="sc-eb45309b-0 bOFieq"><span>Great Price!</span></div>
  <p data-testid="listing-location">Toronto, ON</p>
  <p class="sc-991ea11d-0 epsmyv sc-4b5a8895-2 eEvVV">40,000 km</p>
  <p class="sc-991ea11d-0 epsmyv sc-4b5a8895-2 eEvVV">Automatic</p>
  <p class="sc-991ea11d-0 epsmyv sc-4b5a8895-2 eEvVV">Gas</p>
</li>
<li data-testid="listing-card-list-item-1">
  <a data-testid="listing-link" href="https://www.kijiji.ca/v-cars-trucks/5678">2018 Cooper</a>
  <p data-testid="autos-listing-price">Please contact</p>
</li>
</ul></body></html>`

func newKijijiForTest() *Kijiji {
	parser := normalize.NewTitleParser(catalog.Default())

	return NewKijiji("mini", "canada", parser)
}

func TestKijiji_ParsePage(t *testing.T) {
	listings := newKijijiForTest().ParsePage(kijijiPageFixture)

	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	first := listings[0]

	if first.Title == nil || *first.Title != "2021 MINI Countryman S | Premium Package" {
		t.Errorf("Title = %v", first.Title)
	}

	if first.Price == nil || *first.Price != 25000 {
		t.Errorf("Price = %v, want 25000", first.Price)
	}

	if first.MileageKM == nil || *first.MileageKM != 40000 {
		t.Errorf("MileageKM = %v, want 40000", first.MileageKM)
	}

	if first.Transmission == nil || *first.Transmission != "Automatic" {
		t.Errorf("Transmission = %v, want Automatic", first.Transmission)
	}

	if first.Fuel == nil || *first.Fuel != "Gas" {
		t.Errorf("Fuel = %v, want Gas", first.Fuel)
	}

	if first.Year == nil || *first.Year != 2021 {
		t.Errorf("Year = %v, want 2021", first.Year)
	}

	if first.Model == nil || *first.Model != "Countryman" {
		t.Errorf("Model = %v, want Countryman", first.Model)
	}

	if first.DealTag == nil || *first.DealTag != "Great" {
		t.Errorf("DealTag = %v, want Great", first.DealTag)
	}

	if first.ProvinceCity == nil || *first.ProvinceCity != "Toronto, ON" {
		t.Errorf("ProvinceCity = %v", first.ProvinceCity)
	}

	// Relative hrefs are made absolute.
	if first.Link == nil || *first.Link != "https://www.kijiji.ca/v-cars-trucks/toronto/2021-mini-countryman/1234" {
		t.Errorf("Link = %v", first.Link)
	}
}

func TestKijiji_ParsePage_SparseCard(t *testing.T) {
	listings := newKijijiForTest().ParsePage(kijijiPageFixture)
	second := listings[1]

	if second.Price != nil {
		t.Errorf("Price = %d, want nil for unparseable price", *second.Price)
	}

	if second.MileageKM != nil {
		t.Errorf("MileageKM = %d, want nil", *second.MileageKM)
	}

	// Controlled-vocabulary fields degrade to Unknown, never null, on a
	// source that carries them.
	if second.Transmission == nil || *second.Transmission != "Unknown" {
		t.Errorf("Transmission = %v, want Unknown", second.Transmission)
	}

	if second.DealTag == nil || *second.DealTag != "Unknown" {
		t.Errorf("DealTag = %v, want Unknown", second.DealTag)
	}

	if second.Model == nil || *second.Model != "Cooper" {
		t.Errorf("Model = %v, want Cooper", second.Model)
	}

	// Absolute hrefs are kept as-is.
	if second.Link == nil || *second.Link != "https://www.kijiji.ca/v-cars-trucks/5678" {
		t.Errorf("Link = %v", second.Link)
	}
}

func TestKijiji_ParsePage_EmptyDocument(t *testing.T) {
	if got := newKijijiForTest().ParsePage("<html><body></body></html>"); len(got) != 0 {
		t.Errorf("got %d listings from empty page, want 0", len(got))
	}
}

func TestKijiji_PageURL(t *testing.T) {
	k := newKijijiForTest()

	want := "https://www.kijiji.ca/b-cars-trucks/canada/mini/page-3/c174l0a54?view=list"
	if got := k.PageURL(3); got != want {
		t.Errorf("PageURL(3) = %q, want %q", got, want)
	}
}

func TestLastPageFromHref(t *testing.T) {
	tests := []struct {
		href string
		want int
	}{
		{"/b-cars-trucks/canada/mini/page-17/c174l0a54", 17},
		{"/b-cars-trucks/canada/mini/c174l0a54", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := lastPageFromHref(tt.href); got != tt.want {
			t.Errorf("lastPageFromHref(%q) = %d, want %d", tt.href, got, tt.want)
		}
	}
}
