package spider

import (
	"fmt"
	"sync"

	"carcrawl/internal/config"
	"carcrawl/internal/logger"
	"carcrawl/internal/models"
)

// Site is one listing source adapter. Adapters only know their URLs and
// selectors; fetching, concurrency and result assembly are shared.
type Site interface {
	// Name is the source tag records carry, e.g. "kijiji.ca".
	Name() string
	// Slug is the short label used in file names, e.g. "kijiji".
	Slug() string
	// DiscoverPages determines how many listing pages exist.
	DiscoverPages(s *Scraper) (int, error)
	// PageURL builds the URL for a 1-based page number.
	PageURL(page int) string
	// ParsePage extracts listings from one page's HTML.
	ParsePage(html string) []models.Listing
}

// Crawl fetches every page of a site concurrently and assembles the
// per-source result. Page fetches are independent, so the pool is sized
// proportionally to the page count within the configured bounds; failed
// pages contribute zero listings rather than failing the crawl.
func Crawl(site Site, scraper *Scraper, pool config.PoolConfig, log *logger.Logger, brand, location string) models.SpiderResult {
	log = log.With("site", site.Name())

	pages, err := site.DiscoverPages(scraper)
	if err != nil || pages < 1 {
		if err != nil {
			log.Warn("page discovery failed, defaulting to 1 page", "error", err)
		}

		pages = 1
	}

	workers := pool.WorkerCount(pages)
	log.Info("starting crawl", "pages", pages, "workers", workers)

	perPage := make([][]models.Listing, pages)
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup

	for page := 1; page <= pages; page++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(page int) {
			defer wg.Done()
			defer func() { <-sem }()

			html, fetchErr := scraper.Fetch(site.PageURL(page))
			if fetchErr != nil {
				log.Warn("page fetch failed", "page", page, "error", fetchErr)

				return
			}

			listings := site.ParsePage(html)
			log.Debug("page fetched", "page", page, "listings", len(listings))
			perPage[page-1] = listings
		}(page)
	}

	wg.Wait()

	var all []models.Listing
	for _, ls := range perPage {
		all = append(all, ls...)
	}

	if all == nil {
		all = []models.Listing{}
	}

	return models.SpiderResult{
		Brand:      brand,
		Location:   location,
		TotalCount: len(all),
		TotalPages: pages,
		Source:     site.Name(),
		Listings:   all,
	}
}

// New returns the adapter for a configured site name.
func New(name, brand, location string, parser TitleParser) (Site, error) {
	switch name {
	case "kijiji":
		return NewKijiji(brand, location, parser), nil
	case "autotrader":
		return NewAutoTrader(brand, parser), nil
	default:
		return nil, fmt.Errorf("unknown site %q", name)
	}
}

// TitleParser is the slice of the normalize package spiders need.
type TitleParser interface {
	Parse(title, brand string) (*int, *string)
}
