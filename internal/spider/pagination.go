package spider

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// paginationLinkSelector matches kijiji's pagination widget entries.
const paginationLinkSelector = `li[data-testid="pagination-list-item"] a[data-testid="pagination-link-item"]`

// pageNumberPattern extracts the page number from a pagination href.
var pageNumberPattern = regexp.MustCompile(`/page-(\d+)/`)

// detectLastPage drives a headless browser to the first listing page and
// reads the highest page number out of the pagination links. The grid
// itself is fetched with plain HTTP afterwards; the browser exists only
// because the pagination widget is rendered client-side.
func detectLastPage(url string) (int, error) {
	pw, err := playwright.Run()
	if err != nil {
		return 1, fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return 1, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return 1, fmt.Errorf("failed to open page: %w", err)
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return 1, fmt.Errorf("failed to load %s: %w", url, err)
	}

	links, err := page.Locator(paginationLinkSelector).All()
	if err != nil || len(links) == 0 {
		// No pagination widget means a single page of results.
		return 1, nil
	}

	href, err := links[len(links)-1].GetAttribute("href")
	if err != nil {
		return 1, nil
	}

	return lastPageFromHref(href), nil
}

// lastPageFromHref parses the page number out of a pagination link href,
// defaulting to 1.
func lastPageFromHref(href string) int {
	m := pageNumberPattern.FindStringSubmatch(href)
	if m == nil {
		return 1
	}

	var n int
	if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil || n < 1 {
		return 1
	}

	return n
}
