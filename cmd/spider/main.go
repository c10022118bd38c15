// Package main provides the spider command-line tool for crawling car
// listing sites into per-site result files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"carcrawl/internal/catalog"
	"carcrawl/internal/config"
	"carcrawl/internal/export"
	"carcrawl/internal/logger"
	"carcrawl/internal/normalize"
	"carcrawl/internal/spider"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	brand := flag.String("brand", "", "Brand to crawl (overrides config)")
	location := flag.String("location", "", "Location label for result files (overrides config)")
	site := flag.String("site", "", "Run a single site only (kijiji or autotrader)")
	outputDir := flag.String("output", "", "Result directory (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	if *brand != "" {
		cfg.Spider.Brand = *brand
	}

	if *location != "" {
		cfg.Spider.Location = *location
	}

	if *outputDir != "" {
		cfg.Spider.Output.Dir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	vocab := loadVocabulary(cfg)
	if !vocab.HasBrand(cfg.Spider.Brand) {
		fmt.Printf("⚠️  Brand %q has no known-model table; model extraction will be empty\n", cfg.Spider.Brand)
	}

	lg := logger.New(cfg.Spider.Logging.Level)
	parser := normalize.NewTitleParser(vocab)
	scraper := spider.NewScraper(&cfg.Spider.Retry)

	sites := cfg.GetEnabledSites()
	if *site != "" {
		sites = []config.SiteConfig{{Name: *site, Enabled: true}}
	}

	if len(sites) == 0 {
		lg.Error("no sites enabled")
		os.Exit(1)
	}

	fmt.Printf("🕷️  Car listing spider\n")
	fmt.Printf("Brand: %s, location: %s, sites: %d\n", cfg.Spider.Brand, cfg.Spider.Location, len(sites))
	fmt.Printf("Retry policy: max %d attempts, %.1fx backoff\n\n",
		cfg.Spider.Retry.MaxAttempts, cfg.Spider.Retry.BackoffMultiplier)

	failures := 0

	for i, siteCfg := range sites {
		fmt.Printf("📦 Site %d/%d: %s\n", i+1, len(sites), siteCfg.Name)

		adapter, err := spider.New(siteCfg.Name, cfg.Spider.Brand, cfg.Spider.Location, parser)
		if err != nil {
			lg.Error("unknown site, skipping", "site", siteCfg.Name, "error", err)
			failures++

			continue
		}

		result := spider.Crawl(adapter, scraper, cfg.Spider.Pool, lg, cfg.Spider.Brand, cfg.Spider.Location)

		outPath := cfg.ResultPath(adapter.Slug())
		if err := export.WriteSourceResult(outPath, result, cfg.Spider.Output.PrettyPrint); err != nil {
			lg.Error("failed to write result file", "site", siteCfg.Name, "error", err)
			failures++

			continue
		}

		fmt.Printf("✅ %s: %d listings across %d pages -> %s\n\n",
			adapter.Name(), result.TotalCount, result.TotalPages, outPath)
	}

	if failures > 0 {
		lg.Error("some sites failed", "failures", failures)
		os.Exit(1)
	}

	fmt.Println("✨ Crawl complete!")
}

// loadConfig resolves the effective configuration: explicit file, then
// configs/spider.yaml if present, then built-in defaults.
func loadConfig(path string) *config.Config {
	if path != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", path)

		cfg, err := config.Load(path)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		return cfg
	}

	defaultConfig := "configs/spider.yaml"
	if _, err := os.Stat(defaultConfig); err == nil {
		fmt.Printf("⚙️  Loading default configuration: %s\n", defaultConfig)

		cfg, err := config.Load(defaultConfig)
		if err != nil {
			log.Fatalf("❌ Failed to load default config: %v\n", err)
		}

		return cfg
	}

	fmt.Println("⚙️  Using built-in defaults")

	cfg := config.Default()
	cfg.ApplyEnv()

	return cfg
}

// loadVocabulary returns the known-model table, honoring a configured
// override file.
func loadVocabulary(cfg *config.Config) *catalog.Catalog {
	if cfg.Vocabulary.File == "" {
		return catalog.Default()
	}

	vocab, err := catalog.LoadYAML(cfg.Vocabulary.File)
	if err != nil {
		log.Fatalf("❌ Failed to load vocabulary file: %v\n", err)
	}

	return vocab
}

func printUsage() {
	fmt.Println("Usage: ./bin/spider [OPTIONS]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  1. Config-based:   ./bin/spider -config configs/spider.yaml")
	fmt.Println("  2. Default config: ./bin/spider (reads configs/spider.yaml if exists)")
	fmt.Println("  3. CLI arguments:  ./bin/spider -brand mini -site kijiji")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/spider -config configs/spider.yaml")
	fmt.Println("  ./bin/spider -brand mini -location canada -output results")
	fmt.Println("  ./bin/spider -site autotrader -brand honda")
}
