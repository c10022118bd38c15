// Package main provides the merge command-line tool for deduplicating
// per-site result files into one dataset.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"carcrawl/internal/export"
	"carcrawl/internal/logger"
	"carcrawl/internal/merge"
	"carcrawl/internal/models"
	"carcrawl/internal/storage"
	"carcrawl/pkg/report"
)

func main() {
	outPath := flag.String("out", "results/merged_result.json", "Merged JSON output path")
	csvPath := flag.String("csv", "", "Also write the listings as CSV to this path")
	ndjsonPath := flag.String("ndjson", "", "Also write the listings as NDJSON to this path")
	dbPath := flag.String("db", "", "Also record the run in this SQLite database")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Println("Usage: merge [OPTIONS] <result.json> [result.json ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := logger.New(*logLevel)

	fmt.Printf("🔗 Merging %d source files\n", len(paths))

	inputs, err := merge.NewLoader().Load(paths)
	if err != nil {
		// A bad source file silently shrinks the dataset, so any load
		// failure aborts the whole run.
		log.Fatalf("❌ Failed to load source files:\n%v\n", err)
	}

	dataset, stats := merge.NewEngine(lg).Merge(inputs)

	printSummary(stats, dataset.TotalMerged)

	if err := (&export.JSONWriter{Path: *outPath}).Write(dataset); err != nil {
		log.Fatalf("❌ Failed to write merged JSON: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outPath)

	if *csvPath != "" {
		if err := (&export.CSVWriter{Path: *csvPath}).Write(dataset); err != nil {
			log.Fatalf("❌ Failed to write CSV: %v\n", err)
		}

		fmt.Printf("✅ CSV saved to: %s\n", *csvPath)
	}

	if *ndjsonPath != "" {
		if err := (&export.NDJSONWriter{Path: *ndjsonPath}).Write(dataset); err != nil {
			log.Fatalf("❌ Failed to write NDJSON: %v\n", err)
		}

		fmt.Printf("✅ NDJSON saved to: %s\n", *ndjsonPath)
	}

	if *dbPath != "" {
		saveToDatabase(*dbPath, dataset)
	}

	fmt.Println("\n✨ Merge complete!")
}

func printSummary(stats []merge.SourceStats, total int) {
	table := report.NewTable("source", "input", "kept", "dup links", "dup fingerprints")

	for _, s := range stats {
		table.AddRow(s.Label,
			strconv.Itoa(s.Input),
			strconv.Itoa(s.Kept),
			strconv.Itoa(s.DroppedByLink),
			strconv.Itoa(s.DroppedByFingerprint))
	}

	fmt.Println()
	fmt.Println(table.Render())
	fmt.Printf("\n📊 %d unique listings\n", total)
}

func saveToDatabase(path string, dataset models.MergedDataset) {
	store, err := storage.Open(path)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v\n", err)
	}
	defer store.Close()

	runID, err := store.SaveDataset(context.Background(), dataset)
	if err != nil {
		log.Fatalf("❌ Failed to save run: %v\n", err)
	}

	fmt.Printf("✅ Recorded run %d in %s\n", runID, path)
}
