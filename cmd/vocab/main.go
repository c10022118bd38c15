// Package main provides the vocab command-line tool for inspecting and
// validating the known-model vocabulary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"carcrawl/internal/catalog"
)

func main() {
	file := flag.String("file", "", "Vocabulary YAML file (defaults to the built-in table)")
	dump := flag.Bool("dump", false, "Print the vocabulary as YAML")
	brand := flag.String("brand", "", "List the match candidates for one brand, longest first")

	flag.Parse()

	vocab := load(*file)

	switch {
	case *dump:
		data, err := vocab.MarshalYAML()
		if err != nil {
			log.Fatalf("❌ Failed to marshal vocabulary: %v\n", err)
		}

		os.Stdout.Write(data)

	case *brand != "":
		models := vocab.Models(*brand)
		if len(models) == 0 {
			log.Fatalf("❌ Unknown brand: %s\n", *brand)
		}

		fmt.Printf("%s (%d models):\n", strings.ToLower(*brand), len(models))

		for _, m := range models {
			fmt.Printf("  %s\n", m)
		}

	default:
		// Bare invocation validates the table and reports its shape.
		brands := vocab.Brands()
		total := 0

		for _, b := range brands {
			total += len(vocab.Models(b))
		}

		fmt.Printf("✅ Vocabulary OK: %d brands, %d models\n", len(brands), total)
	}
}

func load(file string) *catalog.Catalog {
	if file == "" {
		return catalog.Default()
	}

	vocab, err := catalog.LoadYAML(file)
	if err != nil {
		log.Fatalf("❌ Failed to load vocabulary file: %v\n", err)
	}

	return vocab
}
