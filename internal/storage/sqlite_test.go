package storage

import (
	"context"
	"path/filepath"
	"testing"

	"carcrawl/internal/models"
)

func TestSQLiteStore_SaveDataset(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "listings.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	dataset := models.MergedDataset{
		Brand:       models.StrPtr("mini"),
		Location:    models.StrPtr("canada"),
		TotalMerged: 2,
		GeneratedAt: "2026-08-29T00:00:00Z",
		Sources:     []string{"autotrader.ca", "kijiji.ca"},
		Listings: []models.CanonicalListing{
			{
				Title:  models.StrPtr("2021 Countryman S"),
				Price:  models.IntPtr(25000),
				Source: "autotrader.ca",
				Extra:  map[string]any{"deal_tag": "Good"},
			},
			{
				Source: "kijiji.ca",
			},
		},
	}

	ctx := context.Background()

	runID, err := store.SaveDataset(ctx, dataset)
	if err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	if runID == 0 {
		t.Error("runID = 0, want assigned id")
	}

	n, err := store.CountListings(ctx, runID)
	if err != nil {
		t.Fatalf("CountListings failed: %v", err)
	}

	if n != 2 {
		t.Errorf("stored listings = %d, want 2", n)
	}
}

func TestSQLiteStore_SecondRunIsolated(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "listings.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	dataset := models.MergedDataset{
		TotalMerged: 1,
		GeneratedAt: "2026-08-29T00:00:00Z",
		Sources:     []string{"kijiji.ca"},
		Listings:    []models.CanonicalListing{{Source: "kijiji.ca"}},
	}

	first, err := store.SaveDataset(ctx, dataset)
	if err != nil {
		t.Fatalf("first SaveDataset failed: %v", err)
	}

	second, err := store.SaveDataset(ctx, dataset)
	if err != nil {
		t.Fatalf("second SaveDataset failed: %v", err)
	}

	if first == second {
		t.Fatal("runs share an id")
	}

	n, err := store.CountListings(ctx, second)
	if err != nil {
		t.Fatalf("CountListings failed: %v", err)
	}

	if n != 1 {
		t.Errorf("second run listings = %d, want 1", n)
	}
}
