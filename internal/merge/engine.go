package merge

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"carcrawl/internal/logger"
	"carcrawl/internal/models"
	"carcrawl/internal/normalize"
)

// SourceInput is one source's contribution to a merge: the decoded result
// file plus the label its records are tagged with.
type SourceInput struct {
	Label  string
	Result models.SourceResult
}

// SourceStats records what the engine did with one source's listings.
type SourceStats struct {
	Label                string
	Input                int
	Kept                 int
	DroppedByLink        int
	DroppedByFingerprint int
}

// Engine owns the merged sequence while it is being assembled. The two
// seen-sets are shared mutable state across the whole merge, so records
// are processed strictly in the fixed source-and-record order the caller
// supplies; that order is what makes the output deterministic.
type Engine struct {
	log *logger.Logger
}

// NewEngine creates a merge engine.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{log: log}
}

// Merge normalizes every listing from every source, deduplicates and
// returns the dataset plus per-source stats. Dedup precedence:
//
//  1. a non-nil link already seen drops the record before its
//     fingerprint is even computed;
//  2. otherwise the fingerprint is computed (link present or not) and a
//     seen fingerprint drops the record;
//  3. survivors keep encounter order, so the first source's records
//     precede later sources' survivors.
//
// Merging a dataset with itself yields the same survivors, so re-merge is
// idempotent.
func (e *Engine) Merge(inputs []SourceInput) (models.MergedDataset, []SourceStats) {
	seenLinks := mapset.NewThreadUnsafeSet[string]()
	seenFingerprints := mapset.NewThreadUnsafeSet[string]()

	var merged []models.CanonicalListing

	stats := make([]SourceStats, 0, len(inputs))

	for _, in := range inputs {
		st := SourceStats{Label: in.Label, Input: len(in.Result.Listings)}

		for _, raw := range in.Result.Listings {
			rec := normalize.BuildCanonical(raw, in.Label)

			if rec.Link != nil {
				if seenLinks.Contains(*rec.Link) {
					st.DroppedByLink++

					continue
				}

				seenLinks.Add(*rec.Link)
			}

			fp := Fingerprint(rec)
			if seenFingerprints.Contains(fp) {
				st.DroppedByFingerprint++

				continue
			}

			seenFingerprints.Add(fp)
			merged = append(merged, rec)
			st.Kept++
		}

		if e.log != nil {
			e.log.Debug("merged source",
				"source", st.Label,
				"input", st.Input,
				"kept", st.Kept,
				"dropped_link", st.DroppedByLink,
				"dropped_fingerprint", st.DroppedByFingerprint)
		}

		stats = append(stats, st)
	}

	if merged == nil {
		merged = []models.CanonicalListing{}
	}

	dataset := models.MergedDataset{
		Brand:       firstNonEmpty(inputs, func(r models.SourceResult) string { return r.Brand }),
		Location:    firstNonEmpty(inputs, func(r models.SourceResult) string { return r.Location }),
		TotalMerged: len(merged),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Sources:     labels(inputs),
		Listings:    merged,
	}

	return dataset, stats
}

// firstNonEmpty returns the first source's non-empty value for a metadata
// field, or nil when no source carries it.
func firstNonEmpty(inputs []SourceInput, get func(models.SourceResult) string) *string {
	for _, in := range inputs {
		if v := get(in.Result); v != "" {
			return &v
		}
	}

	return nil
}

func labels(inputs []SourceInput) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, in.Label)
	}

	return out
}
