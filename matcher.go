package fundbench

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// CatalogEntry is one fund of the reference catalog: an identifier and
// the canonical fund name. The catalog is read-only for a run.
type CatalogEntry struct {
	Code int    `json:"schemeCode"`
	Name string `json:"schemeName"`
}

// MatchResult is the catalog entry selected for a query, with the
// similarity score that selected it, in [0,1].
type MatchResult struct {
	Entry CatalogEntry
	Score float64
}

// Similarity returns the normalized character-level sequence-matching
// ratio between the two strings, case-folded, in [0,1]. 1.0 only for
// strings identical after case-folding.
//
// The exact ratio matters: it decides which fund wins an ambiguous
// query, so it must not be swapped for another fuzzy-scoring scheme.
func Similarity(a, b string) float64 {
	ra := strings.Split(strings.ToLower(a), "")
	rb := strings.Split(strings.ToLower(b), "")
	return difflib.NewMatcher(ra, rb).Ratio()
}

// Match resolves a free-text fund query to one catalog entry, or nil
// when the catalog is empty.
//
// A case-insensitive substring test runs first: a single hit is
// returned with score 1.0; among several hits the one with the highest
// Similarity to the query wins (first maximal in catalog order).
// With no substring hit, an exhaustive fuzzy scan returns the entry
// with the highest Similarity; on ties the first entry reaching the
// maximum wins, since later equal scores do not replace it.
func Match(query string, catalog []CatalogEntry) *MatchResult {
	needle := strings.ToLower(strings.TrimSpace(query))

	var hits []CatalogEntry
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			hits = append(hits, e)
		}
	}
	if len(hits) == 1 {
		return &MatchResult{Entry: hits[0], Score: 1.0}
	}
	if len(hits) > 1 {
		best, bestScore := hits[0], Similarity(query, hits[0].Name)
		for _, e := range hits[1:] {
			if s := Similarity(query, e.Name); s > bestScore {
				best, bestScore = e, s
			}
		}
		return &MatchResult{Entry: best, Score: bestScore}
	}

	// No substring hit: exhaustive fuzzy scan over the whole catalog.
	var best *CatalogEntry
	bestScore := 0.0
	for i := range catalog {
		if s := Similarity(query, catalog[i].Name); s > bestScore {
			best, bestScore = &catalog[i], s
		}
	}
	if best == nil {
		return nil
	}
	return &MatchResult{Entry: *best, Score: bestScore}
}
