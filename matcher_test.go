package fundbench

import "testing"

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"Axis Small Cap", "Axis Small Cap Fund"},
		{"", "Axis Small Cap Fund"},
		{"zzz", "Axis Small Cap Fund"},
		{"Axis Small Cap Fund", "Axis Small Cap Fund"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		if s < 0 || s > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], s)
		}
	}
}

func TestSimilarityCaseFolded(t *testing.T) {
	if s := Similarity("AXIS small CAP", "axis SMALL cap"); s != 1.0 {
		t.Errorf("Similarity() on case-folded identical strings = %v, want 1.0", s)
	}
	if s := Similarity("abc", "xyz"); s != 0 {
		t.Errorf("Similarity() with no common characters = %v, want 0", s)
	}
}

func TestMatchSingleSubstringHit(t *testing.T) {
	catalog := []CatalogEntry{
		{Code: 1, Name: "Parag Parikh Flexi Cap Fund"},
		{Code: 2, Name: "Axis Small Cap Fund - Direct Plan - Growth"},
	}
	m := Match("axis small cap", catalog)
	if m == nil {
		t.Fatal("Match() = nil, want a result")
	}
	if m.Entry.Code != 2 {
		t.Errorf("Match() selected code %d, want 2", m.Entry.Code)
	}
	if m.Score != 1.0 {
		t.Errorf("Match() single substring hit score = %v, want 1.0", m.Score)
	}
}

func TestMatchSubstringTieBreak(t *testing.T) {
	// Both names contain the query; the higher similarity must win.
	catalog := []CatalogEntry{
		{Code: 1, Name: "Axis Small Cap Fund"},
		{Code: 2, Name: "Axis Small Cap Direct Fund"},
	}
	query := "Axis Small Cap"

	m := Match(query, catalog)
	if m == nil {
		t.Fatal("Match() = nil, want a result")
	}

	// The winner is the argmax of the same similarity the matcher uses,
	// first maximal in catalog order.
	want := catalog[0]
	wantScore := Similarity(query, catalog[0].Name)
	if s := Similarity(query, catalog[1].Name); s > wantScore {
		want, wantScore = catalog[1], s
	}
	if m.Entry != want {
		t.Errorf("Match() selected %q, want %q", m.Entry.Name, want.Name)
	}
	if m.Score != wantScore {
		t.Errorf("Match() score = %v, want %v", m.Score, wantScore)
	}
	if m.Score >= 1.0 {
		t.Errorf("ambiguous substring match must carry a similarity < 1.0, got %v", m.Score)
	}
}

func TestMatchFuzzyFallback(t *testing.T) {
	catalog := []CatalogEntry{
		{Code: 1, Name: "Axis Small Cap Fund"},
		{Code: 2, Name: "Parag Parikh ELSS Tax Saver Fund"},
		{Code: 3, Name: "Mirae Asset Large Cap Fund"},
	}
	// Typo defeats the substring test, the fuzzy scan must still find it.
	query := "Paragg Parikh ELS Tax Saver"

	m := Match(query, catalog)
	if m == nil {
		t.Fatal("Match() = nil, want a result")
	}

	var want CatalogEntry
	wantScore := 0.0
	for _, e := range catalog {
		if s := Similarity(query, e.Name); s > wantScore {
			want, wantScore = e, s
		}
	}
	if m.Entry != want || m.Score != wantScore {
		t.Errorf("Match() = %q score %v, want %q score %v", m.Entry.Name, m.Score, want.Name, wantScore)
	}
}

func TestMatchFuzzyTieKeepsFirst(t *testing.T) {
	// Identical names: later equal scores must not replace the first.
	catalog := []CatalogEntry{
		{Code: 1, Name: "HDFC Top 100"},
		{Code: 2, Name: "HDFC Top 100"},
	}
	m := Match("HDFC Top100", catalog)
	if m == nil {
		t.Fatal("Match() = nil, want a result")
	}
	if m.Entry.Code != 1 {
		t.Errorf("Match() tie selected code %d, want the first (1)", m.Entry.Code)
	}
}

func TestMatchEmptyCatalog(t *testing.T) {
	if m := Match("anything", nil); m != nil {
		t.Errorf("Match() on empty catalog = %+v, want nil", m)
	}
}

func TestMatchNoPositiveScore(t *testing.T) {
	// No substring hit and zero similarity everywhere: no decision.
	catalog := []CatalogEntry{{Code: 1, Name: "xyz"}}
	if m := Match("abc", catalog); m != nil {
		t.Errorf("Match() with zero similarity = %+v, want nil", m)
	}
}
