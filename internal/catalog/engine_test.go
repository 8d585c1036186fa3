package catalog_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/domain"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

// mkshow builds a minimal show for engine tests.
func mkshow(id, title string, updated time.Time, genres ...int) domain.Show {
	return domain.Show{ID: id, Title: title, Updated: updated, Genres: genres}
}

func newEngine(shows []domain.Show) *catalog.Engine {
	e := catalog.NewEngine(nil)
	e.SetShows(shows)
	return e
}

func sampleShows() []domain.Show {
	return []domain.Show{
		mkshow("1", "Something Was Wrong", day(5), 1, 2),
		mkshow("2", "This Is Actually Happening", day(9), 2),
		mkshow("3", "Crime Junkie", day(2), 2, 8),
		mkshow("4", "Terrified", day(7), 7),
		mkshow("5", "The Letters of Enid Coleslaw", day(1), 7),
	}
}

func ids(shows []domain.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchFiltersBySubstringCaseInsensitive(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSearch("THIS")

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "2") {
		t.Errorf("expected only show 2, got %v", ids(v.Shows))
	}
}

func TestSearchMatchesAnywhereInTitle(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSearch("rifi")

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "4") {
		t.Errorf("expected only show 4, got %v", ids(v.Shows))
	}
}

func TestWhitespaceOnlySearchYieldsFullDataset(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSearch("   \t ")

	v := e.DeriveView()
	if v.TotalMatches != 5 {
		t.Errorf("whitespace-only search should match all 5 shows, got %d", v.TotalMatches)
	}
}

func TestGenreFilterMembership(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetGenre(2)

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "1", "2", "3") {
		t.Errorf("genre 2: expected shows 1,2,3 in dataset order, got %v", ids(v.Shows))
	}
}

func TestGenreAllYieldsFullDataset(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetGenre(7)
	e.SetGenre(catalog.GenreAll)

	v := e.DeriveView()
	if v.TotalMatches != 5 {
		t.Errorf("GenreAll should match all shows, got %d", v.TotalMatches)
	}
}

func TestUnmatchedGenreFiltersToEmptySinglePage(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetGenre(99)

	v := e.DeriveView()
	if len(v.Shows) != 0 {
		t.Errorf("unmatched genre should yield empty page, got %v", ids(v.Shows))
	}
	if v.TotalPages != 1 {
		t.Errorf("empty result should still have exactly one page, got %d", v.TotalPages)
	}
	if v.Page != 1 {
		t.Errorf("current page should clamp to 1, got %d", v.Page)
	}
}

func TestTitleSortAscThenDescReverses(t *testing.T) {
	e := newEngine(sampleShows())

	e.SetSortKey(catalog.SortTitleAsc)
	asc := ids(e.DeriveView().Shows)

	e.SetSortKey(catalog.SortTitleDesc)
	desc := ids(e.DeriveView().Shows)

	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc order is not the reverse of asc: asc=%v desc=%v", asc, desc)
		}
	}
}

func TestDateDescOrdersNewestFirst(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSortKey(catalog.SortDateDesc)

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "2", "4", "1", "3", "5") {
		t.Errorf("date-desc: got %v", ids(v.Shows))
	}
}

func TestDateSortIsStableForEqualTimestamps(t *testing.T) {
	shows := []domain.Show{
		mkshow("a", "Alpha", day(3)),
		mkshow("b", "Beta", day(3)),
		mkshow("c", "Gamma", day(3)),
		mkshow("d", "Delta", day(8)),
	}
	e := newEngine(shows)
	e.SetSortKey(catalog.SortDateDesc)

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "d", "a", "b", "c") {
		t.Errorf("equal timestamps should keep prior relative order, got %v", ids(v.Shows))
	}
}

func TestDefaultSortPreservesDatasetOrder(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSortKey(catalog.SortTitleAsc)
	e.SetSortKey(catalog.SortDefault)

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "1", "2", "3", "4", "5") {
		t.Errorf("default sort should preserve dataset order, got %v", ids(v.Shows))
	}
}

func TestPageClampingForOutOfRangeRequests(t *testing.T) {
	e := newEngine(sampleShows())

	for _, requested := range []int{0, -3, 7, 1000} {
		e.SetPage(requested)
		v := e.DeriveView()
		if v.Page < 1 || v.Page > v.TotalPages {
			t.Errorf("requested page %d: current page %d outside [1, %d]", requested, v.Page, v.TotalPages)
		}
	}
}

func TestPageStepsStopAtBounds(t *testing.T) {
	shows := make([]domain.Show, 25)
	for i := range shows {
		shows[i] = mkshow(fmt.Sprintf("%d", i), fmt.Sprintf("Show %02d", i), day(1))
	}
	e := newEngine(shows) // 3 pages at the default page size

	// Blocked presses at the last page must not accumulate: one PrevPage
	// afterwards moves immediately.
	e.SetPage(3)
	for i := 0; i < 5; i++ {
		e.NextPage()
	}
	e.PrevPage()
	if v := e.DeriveView(); v.Page != 2 {
		t.Errorf("one PrevPage from the last page should land on page 2, got %d", v.Page)
	}

	// Same at the first page.
	e.SetPage(1)
	for i := 0; i < 5; i++ {
		e.PrevPage()
	}
	e.NextPage()
	if v := e.DeriveView(); v.Page != 2 {
		t.Errorf("one NextPage from the first page should land on page 2, got %d", v.Page)
	}

	// A step from an out-of-range request starts at the clamped position.
	e.SetPage(1000)
	e.PrevPage()
	if v := e.DeriveView(); v.Page != 2 {
		t.Errorf("PrevPage from a clamped last page should land on page 2, got %d", v.Page)
	}
}

func TestParameterChangesResetPage(t *testing.T) {
	shows := make([]domain.Show, 30)
	for i := range shows {
		shows[i] = mkshow(fmt.Sprintf("%d", i), fmt.Sprintf("Show %02d", i), day(1+i%20))
	}

	reset := []struct {
		name  string
		apply func(*catalog.Engine)
	}{
		{"search", func(e *catalog.Engine) { e.SetSearch("show") }},
		{"genre", func(e *catalog.Engine) { e.SetGenre(catalog.GenreAll) }},
		{"sort", func(e *catalog.Engine) { e.SetSortKey(catalog.SortTitleAsc) }},
	}

	for _, tc := range reset {
		e := newEngine(shows)
		e.SetPage(3)
		tc.apply(e)
		if v := e.DeriveView(); v.Page != 1 {
			t.Errorf("%s change should reset to page 1, got %d", tc.name, v.Page)
		}
	}

	// A viewport change keeps the requested page.
	e := newEngine(shows)
	e.SetPage(2)
	e.SetViewportWidth(1560)
	if v := e.DeriveView(); v.Page != 2 {
		t.Errorf("viewport change should not reset the page, got %d", v.Page)
	}
}

func TestDatasetReplacementKeepsQueryParameters(t *testing.T) {
	e := newEngine(sampleShows())
	e.SetSearch("the")
	e.SetSortKey(catalog.SortTitleAsc)
	e.SetShows(sampleShows())

	if e.Search() != "the" {
		t.Errorf("search text should survive a dataset replacement, got %q", e.Search())
	}
	if e.SortKey() != catalog.SortTitleAsc {
		t.Errorf("sort key should survive a dataset replacement, got %v", e.SortKey())
	}
}

func TestPagination25Shows(t *testing.T) {
	shows := make([]domain.Show, 25)
	for i := range shows {
		shows[i] = mkshow(fmt.Sprintf("%d", i), fmt.Sprintf("Show %02d", i), day(1))
	}
	e := newEngine(shows)
	e.SetPage(3)

	v := e.DeriveView()
	if v.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", v.TotalPages)
	}
	if v.Page != 3 {
		t.Errorf("expected current page 3, got %d", v.Page)
	}
	if len(v.Shows) != 5 {
		t.Fatalf("expected 5 shows on last page, got %d", len(v.Shows))
	}
	if v.Shows[0].ID != "20" || v.Shows[4].ID != "24" {
		t.Errorf("expected shows 20..24, got %v", ids(v.Shows))
	}
}

func TestLoadingAndErrorState(t *testing.T) {
	e := catalog.NewEngine(nil)
	if !e.Loading() {
		t.Error("engine should start in the loading state")
	}

	e.SetError(domain.ErrSourceOffline)
	if e.Loading() {
		t.Error("a fetch failure should clear the loading flag")
	}
	if e.Err() != domain.ErrSourceOffline {
		t.Errorf("unexpected error value: %v", e.Err())
	}

	e.SetShows(sampleShows())
	if e.Err() != nil {
		t.Error("a successful dataset replacement should clear the error")
	}
}
