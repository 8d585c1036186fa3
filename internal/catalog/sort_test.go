package catalog_test

import (
	"testing"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/domain"
)

func TestSortKeyRoundTrip(t *testing.T) {
	for _, key := range catalog.SortKeys() {
		if got := catalog.ParseSortKey(key.String()); got != key {
			t.Errorf("ParseSortKey(%q): expected %v, got %v", key.String(), key, got)
		}
	}
}

func TestParseSortKeyUnknownFallsBackToDefault(t *testing.T) {
	for _, s := range []string{"", "rating-desc", "DATE-DESC"} {
		if got := catalog.ParseSortKey(s); got != catalog.SortDefault {
			t.Errorf("ParseSortKey(%q): expected SortDefault, got %v", s, got)
		}
	}
}

func TestTitleSortIgnoresCase(t *testing.T) {
	e := newEngine([]domain.Show{
		mkshow("1", "watergate", day(1)),
		mkshow("2", "Believed", day(1)),
		mkshow("3", "crime junkie", day(1)),
	})
	e.SetSortKey(catalog.SortTitleAsc)

	v := e.DeriveView()
	if !equalIDs(ids(v.Shows), "2", "3", "1") {
		t.Errorf("case-insensitive title-asc: got %v", ids(v.Shows))
	}
}
