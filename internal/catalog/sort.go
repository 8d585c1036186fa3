package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kpeters/castdeck/internal/domain"
)

// SortKey identifies one of the fixed catalog orderings.
type SortKey int

const (
	SortDefault SortKey = iota // catalog order as fetched
	SortDateDesc
	SortDateAsc
	SortTitleAsc
	SortTitleDesc
)

// String returns the wire/display name for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortDateDesc:
		return "date-desc"
	case SortDateAsc:
		return "date-asc"
	case SortTitleAsc:
		return "title-asc"
	case SortTitleDesc:
		return "title-desc"
	default:
		return "default"
	}
}

// Label returns the human-readable name for the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortDateDesc:
		return "Newest First"
	case SortDateAsc:
		return "Oldest First"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	default:
		return "Default"
	}
}

// ParseSortKey maps a wire name back to a SortKey. Unknown names fall back
// to SortDefault rather than erroring.
func ParseSortKey(s string) SortKey {
	switch s {
	case "date-desc":
		return SortDateDesc
	case "date-asc":
		return SortDateAsc
	case "title-asc":
		return SortTitleAsc
	case "title-desc":
		return SortTitleDesc
	default:
		return SortDefault
	}
}

// SortKeys returns every sort key in menu order.
func SortKeys() []SortKey {
	return []SortKey{SortDefault, SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc}
}

// titleCollator compares titles locale-aware and case-insensitively.
// Collators are not safe for concurrent use, but the engine is
// single-threaded by contract.
var titleCollator = collate.New(language.Und, collate.Loose)

// applySort orders shows in place per the sort key. The sort is stable so
// that ties keep their prior relative order and repeated derivations do not
// jitter.
func applySort(shows []domain.Show, key SortKey) {
	switch key {
	case SortTitleAsc:
		sort.SliceStable(shows, func(i, j int) bool {
			return titleCollator.CompareString(shows[i].Title, shows[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(shows, func(i, j int) bool {
			return titleCollator.CompareString(shows[i].Title, shows[j].Title) > 0
		})
	case SortDateAsc:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated.Before(shows[j].Updated)
		})
	case SortDateDesc:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated.After(shows[j].Updated)
		})
	}
}
