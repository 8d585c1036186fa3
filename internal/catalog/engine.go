// Package catalog implements the catalog query engine: it owns the full
// show dataset for the session and derives the filtered, sorted, paginated
// view the presentation layer renders. All operations are synchronous state
// transitions over in-memory data and cannot fail; out-of-range input is
// clamped during derivation rather than rejected.
package catalog

import (
	"log/slog"
	"strings"

	"github.com/kpeters/castdeck/internal/domain"
)

// GenreAll disables the genre filter.
const GenreAll = 0

// View is the derived, renderable slice of the catalog.
type View struct {
	Shows        []domain.Show // the current page
	Page         int           // clamped current page, 1-based
	TotalPages   int           // always >= 1, even for an empty result
	TotalMatches int           // size of the filtered set before paging
}

// Engine holds the dataset and the current query parameters. It is not
// safe for concurrent use: all mutation is expected to happen on the
// single event loop that owns it.
type Engine struct {
	shows   []domain.Show
	loading bool
	err     error

	search   string
	genre    int
	sortKey  SortKey
	page     int // requested page, clamped only in DeriveView
	pageSize int

	logger *slog.Logger
}

// NewEngine creates an engine with an empty dataset in the loading state.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		loading:  true,
		genre:    GenreAll,
		page:     1,
		pageSize: MobilePageSize,
		logger:   logger,
	}
}

// SetShows replaces the dataset wholesale. Query parameters survive a
// replacement so a refresh keeps the user's place.
func (e *Engine) SetShows(shows []domain.Show) {
	e.shows = shows
	e.loading = false
	e.err = nil
	e.logger.Debug("catalog dataset replaced", "count", len(shows))
}

// SetError records a terminal fetch failure.
func (e *Engine) SetError(err error) {
	e.err = err
	e.loading = false
}

// Loading reports whether the initial dataset fetch is still outstanding.
func (e *Engine) Loading() bool { return e.loading }

// Err returns the dataset fetch error, if any.
func (e *Engine) Err() error { return e.err }

// SetSearch updates the free-text title filter and resets to page 1.
func (e *Engine) SetSearch(text string) {
	e.search = text
	e.page = 1
}

// Search returns the current search text.
func (e *Engine) Search() string { return e.search }

// SetGenre updates the genre filter (GenreAll to disable) and resets to
// page 1. The id is not checked against the genre table: an unmatched id
// simply filters to an empty view.
func (e *Engine) SetGenre(id int) {
	e.genre = id
	e.page = 1
}

// Genre returns the current genre filter.
func (e *Engine) Genre() int { return e.genre }

// SetSortKey updates the sort order and resets to page 1.
func (e *Engine) SetSortKey(key SortKey) {
	e.sortKey = key
	e.page = 1
}

// SortKey returns the current sort order.
func (e *Engine) SortKey() SortKey { return e.sortKey }

// SetPage records the requested page. Out-of-range values are accepted
// here and clamped during derivation.
func (e *Engine) SetPage(n int) {
	e.page = n
}

// NextPage advances one page, stopping at the last one. The step starts
// from the clamped position so repeated presses at a boundary cannot
// accumulate an out-of-range request.
func (e *Engine) NextPage() {
	pages := e.pageCount()
	page := clampPage(e.page, pages) + 1
	if page > pages {
		page = pages
	}
	e.page = page
}

// PrevPage moves one page back, stopping at the first one.
func (e *Engine) PrevPage() {
	pages := e.pageCount()
	page := clampPage(e.page, pages) - 1
	if page < 1 {
		page = 1
	}
	e.page = page
}

// SetViewportWidth recomputes the page size from the viewport width. It is
// independent of the other parameters and deliberately does not reset the
// requested page.
func (e *Engine) SetViewportWidth(width int) {
	e.pageSize = PageSizeFor(width)
}

// PageSize returns the current derived page size.
func (e *Engine) PageSize() int { return e.pageSize }

// matches reports whether a show passes the current search and genre
// filters. query must already be trimmed and lowercased.
func (e *Engine) matches(show domain.Show, query string) bool {
	if query != "" && !strings.Contains(strings.ToLower(show.Title), query) {
		return false
	}
	if e.genre != GenreAll && !show.HasGenre(e.genre) {
		return false
	}
	return true
}

// pageCount derives the page total for the current filters without
// materializing the filtered slice.
func (e *Engine) pageCount() int {
	query := strings.ToLower(strings.TrimSpace(e.search))
	n := 0
	for _, show := range e.shows {
		if e.matches(show, query) {
			n++
		}
	}
	pages := (n + e.pageSize - 1) / e.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// clampPage bounds a requested page into [1, pages].
func clampPage(page, pages int) int {
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// DeriveView computes the visible page from the dataset and the current
// query parameters. It never mutates the dataset's order and is safe to
// call on every read.
func (e *Engine) DeriveView() View {
	filtered := make([]domain.Show, 0, len(e.shows))

	query := strings.ToLower(strings.TrimSpace(e.search))
	for _, show := range e.shows {
		if e.matches(show, query) {
			filtered = append(filtered, show)
		}
	}

	applySort(filtered, e.sortKey)

	totalPages := (len(filtered) + e.pageSize - 1) / e.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := clampPage(e.page, totalPages)

	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View{
		Shows:        filtered[start:end],
		Page:         page,
		TotalPages:   totalPages,
		TotalMatches: len(filtered),
	}
}
