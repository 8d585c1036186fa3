package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/tui/styles"
)

// Detail is the single-show view: header, season selector, episode list.
// It owns the fetched ShowDetail for its lifetime; the data is discarded
// when the view closes and re-fetched on the next visit.
type Detail struct {
	showID    string
	navGenres []int // genre ids carried over from the catalog card
	detail    *domain.ShowDetail
	err       error
	loading   bool

	seasonIdx int
	epOffset  int
	width     int
	height    int
}

// NewDetail creates a new detail component
func NewDetail() Detail {
	return Detail{}
}

// Open starts a fresh detail visit for the given show. The genre ids from
// the catalog card travel with the navigation so genres can render before
// (or without) the detail payload supplying its own titles.
func (d *Detail) Open(showID string, navGenres []int) {
	d.showID = showID
	d.navGenres = navGenres
	d.detail = nil
	d.err = nil
	d.loading = true
	d.seasonIdx = 0
	d.epOffset = 0
}

// Close discards the visit's data
func (d *Detail) Close() {
	d.showID = ""
	d.detail = nil
	d.err = nil
	d.loading = false
}

// ShowID returns the id of the show being viewed ("" when closed)
func (d Detail) ShowID() string { return d.showID }

// Loading reports whether the visit's fetch is still outstanding
func (d Detail) Loading() bool { return d.loading }

// IsOpen returns whether a detail visit is in progress
func (d Detail) IsOpen() bool { return d.showID != "" }

// SetDetail delivers the fetched payload. The season index is re-clamped
// in case the user navigated here with a stale index.
func (d *Detail) SetDetail(detail *domain.ShowDetail) {
	d.detail = detail
	d.loading = false
	d.err = nil
	if d.seasonIdx >= len(detail.Seasons) {
		d.seasonIdx = 0
	}
}

// SetError records a terminal fetch failure for this visit
func (d *Detail) SetError(err error) {
	d.err = err
	d.loading = false
}

// SetSize updates the component dimensions
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// NextSeason selects the next season, if any
func (d *Detail) NextSeason() {
	if d.detail != nil && d.seasonIdx < len(d.detail.Seasons)-1 {
		d.seasonIdx++
		d.epOffset = 0
	}
}

// PrevSeason selects the previous season, if any
func (d *Detail) PrevSeason() {
	if d.seasonIdx > 0 {
		d.seasonIdx--
		d.epOffset = 0
	}
}

// ScrollDown scrolls the episode list down
func (d *Detail) ScrollDown() {
	if season := d.currentSeason(); season != nil && d.epOffset < len(season.Episodes)-1 {
		d.epOffset++
	}
}

// ScrollUp scrolls the episode list up
func (d *Detail) ScrollUp() {
	if d.epOffset > 0 {
		d.epOffset--
	}
}

func (d Detail) currentSeason() *domain.Season {
	if d.detail == nil || len(d.detail.Seasons) == 0 {
		return nil
	}
	idx := d.seasonIdx
	if idx >= len(d.detail.Seasons) {
		idx = 0
	}
	return &d.detail.Seasons[idx]
}

// genreLine renders the genre chips, preferring the detail payload's own
// titles and falling back to the ids carried across the navigation.
func (d Detail) genreLine() string {
	if d.detail != nil && len(d.detail.GenreTitles) > 0 {
		return strings.Join(d.detail.GenreTitles, " · ")
	}
	return strings.Join(domain.GenreTitles(d.navGenres), " · ")
}

// View renders the detail view
func (d Detail) View() string {
	if d.loading {
		return styles.DimStyle.Render("Loading show...")
	}
	if d.err != nil {
		return styles.ErrorStyle.Render("Failed to load show: " + d.err.Error())
	}
	if d.detail == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(d.detail.Title))
	if g := d.genreLine(); g != "" {
		b.WriteString("\n" + styles.AccentStyle.Render(g))
	}
	if desc := d.detail.Description; desc != "" {
		b.WriteString("\n\n" + styles.SubtitleStyle.Render(wrap(desc, d.width-4, 4)))
	}

	season := d.currentSeason()
	if season == nil {
		b.WriteString("\n\n" + styles.DimStyle.Render("No seasons available."))
		return b.String()
	}

	b.WriteString("\n\n" + styles.HighlightStyle.Render(
		fmt.Sprintf("‹ %s ›", season.DisplayTitle())) +
		"  " + styles.DimStyle.Render(
		fmt.Sprintf("%d/%d · %s", d.seasonIdx+1, len(d.detail.Seasons), season.EpisodeLabel())))

	visible := d.visibleEpisodes()
	for _, ep := range season.Episodes[d.epOffset : d.epOffset+visible] {
		b.WriteString("\n" + styles.AccentStyle.Render(ep.Code()) + " " +
			styles.SubtitleStyle.Render(truncate(ep.Title, d.width-8)))
	}
	if d.epOffset+visible < len(season.Episodes) {
		b.WriteString("\n" + styles.DimStyle.Render("↓ more"))
	}

	return b.String()
}

// visibleEpisodes returns how many episode lines fit below the header
func (d Detail) visibleEpisodes() int {
	season := d.currentSeason()
	if season == nil {
		return 0
	}
	avail := d.height - 10
	if avail < 3 {
		avail = 3
	}
	if remaining := len(season.Episodes) - d.epOffset; remaining < avail {
		return remaining
	}
	return avail
}

// wrap naively wraps text at the given width with a hanging indent of 0,
// trimming to a handful of lines so long synopses don't push the episode
// list off screen.
func wrap(s string, width, maxLines int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
		} else if lipgloss.Width(line)+1+lipgloss.Width(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
			if len(lines) == maxLines {
				lines[maxLines-1] += "…"
				return strings.Join(lines, "\n")
			}
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
