package domain

import (
	"fmt"
	"time"
)

// Show is a single catalog entry as returned by the catalog listing.
// Immutable once fetched; the catalog engine owns the dataset for the
// lifetime of the session.
type Show struct {
	ID          string    // Source-assigned unique identifier
	Title       string    // Display title
	Description string    // Short synopsis
	ImageURL    string    // Cover image URL
	Updated     time.Time // When the show last published
	Genres      []int     // Genre ids (may reference ids missing from the table)
	Seasons     int       // Total number of seasons
}

// HasGenre reports whether the show is tagged with the given genre id.
func (s Show) HasGenre(id int) bool {
	for _, g := range s.Genres {
		if g == id {
			return true
		}
	}
	return false
}

// FormattedUpdated returns the last-published date in a human-readable
// form, or an empty string when the source supplied no usable date.
func (s Show) FormattedUpdated() string {
	if s.Updated.IsZero() {
		return ""
	}
	return s.Updated.Format("Jan 2, 2006")
}

// SeasonLabel returns the season count for display ("1 Season", "4 Seasons").
func (s Show) SeasonLabel() string {
	if s.Seasons == 1 {
		return "1 Season"
	}
	return fmt.Sprintf("%d Seasons", s.Seasons)
}

// ShowDetail is the full record for a single show, fetched lazily when the
// user opens it. It is owned by the detail view and discarded on exit.
type ShowDetail struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Updated     time.Time
	GenreTitles []string // Genre names as supplied by the detail endpoint
	Seasons     []Season
}

// Season groups an ordered run of episodes.
type Season struct {
	Number      int
	Title       string
	Description string
	ImageURL    string
	Episodes    []Episode
}

// DisplayTitle returns the season title, falling back to "Season N" when
// the source left it blank.
func (s Season) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Season %d", s.Number)
}

// EpisodeLabel returns the episode count for display.
func (s Season) EpisodeLabel() string {
	if len(s.Episodes) == 1 {
		return "1 Episode"
	}
	return fmt.Sprintf("%d Episodes", len(s.Episodes))
}

// Episode is a single entry within a season.
type Episode struct {
	Number      int
	Title       string
	Description string
	AudioURL    string
}

// Code returns the formatted episode code within its season (e.g. "E05").
func (e Episode) Code() string {
	return fmt.Sprintf("E%02d", e.Number)
}
