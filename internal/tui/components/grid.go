package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/tui/styles"
)

// Layout constants for the card grid
const (
	// CardCellWidth is one card's footprint in terminal columns, the cell
	// rendering of the 260-unit card.
	CardCellWidth = 26
)

// Grid renders one derived page of show cards and tracks the cursor
// within it. Which shows appear here is entirely the engine's decision;
// the grid only lays them out.
type Grid struct {
	view   catalog.View
	cursor int
	width  int
	height int
}

// NewGrid creates a new grid component
func NewGrid() Grid {
	return Grid{}
}

// SetView replaces the rendered page, clamping the cursor into it.
func (g *Grid) SetView(v catalog.View) {
	g.view = v
	if g.cursor >= len(v.Shows) {
		g.cursor = len(v.Shows) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

// CurrentView returns the currently rendered derived view.
func (g Grid) CurrentView() catalog.View { return g.view }

// SetSize updates the grid dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// columns returns how many cards fit on one row.
func (g Grid) columns() int {
	cols := g.width / CardCellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// MoveUp moves the cursor one row up
func (g *Grid) MoveUp() {
	if g.cursor-g.columns() >= 0 {
		g.cursor -= g.columns()
	}
}

// MoveDown moves the cursor one row down
func (g *Grid) MoveDown() {
	if g.cursor+g.columns() < len(g.view.Shows) {
		g.cursor += g.columns()
	}
}

// MoveLeft moves the cursor one card left
func (g *Grid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

// MoveRight moves the cursor one card right
func (g *Grid) MoveRight() {
	if g.cursor < len(g.view.Shows)-1 {
		g.cursor++
	}
}

// ResetCursor moves the cursor back to the first card
func (g *Grid) ResetCursor() {
	g.cursor = 0
}

// SelectedShow returns the show under the cursor, or nil for an empty page
func (g Grid) SelectedShow() *domain.Show {
	if len(g.view.Shows) == 0 {
		return nil
	}
	return &g.view.Shows[g.cursor]
}

// truncate shortens s to at most n display runes
func truncate(s string, n int) string {
	if n < 2 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// renderCard renders one show card
func (g Grid) renderCard(show domain.Show, selected bool) string {
	inner := CardCellWidth - 4 // border + padding

	title := truncate(show.Title, inner)

	meta := show.SeasonLabel()
	if d := show.FormattedUpdated(); d != "" {
		meta += " · " + d
	}
	meta = truncate(meta, inner)

	genres := truncate(strings.Join(domain.GenreTitles(show.Genres), ", "), inner)

	body := styles.TitleStyle.Render(title) + "\n" +
		styles.SubtitleStyle.Render(meta) + "\n" +
		styles.DimStyle.Render(genres)

	border := styles.InactiveBorder
	if selected {
		border = styles.ActiveBorder
	}
	return border.Width(CardCellWidth - 2).Padding(0, 1).Render(body)
}

// Footer returns the pagination line for the current page
func (g Grid) Footer() string {
	v := g.view
	label := "shows"
	if v.TotalMatches == 1 {
		label = "show"
	}
	return styles.DimStyle.Render(
		fmt.Sprintf("Page %d/%d · %d %s", v.Page, v.TotalPages, v.TotalMatches, label))
}

// View renders the card grid
func (g Grid) View() string {
	if len(g.view.Shows) == 0 {
		return styles.DimStyle.Render("No shows match the current filters.")
	}

	cols := g.columns()
	var rows []string
	for start := 0; start < len(g.view.Shows); start += cols {
		end := start + cols
		if end > len(g.view.Shows) {
			end = len(g.view.Shows)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(g.view.Shows[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}
