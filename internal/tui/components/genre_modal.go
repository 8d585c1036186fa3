package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/tui/styles"
)

// GenreModal is a popup for picking the genre filter. The first entry is
// always "All Genres" (catalog.GenreAll).
type GenreModal struct {
	visible bool
	genres  []domain.Genre
	cursor  int
	active  int
}

// NewGenreModal creates a new genre modal backed by the static genre table
func NewGenreModal() GenreModal {
	return GenreModal{genres: domain.AllGenres()}
}

// Show displays the modal with the cursor on the active filter
func (m *GenreModal) Show(active int) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, g := range m.genres {
		if g.ID == active {
			m.cursor = i + 1 // slot 0 is All Genres
			break
		}
	}
}

// IsVisible returns whether the modal is shown
func (m GenreModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil it is the chosen genre id or catalog.GenreAll.
func (m *GenreModal) HandleKey(key string) (handled bool, selection *int) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.genres) {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := catalog.GenreAll
		if m.cursor > 0 {
			chosen = m.genres[m.cursor-1].ID
		}
		m.visible = false
		return true, &chosen
	case "esc", "g":
		m.visible = false
		return true, nil
	}

	return true, nil
}

// View renders the genre modal
func (m GenreModal) View() string {
	if !m.visible {
		return ""
	}

	row := func(slot int, id int, label string) string {
		prefix := "  "
		if id == m.active {
			prefix = "✓ "
		}
		text := fmt.Sprintf("%-26s", prefix+label)
		switch {
		case slot == m.cursor:
			return styles.HighlightStyle.Render(text)
		case id == m.active:
			return styles.AccentStyle.Render(text)
		default:
			return styles.SubtitleStyle.Render(text)
		}
	}

	lines := []string{row(0, catalog.GenreAll, "All Genres")}
	for i, g := range m.genres {
		lines = append(lines, row(i+1, g.ID, g.Title))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Padding(0, 1).
		Render(styles.TitleStyle.Render("Genre") + "\n" + strings.Join(lines, "\n"))
}
