package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/tui/styles"
)

// chromeHeight is the number of lines taken by the header and footer
const chromeHeight = 4

// View renders the application
func (m Model) View() string {
	switch m.State {
	case StateLoading:
		return m.loadingView()
	case StateError:
		return m.errorView()
	case StateDetail:
		return m.detailView()
	default:
		return m.browseView()
	}
}

// loadingView renders the initial fetch spinner
func (m Model) loadingView() string {
	frame := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		styles.AccentStyle.Render(frame)+" Loading catalog...")
}

// errorView renders the terminal fetch failure. No retry is offered;
// restarting the program is the recovery path.
func (m Model) errorView() string {
	msg := "Something went wrong"
	if m.FetchErr != nil {
		msg = m.FetchErr.Error()
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		styles.ErrorStyle.Render("✗ "+msg))
}

// browseView renders the filter bar, the card grid, and the footer
func (m Model) browseView() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.Grid.View())
	b.WriteString("\n")
	b.WriteString(m.Grid.Footer())
	b.WriteString("\n")
	b.WriteString(m.footerHelp())

	// Modals replace the browse view, centered; bubbletea repaints the
	// full frame each cycle so nothing needs compositing underneath.
	if m.SortModal.IsVisible() {
		return m.centered(m.SortModal.View())
	}
	if m.GenreModal.IsVisible() {
		return m.centered(m.GenreModal.View())
	}
	if m.Omnibar.IsVisible() {
		return m.centered(m.Omnibar.View())
	}
	return b.String()
}

// headerView renders the search bar plus the active genre and sort state
func (m Model) headerView() string {
	parts := []string{m.SearchBar.View()}

	if g := m.Engine.Genre(); g != catalog.GenreAll {
		parts = append(parts, styles.GenreStyle.Render(domain.GenreTitle(g)))
	}
	if k := m.Engine.SortKey(); k != catalog.SortDefault {
		parts = append(parts, styles.AccentStyle.Render(k.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

// footerHelp renders the key hints line
func (m Model) footerHelp() string {
	hints := []string{
		"/ filter", "g genre", "s sort", "C-p jump", "[ ] page", "enter open", "R refresh", "q quit",
	}
	return styles.DimStyle.Render(strings.Join(hints, "  ·  "))
}

// detailView renders the single-show view
func (m Model) detailView() string {
	body := m.Detail.View()
	if m.Detail.Loading() {
		frame := styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)]
		body = styles.AccentStyle.Render(frame) + " " + body
	}
	footer := styles.DimStyle.Render("←/→ season  ·  ↑/↓ episodes  ·  esc back  ·  q quit")
	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n\n" + footer)
}

// centered places a modal in the middle of the screen
func (m Model) centered(modal string) string {
	if m.Width == 0 || m.Height == 0 {
		return modal
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
