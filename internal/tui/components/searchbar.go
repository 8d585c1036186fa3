package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpeters/castdeck/internal/tui/styles"
)

// SearchBar is the inline title filter input. While focused, every
// keystroke is applied to the engine immediately; Escape clears the filter
// and Enter keeps it while returning focus to the grid.
type SearchBar struct {
	input   textinput.Model
	focused bool
}

// NewSearchBar creates a new search bar component
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Filter by title..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus activates the input
func (s *SearchBar) Focus() {
	s.focused = true
	s.input.Focus()
}

// Blur deactivates the input, keeping its value
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
}

// Clear resets the input to empty
func (s *SearchBar) Clear() {
	s.input.SetValue("")
}

// Focused returns whether the input is capturing keys
func (s SearchBar) Focused() bool { return s.focused }

// Value returns the current query text
func (s SearchBar) Value() string { return s.input.Value() }

// Update forwards a message to the underlying text input
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// SetWidth adjusts the input width
func (s *SearchBar) SetWidth(w int) {
	s.input.Width = w
}

// View renders the search bar
func (s SearchBar) View() string {
	if !s.focused && s.input.Value() == "" {
		return styles.DimStyle.Render("/ to filter")
	}
	return s.input.View()
}
