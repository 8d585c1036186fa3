package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/search"
	"github.com/kpeters/castdeck/internal/tui/styles"
)

const maxOmnibarResults = 8

// Omnibar is the fuzzy jump modal: type part of a title, pick a show,
// land on its detail view. It queries the prebuilt title index on every
// keystroke.
type Omnibar struct {
	input     textinput.Model
	index     *search.Index
	results   []search.Match
	cursor    int
	visible   bool
	prevQuery string
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Jump to show..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "» "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{input: ti}
}

// SetIndex replaces the title index (called when the dataset loads)
func (o *Omnibar) SetIndex(idx *search.Index) {
	o.index = idx
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// Update handles input and returns the chosen show, if any
func (o *Omnibar) Update(msg tea.Msg) (tea.Cmd, *domain.Show) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			o.Hide()
			return nil, nil
		case "up", "ctrl+k":
			if o.cursor > 0 {
				o.cursor--
			}
			return nil, nil
		case "down", "ctrl+j":
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return nil, nil
		case "enter":
			if o.cursor < len(o.results) {
				chosen := o.results[o.cursor].Show
				o.Hide()
				return nil, &chosen
			}
			return nil, nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)

	if query := o.input.Value(); query != o.prevQuery {
		o.prevQuery = query
		o.cursor = 0
		if o.index != nil {
			o.results = o.index.Query(query)
			if len(o.results) > maxOmnibarResults {
				o.results = o.results[:maxOmnibarResults]
			}
		}
	}

	return cmd, nil
}

// View renders the omnibar modal
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(o.input.View())

	for i, match := range o.results {
		b.WriteString("\n")
		line := fmt.Sprintf("%-40s", truncate(match.Show.Title, 40))
		if i == o.cursor {
			b.WriteString(styles.HighlightStyle.Render(line))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(line))
		}
	}
	if o.input.Value() != "" && len(o.results) == 0 {
		b.WriteString("\n" + styles.DimStyle.Render("No matches"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Padding(0, 1).
		Render(b.String())
}
