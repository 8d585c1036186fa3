package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/search"
	"github.com/kpeters/castdeck/internal/service"
	"github.com/kpeters/castdeck/internal/tui/components"
)

// ApplicationState represents the current top-level view
type ApplicationState int

const (
	StateLoading ApplicationState = iota
	StateBrowsing
	StateDetail
	StateError
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState

	// Services
	CatalogSvc *service.CatalogService

	// Catalog query engine: owns the dataset and the derived view
	Engine *catalog.Engine

	// UI components
	Grid       components.Grid
	SearchBar  components.SearchBar
	SortModal  components.SortModal
	GenreModal components.GenreModal
	Omnibar    components.Omnibar
	Detail     components.Detail

	// Dimensions
	Width        int
	Height       int
	UnitsPerCell int

	// UI state
	Keys         KeyMap
	SpinnerFrame int
	FetchErr     error
}

// NewModel creates a new application model. initialWidth seeds the
// responsive page size before the first WindowSizeMsg arrives.
func NewModel(svc *service.CatalogService, engine *catalog.Engine, unitsPerCell, initialWidth int) Model {
	if unitsPerCell <= 0 {
		unitsPerCell = 10
	}
	engine.SetViewportWidth(initialWidth * unitsPerCell)

	return Model{
		State:        StateLoading,
		CatalogSvc:   svc,
		Engine:       engine,
		Grid:         components.NewGrid(),
		SearchBar:    components.NewSearchBar(),
		SortModal:    components.NewSortModal(),
		GenreModal:   components.NewGenreModal(),
		Omnibar:      components.NewOmnibar(),
		Detail:       components.NewDetail(),
		UnitsPerCell: unitsPerCell,
		Keys:         DefaultKeyMap(),
	}
}

// Init starts the catalog fetch and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.CatalogSvc),
		TickCmd(100*time.Millisecond),
	)
}

// refreshGrid re-derives the view after any parameter change
func (m *Model) refreshGrid() {
	m.Grid.SetView(m.Engine.DeriveView())
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// The layout-unit width drives the responsive page size; it is
		// independent of the other query parameters and never resets
		// the requested page.
		m.Engine.SetViewportWidth(msg.Width * m.UnitsPerCell)
		m.Grid.SetSize(msg.Width, msg.Height-chromeHeight)
		m.SearchBar.SetWidth(msg.Width - 4)
		m.Detail.SetSize(msg.Width, msg.Height)
		m.refreshGrid()
		return m, nil

	case TickMsg:
		if m.State == StateLoading || m.Detail.Loading() {
			m.SpinnerFrame++
			return m, TickCmd(100 * time.Millisecond)
		}
		return m, nil

	case CatalogLoadedMsg:
		m.Engine.SetShows(msg.Shows)
		m.Omnibar.SetIndex(search.NewIndex(msg.Shows))
		m.State = StateBrowsing
		m.refreshGrid()
		return m, nil

	case ErrMsg:
		m.Engine.SetError(msg.Err)
		m.FetchErr = msg
		m.State = StateError
		return m, nil

	case ShowDetailLoadedMsg:
		// A response for a show we already navigated away from is stale;
		// drop it rather than resurrect the old view.
		if m.Detail.ShowID() == msg.ShowID {
			m.Detail.SetDetail(msg.Detail)
		}
		return m, nil

	case ShowDetailFailedMsg:
		if m.Detail.ShowID() == msg.ShowID {
			m.Detail.SetError(msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses by state and modal visibility
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Plain-letter quit, except while typing in the search bar or omnibar
	if key.Matches(msg, m.Keys.Quit) && !m.SearchBar.Focused() && !m.Omnibar.IsVisible() {
		return m, tea.Quit
	}

	switch m.State {
	case StateLoading, StateError:
		return m, nil
	case StateDetail:
		return m.handleDetailKey(msg)
	}

	// Browsing state: modals take precedence over the grid
	if m.Omnibar.IsVisible() {
		cmd, chosen := m.Omnibar.Update(msg)
		if chosen != nil {
			return m.openDetail(chosen.ID, chosen.Genres)
		}
		return m, cmd
	}

	if handled, selection := m.SortModal.HandleKey(msg.String()); handled {
		if selection != nil {
			m.Engine.SetSortKey(*selection)
			m.Grid.ResetCursor()
			m.refreshGrid()
		}
		return m, nil
	}

	if handled, selection := m.GenreModal.HandleKey(msg.String()); handled {
		if selection != nil {
			m.Engine.SetGenre(*selection)
			m.Grid.ResetCursor()
			m.refreshGrid()
		}
		return m, nil
	}

	if m.SearchBar.Focused() {
		return m.handleSearchKey(msg)
	}

	return m.handleBrowseKey(msg)
}

// handleSearchKey updates the engine on every keystroke while the search
// bar is focused
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchBar.Blur()
		m.SearchBar.Clear()
		m.Engine.SetSearch("")
		m.Grid.ResetCursor()
		m.refreshGrid()
		return m, nil
	case "enter":
		m.SearchBar.Blur()
		return m, nil
	}

	cmd := m.SearchBar.Update(msg)
	m.Engine.SetSearch(m.SearchBar.Value())
	m.Grid.ResetCursor()
	m.refreshGrid()
	return m, cmd
}

// handleBrowseKey handles grid navigation and view switches
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Search):
		m.SearchBar.Focus()
		return m, nil

	case key.Matches(msg, m.Keys.Sort):
		m.SortModal.Show(m.Engine.SortKey())
		return m, nil

	case key.Matches(msg, m.Keys.Genre):
		m.GenreModal.Show(m.Engine.Genre())
		return m, nil

	case key.Matches(msg, m.Keys.Omnibar):
		m.Omnibar.Show()
		return m, nil

	case key.Matches(msg, m.Keys.Refresh):
		m.State = StateLoading
		return m, tea.Batch(LoadCatalogCmd(m.CatalogSvc), TickCmd(100*time.Millisecond))

	case key.Matches(msg, m.Keys.NextPage):
		m.Engine.NextPage()
		m.Grid.ResetCursor()
		m.refreshGrid()
		return m, nil

	case key.Matches(msg, m.Keys.PrevPage):
		m.Engine.PrevPage()
		m.Grid.ResetCursor()
		m.refreshGrid()
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		m.Grid.MoveUp()
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		m.Grid.MoveDown()
		return m, nil
	case key.Matches(msg, m.Keys.Left):
		m.Grid.MoveLeft()
		return m, nil
	case key.Matches(msg, m.Keys.Right):
		m.Grid.MoveRight()
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		if show := m.Grid.SelectedShow(); show != nil {
			return m.openDetail(show.ID, show.Genres)
		}
		return m, nil
	}

	return m, nil
}

// openDetail starts a detail visit. The show's genre ids travel with the
// navigation as display hints until the detail payload arrives.
func (m Model) openDetail(showID string, genres []int) (tea.Model, tea.Cmd) {
	m.Detail.Open(showID, genres)
	m.State = StateDetail
	return m, tea.Batch(
		LoadShowDetailCmd(m.CatalogSvc, showID),
		TickCmd(100*time.Millisecond),
	)
}

// handleDetailKey handles keys while the detail view is open
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back):
		m.Detail.Close()
		m.State = StateBrowsing
		return m, nil
	case key.Matches(msg, m.Keys.Left):
		m.Detail.PrevSeason()
		return m, nil
	case key.Matches(msg, m.Keys.Right):
		m.Detail.NextSeason()
		return m, nil
	case key.Matches(msg, m.Keys.Up):
		m.Detail.ScrollUp()
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		m.Detail.ScrollDown()
		return m, nil
	}
	return m, nil
}
