package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpeters/castdeck/internal/service"
)

// Command factories for async operations. Each fetch is single-shot: it
// resolves to exactly one terminal message (loaded or error). Overlapping
// fetches are not deduplicated; the last response to arrive wins, and the
// detail handler drops responses whose show id no longer matches.

// LoadCatalogCmd fetches the full show listing
func LoadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		shows, err := svc.LoadCatalog(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Shows: shows}
	}
}

// LoadShowDetailCmd fetches the season/episode breakdown for one show
func LoadShowDetailCmd(svc *service.CatalogService, showID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		detail, err := svc.LoadShowDetail(ctx, showID)
		if err != nil {
			return ShowDetailFailedMsg{ShowID: showID, Err: err}
		}
		return ShowDetailLoadedMsg{ShowID: showID, Detail: detail}
	}
}

// TickCmd schedules the next spinner frame
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
