package tui

import "github.com/kpeters/castdeck/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the full show listing has been fetched
type CatalogLoadedMsg struct {
	Shows []domain.Show
}

// ShowDetailLoadedMsg signals that a show's detail has been fetched
type ShowDetailLoadedMsg struct {
	ShowID string
	Detail *domain.ShowDetail
}

// ShowDetailFailedMsg signals that a show's detail fetch failed
type ShowDetailFailedMsg struct {
	ShowID string
	Err    error
}

// TickMsg drives the loading spinner animation
type TickMsg struct{}
