// Package service orchestrates the data source client for the UI layer.
package service

import (
	"context"
	"log/slog"

	"github.com/kpeters/castdeck/internal/domain"
)

// CatalogService wraps the catalog client with logging. It owns no state:
// the dataset lives in the catalog engine and show details live in the
// view that requested them.
type CatalogService struct {
	client domain.CatalogClient
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(client domain.CatalogClient, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{client: client, logger: logger}
}

// LoadCatalog fetches the full show listing.
func (s *CatalogService) LoadCatalog(ctx context.Context) ([]domain.Show, error) {
	shows, err := s.client.FetchCatalog(ctx)
	if err != nil {
		s.logger.Error("failed to fetch catalog", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched catalog", "count", len(shows))
	return shows, nil
}

// LoadShowDetail fetches the season/episode breakdown for one show. Detail
// is re-fetched on every navigation; nothing is cached across calls.
func (s *CatalogService) LoadShowDetail(ctx context.Context, id string) (*domain.ShowDetail, error) {
	detail, err := s.client.FetchShowDetail(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch show detail", "error", err, "showID", id)
		return nil, err
	}
	s.logger.Debug("fetched show detail", "showID", id, "seasons", len(detail.Seasons))
	return detail, nil
}
