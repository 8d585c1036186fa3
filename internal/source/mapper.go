package source

import (
	"time"

	"github.com/kpeters/castdeck/internal/domain"
)

// parseUpdated parses the source's RFC3339 timestamps. An unparseable or
// missing date maps to the zero time rather than failing the whole fetch.
func parseUpdated(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// MapPreviews converts catalog listing DTOs to domain shows.
func MapPreviews(previews []previewDTO) []domain.Show {
	shows := make([]domain.Show, len(previews))
	for i, p := range previews {
		shows[i] = domain.Show{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			ImageURL:    p.Image,
			Updated:     parseUpdated(p.Updated),
			Genres:      p.Genres,
			Seasons:     p.Seasons,
		}
	}
	return shows
}

// MapShowDetail converts a full show DTO to the domain detail record.
func MapShowDetail(dto showDTO) *domain.ShowDetail {
	detail := &domain.ShowDetail{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.Image,
		Updated:     parseUpdated(dto.Updated),
		GenreTitles: dto.Genres,
		Seasons:     make([]domain.Season, len(dto.Seasons)),
	}
	for i, s := range dto.Seasons {
		season := domain.Season{
			Number:      s.Season,
			Title:       s.Title,
			Description: s.Description,
			ImageURL:    s.Image,
			Episodes:    make([]domain.Episode, len(s.Episodes)),
		}
		for j, ep := range s.Episodes {
			season.Episodes[j] = domain.Episode{
				Number:      ep.Episode,
				Title:       ep.Title,
				Description: ep.Description,
				AudioURL:    ep.File,
			}
		}
		detail.Seasons[i] = season
	}
	return detail
}
