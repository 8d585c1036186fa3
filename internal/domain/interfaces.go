package domain

import "context"

// CatalogClient is the data source contract consumed by the catalog
// service. Both calls are single-shot: they either deliver the full result
// or fail, and no retry is implied on the caller's side.
type CatalogClient interface {
	// FetchCatalog returns every show in the catalog.
	FetchCatalog(ctx context.Context) ([]Show, error)

	// FetchShowDetail returns the full season/episode breakdown for one show.
	FetchShowDetail(ctx context.Context, id string) (*ShowDetail, error)
}
