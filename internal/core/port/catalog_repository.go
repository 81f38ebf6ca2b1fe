package port

import (
	"context"

	"radio-mediaplan/internal/core/domain"
)

// CatalogRepository loads the station, slot and tier reference data. It is
// read once at startup; implementations need not be fast.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
}
