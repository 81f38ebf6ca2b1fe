package configs

import "strings"

// Catalog sources.
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Catalog selects where the station catalog is loaded from at startup.
type Catalog struct {
	Source string `env:"SOURCE" envDefault:"static"`
}

// Normalized returns the configured source, or CatalogStatic for anything
// unknown.
func (c Catalog) Normalized() string {
	if strings.EqualFold(c.Source, CatalogPostgres) {
		return CatalogPostgres
	}
	return CatalogStatic
}
