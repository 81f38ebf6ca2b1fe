package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"radio-mediaplan/internal/core/domain"
)

// Seed writes catalog into the catalog tables in one transaction. Existing
// rows are kept, so editing a station in the database survives restarts.
func Seed(ctx context.Context, pool *pgxpool.Pool, catalog domain.Catalog) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, s := range catalog.Stations {
			batch.Queue(`INSERT INTO stations
    (id, position, name, frequency, cities, audience, color, logo, listeners)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
				s.ID, i, s.Name, s.Frequency, s.Cities, s.Audience, s.Color, s.Logo, s.Listeners)
		}
		for _, s := range catalog.Slots {
			batch.Queue(`INSERT INTO slots (idx, label, weight)
VALUES ($1,$2,$3::numeric) ON CONFLICT DO NOTHING`, s.Index, s.Label, s.Weight.String())
		}
		for _, t := range catalog.Tiers {
			batch.Queue(`INSERT INTO price_tiers (stations, price_per_second)
VALUES ($1,$2::numeric) ON CONFLICT DO NOTHING`, t.Stations, t.PricePerSecond.String())
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
