// Package postgres stores the station catalog in PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository using pgxpool.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// LoadCatalog reads stations in display order, slots by index and the price
// table in one read-only transaction. The result is not validated here.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return catalog, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if catalog.Stations, err = loadStations(ctx, tx); err != nil {
		return catalog, fmt.Errorf("load stations: %w", err)
	}
	if catalog.Slots, err = loadSlots(ctx, tx); err != nil {
		return catalog, fmt.Errorf("load slots: %w", err)
	}
	if catalog.Tiers, err = loadTiers(ctx, tx); err != nil {
		return catalog, fmt.Errorf("load price tiers: %w", err)
	}
	return catalog, tx.Commit(ctx)
}

func loadStations(ctx context.Context, tx pgx.Tx) ([]domain.Station, error) {
	rows, err := tx.Query(ctx, `
        SELECT id, name, frequency, cities, audience, color, logo, listeners
        FROM stations
        ORDER BY position`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Station, error) {
		var s domain.Station
		err := row.Scan(&s.ID, &s.Name, &s.Frequency, &s.Cities, &s.Audience, &s.Color, &s.Logo, &s.Listeners)
		return s, err
	})
}

func loadSlots(ctx context.Context, tx pgx.Tx) ([]domain.Slot, error) {
	rows, err := tx.Query(ctx, `SELECT idx, label, weight::text FROM slots ORDER BY idx`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Slot, error) {
		var (
			s      domain.Slot
			weight string
		)
		if err := row.Scan(&s.Index, &s.Label, &weight); err != nil {
			return s, err
		}
		var err error
		s.Weight, err = decimal.NewFromString(weight)
		return s, err
	})
}

func loadTiers(ctx context.Context, tx pgx.Tx) (domain.PriceTiers, error) {
	rows, err := tx.Query(ctx, `SELECT stations, price_per_second::text FROM price_tiers ORDER BY stations`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PriceTier, error) {
		var (
			t    domain.PriceTier
			rate string
		)
		if err := row.Scan(&t.Stations, &rate); err != nil {
			return t, err
		}
		var err error
		t.PricePerSecond, err = decimal.NewFromString(rate)
		return t, err
	})
}
