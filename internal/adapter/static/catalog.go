// Package static provides the built-in station catalog.
package static

import (
	"context"

	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/domain"
)

// CatalogRepository serves the canonical catalog compiled into the binary.
type CatalogRepository struct {
	catalog domain.Catalog
}

// NewCatalogRepository returns a repository serving DefaultCatalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{catalog: DefaultCatalog()}
}

// LoadCatalog returns the built-in catalog.
func (r *CatalogRepository) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	return r.catalog, nil
}

// DefaultCatalog returns a fresh copy of the canonical dataset: six stations
// in Yalutorovsk and Zavodoukovsk, fifteen hourly slots from 07:00 to 22:00
// and the volume price table.
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		Stations: []domain.Station{
			{ID: "retro", Name: "Ретро FM", Frequency: "89.0 МГц", Cities: []string{"Ялуторовск"}, Audience: "30–55 лет", Color: "#FACC15", Logo: "/assets/radio-retro.png", Listeners: 3600},
			{ID: "dacha", Name: "Радио Дача", Frequency: "105.9 МГц", Cities: []string{"Ялуторовск"}, Audience: "35–65 лет", Color: "#EF4444", Logo: "/assets/radio-dacha.jpg", Listeners: 3250},
			{ID: "humor", Name: "Юмор FM", Frequency: "93.9 МГц", Cities: []string{"Ялуторовск"}, Audience: "25–45 лет", Color: "#000000", Logo: "/assets/radio-humor.png", Listeners: 2100},
			{ID: "love", Name: "Love Radio", Frequency: "88.1 МГц / 92.2 МГц", Cities: []string{"Ялуторовск", "Заводоуковск"}, Audience: "18–35 лет", Color: "#EC4899", Logo: "/assets/radio-love.png", Listeners: 700},
			{ID: "shanson", Name: "Радио Шансон", Frequency: "101.0 МГц", Cities: []string{"Заводоуковск"}, Audience: "30–60 лет", Color: "#1E3A8A", Logo: "/assets/radio-shanson.jpg", Listeners: 2900},
			{ID: "avto", Name: "Авторадио", Frequency: "105.3 МГц", Cities: []string{"Заводоуковск"}, Audience: "25–50 лет", Color: "#2563EB", Logo: "/assets/radio-autoradio.jpg", Listeners: 3250},
		},
		Slots: []domain.Slot{
			slot(0, "07:00-08:00", "1.2"),
			slot(1, "08:00-09:00", "1.3"),
			slot(2, "09:00-10:00", "1.2"),
			slot(3, "10:00-11:00", "1.0"),
			slot(4, "11:00-12:00", "1.0"),
			slot(5, "12:00-13:00", "1.1"),
			slot(6, "13:00-14:00", "1.0"),
			slot(7, "14:00-15:00", "1.0"),
			slot(8, "15:00-16:00", "1.0"),
			slot(9, "16:00-17:00", "1.2"),
			slot(10, "17:00-18:00", "1.3"),
			slot(11, "18:00-19:00", "1.3"),
			slot(12, "19:00-20:00", "1.2"),
			slot(13, "20:00-21:00", "0.9"),
			slot(14, "21:00-22:00", "0.8"),
		},
		Tiers: domain.PriceTiers{
			tier(1, "1.5"),
			tier(2, "1.5"),
			tier(3, "1.3"),
			tier(4, "1.3"),
			tier(5, "1.2"),
			tier(6, "1.1"),
		},
	}
}

func slot(i int, label, weight string) domain.Slot {
	return domain.Slot{Index: i, Label: label, Weight: decimal.RequireFromString(weight)}
}

func tier(stations int, rate string) domain.PriceTier {
	return domain.PriceTier{Stations: stations, PricePerSecond: decimal.RequireFromString(rate)}
}
