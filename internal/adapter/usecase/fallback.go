package usecase

import (
	"radio-mediaplan/internal/core/domain"
)

const (
	defaultDays     = 25
	defaultDuration = 20
	maxScripts      = 3
)

// fallbackStations are offered when the advisor is unavailable, with the
// reason shown to the client.
var fallbackStations = []domain.RecommendedStation{
	{StationID: "retro", Reason: "Широкий охват платежеспособной аудитории 35-55 лет"},
	{StationID: "avto", Reason: "Активная аудитория автомобилистов"},
	{StationID: "dacha", Reason: "Лояльная аудитория 40-60 лет"},
	{StationID: "shanson", Reason: "Мужская аудитория с высокой лояльностью"},
}

// fallbackSlots are the eight morning and evening prime-time hours.
var fallbackSlots = []int{0, 1, 2, 5, 9, 10, 11, 12}

// fallbackDraft is the static recommendation used when the advisor fails.
// Stations missing from catalog are skipped; if none remain the first four
// catalog stations are used.
func fallbackDraft(query string, catalog domain.Catalog) domain.PlanDraft {
	var stations []domain.RecommendedStation
	for _, rec := range fallbackStations {
		if s, ok := catalog.Station(rec.StationID); ok {
			stations = append(stations, recommend(s, rec.Reason))
		}
	}
	if len(stations) == 0 {
		for _, s := range catalog.Stations[:min(4, len(catalog.Stations))] {
			stations = append(stations, recommend(s, ""))
		}
	}

	var slots []int
	for _, i := range fallbackSlots {
		if i < len(catalog.Slots) {
			slots = append(slots, i)
		}
	}

	return domain.PlanDraft{
		Query:  query,
		Source: domain.SourceFallback,
		Strategy: domain.Strategy{
			Title:       "Максимальный охват",
			Description: "Комплексная стратегия размещения на 4+ станциях для максимального охвата целевой аудитории. Рекомендуем кампанию 20-30 дней.",
		},
		Stations: stations,
		Creative: domain.Creative{
			Tips:  []string{"Используйте яркий слоган", "Укажите контактные данные", "Добавьте призыв к действию"},
			Hooks: []string{"Специальное предложение", "Только сейчас", "Скидка"},
		},
		Scripts: []domain.Script{{
			Title:           "Информационный",
			DurationSeconds: defaultDuration,
			Text:            "Ваш текст рекламного ролика. Ролик записываем бесплатно — это наш подарок!",
		}},
		Input: domain.PlanInput{
			StationIDs:      stationIDs(stations),
			Days:            defaultDays,
			DurationSeconds: defaultDuration,
			SlotIndices:     slots,
		},
	}
}

func recommend(s domain.Station, reason string) domain.RecommendedStation {
	return domain.RecommendedStation{StationID: s.ID, Name: s.Name, Frequency: s.Frequency, Reason: reason}
}

func stationIDs(stations []domain.RecommendedStation) []string {
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, s.StationID)
	}
	return ids
}
