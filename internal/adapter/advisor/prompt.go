package advisor

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/calculator"
	"radio-mediaplan/internal/core/domain"
)

var systemTemplate = template.Must(template.New("system").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`Ты - эксперт по радиорекламе в агентстве "Радио Тюменской области" (РТО).
Твои города: Ялуторовск и Заводоуковск.

Список станций (id — название, частота, города, аудитория):
{{- range .Stations}}
- {{.ID}} — {{.Name}} ({{.Frequency}}, {{join .Cities "/"}}) — ~{{.Listeners}} слушателей, {{.Audience}}
{{- end}}

Временные слоты (индекс — интервал):
{{- range .Slots}}
- {{.Index}} — {{.Label}}
{{- end}}

ВАЖНЫЕ ПРАВИЛА:
1. Рекомендуй от 4 до {{len .Stations}} радиостанций для максимального охвата
2. Рекомендуемая длительность кампании: 20-30 дней, не больше {{.MaxDays}}
3. {{if .GiftProduction}}Ролик (производство) — В ПОДАРОК{{else}}Производство ролика: {{.Production}} ₽ к стоимости размещения{{end}}
4. Хронометраж ролика: 7-30 секунд, не больше {{.MaxDuration}}
5. Выбери 8-10 слотов{{if .Discount}}; все {{len .Slots}} слотов дают скидку {{.Discount}}%{{end}}
6. Стоимость и охват НЕ считай: их рассчитает калькулятор агентства

ВАЖНО: Отвечай ТОЛЬКО в формате JSON без markdown разметки. Структура:
{
  "strategy": {"title": "Название стратегии", "description": "Описание 2-3 предложения"},
  "recommendedStations": [{"id": "retro", "name": "Название станции", "freq": "Частота", "reason": "Почему эта станция подходит"}],
  "slotIndices": [0, 1, 2, 9, 10, 11, 12, 13],
  "campaignDays": 25,
  "duration": 20,
  "creative": {"tips": ["Совет 1", "Совет 2", "Совет 3"], "hooks": ["Крючок 1", "Крючок 2"]},
  "scripts": [{"title": "Название варианта", "duration": 20, "text": "Текст ролика до 20 секунд"}]
}

Предоставь 3 варианта текстов роликов до 20 секунд.`))

type promptData struct {
	domain.Catalog
	GiftProduction bool
	Production     string
	Discount       string
	MaxDays        int
	MaxDuration    int
}

func newPromptData(catalog domain.Catalog, policy calculator.Policy) promptData {
	d := promptData{
		Catalog:        catalog,
		GiftProduction: policy.ProductionSurcharge.IsZero(),
		Production:     policy.ProductionSurcharge.StringFixed(0),
		MaxDays:        policy.MaxDays,
		MaxDuration:    policy.MaxDurationSeconds,
	}
	if policy.MaxCoverageDiscount.IsPositive() {
		d.Discount = policy.MaxCoverageDiscount.Mul(decimal.NewFromInt(100)).String()
	}
	return d
}

// SystemPrompt renders the planner instructions for the given catalog. The
// production and discount rules follow policy so the model is told the same
// terms the calculator prices with.
func SystemPrompt(catalog domain.Catalog, policy calculator.Policy) (string, error) {
	var b strings.Builder
	if err := systemTemplate.Execute(&b, newPromptData(catalog, policy)); err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	return b.String(), nil
}

func userPrompt(query string, giftProduction bool) string {
	reminder := "рекомендуй 4+ станций и 20-30 дней кампании"
	if giftProduction {
		reminder = "ролик в подарок, " + reminder
	}
	return fmt.Sprintf(`Клиент описывает свой бизнес: "%s". Составь рекомендации по размещению рекламы. Помни: %s.`,
		strings.TrimSpace(query), reminder)
}
