package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	SheetSummary  = "Сводка"
	SheetStations = "Станции"
	SheetSlots    = "Слоты"
	SheetScripts  = "Тексты роликов"
	SheetCreative = "Креатив"
)

// WriteXLSX writes doc as a workbook with summary, stations, slots, scripts
// and creative sheets.
func WriteXLSX(w io.Writer, doc Document) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetStations, SheetSlots, SheetScripts, SheetCreative} {
		if _, err = f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sheets := []struct {
		name   string
		rows   [][]any
		header bool
		widths []float64
	}{
		{SheetSummary, summaryRows(doc), false, []float64{28, 60}},
		{SheetStations, stationRows(doc), true, []float64{20, 22, 12, 14, 60}},
		{SheetSlots, slotRows(doc), true, []float64{8, 16}},
		{SheetScripts, scriptRows(doc), true, []float64{28, 14, 80}},
		{SheetCreative, creativeRows(doc), false, []float64{14, 70}},
	}
	for _, s := range sheets {
		if err = writeRows(f, s.name, s.rows, s.widths); err != nil {
			return fmt.Errorf("sheet %s: %w", s.name, err)
		}
		if s.header {
			last, _ := excelize.CoordinatesToCellName(len(s.rows[0]), 1)
			if err = f.SetCellStyle(s.name, "A1", last, bold); err != nil {
				return err
			}
		}
	}
	if err = f.SetCellStyle(SheetSummary, "A1", "A1", bold); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any, widths []float64) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err = f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func summaryRows(doc Document) [][]any {
	spots := doc.Intermediate.SpotsLogic
	display := doc.FinalOutput.DisplayStrings
	return [][]any{
		{"МЕДИАПЛАН РТО", ""},
		{"", ""},
		{"Дата создания", doc.Meta.CreatedAt.Format("02.01.2006")},
		{"Стратегия", doc.Strategy.Title},
		{"Описание", doc.Strategy.Description},
		{"", ""},
		{"ПАРАМЕТРЫ КАМПАНИИ", ""},
		{"Количество станций", spots.StationsCount},
		{"Слотов в день", spots.SlotsCount},
		{"Дней размещения", doc.InputData.CampaignDays},
		{"Хронометраж ролика", strconv.Itoa(doc.InputData.Duration) + " сек"},
		{"", ""},
		{"ФИНАНСОВЫЕ ПОКАЗАТЕЛИ", ""},
		{"Стоимость кампании", display.PriceText},
		{"Охват аудитории", display.ReachText},
		{"Стоимость контакта", display.CPCText},
		{"Всего выходов", spots.TotalSpotsPeriod},
	}
}

func stationRows(doc Document) [][]any {
	rows := [][]any{{"Станция", "Частота", "Слушателей", "Охват в день", "Причина выбора"}}
	for _, s := range doc.Stations {
		rows = append(rows, []any{s.Name, s.Frequency, s.Listeners, s.Reach, s.Reason})
	}
	return rows
}

func slotRows(doc Document) [][]any {
	rows := [][]any{{"№", "Время"}}
	for i, idx := range doc.InputData.SelectedTimeSlots {
		rows = append(rows, []any{idx, doc.InputData.SlotLabels[i]})
	}
	return rows
}

func scriptRows(doc Document) [][]any {
	rows := [][]any{{"Вариант", "Хронометраж", "Текст ролика"}}
	for i, s := range doc.Scripts {
		rows = append(rows, []any{fmt.Sprintf("%d. %s", i+1, s.Title), strconv.Itoa(s.DurationSeconds) + " сек", s.Text})
	}
	return rows
}

func creativeRows(doc Document) [][]any {
	rows := [][]any{{"КРЕАТИВНЫЕ РЕКОМЕНДАЦИИ", ""}, {"", ""}, {"Советы:", ""}}
	for i, tip := range doc.Creative.Tips {
		rows = append(rows, []any{strconv.Itoa(i+1) + ".", tip})
	}
	rows = append(rows, []any{"", ""}, []any{"Крючки:", ""})
	for i, hook := range doc.Creative.Hooks {
		rows = append(rows, []any{strconv.Itoa(i+1) + ".", hook})
	}
	return rows
}
