package export

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"radio-mediaplan/internal/core/domain"
)

var printer = message.NewPrinter(language.Russian)

// Number formats n with Russian digit grouping.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Price formats a rouble amount, e.g. "58 430 ₽".
func Price(n int64) string {
	return Number(n) + " ₽"
}

// Reach formats a person count, e.g. "~341 760 чел.".
func Reach(n int64) string {
	return "~" + Number(n) + " чел."
}

// ContactCost formats a cost per contact with two decimals.
func ContactCost(d domain.Fixed2) string {
	return d.StringFixed(2) + " ₽"
}
