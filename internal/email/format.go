package email

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatEUR renders an amount with thousands separators and two decimals,
// e.g. 1234.5 -> "€1,234.50".
func FormatEUR(amount float64) string {
	p := message.NewPrinter(language.English)
	return "€" + p.Sprintf("%.2f", amount)
}
