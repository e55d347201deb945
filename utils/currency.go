package utils

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printersMu sync.Mutex
	printers   = map[string]*message.Printer{}
)

func printerFor(locale string) *message.Printer {
	printersMu.Lock()
	defer printersMu.Unlock()

	if p, ok := printers[locale]; ok {
		return p
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	printers[locale] = p
	return p
}

// FormatAmount renders an amount in the smallest currency unit with the
// locale's digit grouping, e.g. FormatAmount("N", "en", 1200) == "N1,200".
func FormatAmount(symbol, locale string, amount int64) string {
	return symbol + printerFor(locale).Sprintf("%d", amount)
}
