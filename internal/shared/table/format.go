package table

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale groups thousands with dots, as prices are shown in the storefront.
var DefaultLocale = language.Spanish

const dateLayout = "02/01/2006"

// Formatter renders amounts and dates for display.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for tag. The zero tag selects DefaultLocale.
func NewFormatter(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = DefaultLocale
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: "$"}
}

// ParseLocale resolves a BCP 47 tag, falling back to DefaultLocale.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultLocale
	}
	return tag
}

// Currency renders a whole amount with grouping separators and no decimals.
func (f *Formatter) Currency(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}

// Date renders a calendar date.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
