package output

import (
	money "github.com/Rhymond/go-money"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// Currency renders a decimal amount with locale currency formatting, e.g.
// "$1,234.56". The value is rounded to cents for display only.
func Currency(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.USD).Display()
}

// AlignRight pads text on the left to the given display width. Widths are
// measured in terminal cells, not bytes, so wide runes line up too.
func AlignRight(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

// AlignLeft pads text on the right to the given display width.
func AlignLeft(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// Width returns the display width of text in terminal cells.
func Width(text string) int {
	return runewidth.StringWidth(text)
}
