// Package output provides terminal styling and display formatting for
// reports. Formatting here is display-only: engine values stay exact
// decimals, and nothing in this package feeds back into aggregation.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers keyed to report semantics.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Account returns a styled account name (yellow).
func (s *Styles) Account(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Amount returns a styled monetary amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Over returns a styled over-budget marker (red).
func (s *Styles) Over(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		String()
}

// Under returns a styled under-budget marker (green).
func (s *Styles) Under(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// TotalRow returns a styled report total line (bold).
func (s *Styles) TotalRow(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
