package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"finman/ledger"
	"finman/output"
	"finman/report"
)

type SummaryCmd struct {
	Account string `arg:"" help:"Account to summarize."`
	Month   int    `help:"Restrict to a month (1-12)."`
	Year    int    `help:"Restrict to a year."`
}

func (cmd *SummaryCmd) Run(kctx *kong.Context, globals *Globals) error {
	if cmd.Month != 0 && (cmd.Month < 1 || cmd.Month > 12) {
		printError(kctx.Stderr, fmt.Sprintf("month must be between 1 and 12, got %d", cmd.Month))
		return NewCommandError(1)
	}

	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	f := ledger.Filter{Month: cmd.Month, Year: cmd.Year}
	summary := report.BuildSummary(ctx, account, f)

	styles := output.NewStyles(kctx.Stdout)
	w := kctx.Stdout

	_, _ = fmt.Fprintf(w, "%s — %s\n\n", styles.Account(account.Name), f.Label())
	_, _ = fmt.Fprintf(w, "Income:   %s\n", styles.Amount(output.Currency(summary.TotalIncome)))
	_, _ = fmt.Fprintf(w, "Expenses: %s\n", styles.Amount(output.Currency(summary.TotalExpenses)))
	_, _ = fmt.Fprintf(w, "Net:      %s\n", signedAmount(styles, summary.Net))

	if len(summary.ByCategory) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", styles.TotalRow("Expenses by category"))
		rows := make([][]string, 0, len(summary.ByCategory))
		for _, ct := range summary.ByCategory {
			rows = append(rows, []string{ct.Category, output.Currency(ct.Total)})
		}
		renderColumns(w, rows)
	}
	return nil
}

type MonthlyCmd struct {
	Account string `arg:"" help:"Account to report on."`
	Month   int    `required:"" help:"Month of the overview (1-12)."`
	Year    int    `required:"" help:"Year of the overview."`
}

func (cmd *MonthlyCmd) Run(kctx *kong.Context, globals *Globals) error {
	if cmd.Month < 1 || cmd.Month > 12 {
		printError(kctx.Stderr, fmt.Sprintf("month must be between 1 and 12, got %d", cmd.Month))
		return NewCommandError(1)
	}

	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	overview := report.BuildMonthly(ctx, account, cmd.Month, cmd.Year)

	styles := output.NewStyles(kctx.Stdout)
	w := kctx.Stdout

	_, _ = fmt.Fprintf(w, "%s — %02d/%04d\n\n", styles.Account(account.Name), overview.Month, overview.Year)
	_, _ = fmt.Fprintf(w, "Income:   %s\n", styles.Amount(output.Currency(overview.TotalIncome)))
	_, _ = fmt.Fprintf(w, "Expenses: %s\n", styles.Amount(output.Currency(overview.TotalExpenses)))
	_, _ = fmt.Fprintf(w, "Net:      %s\n", signedAmount(styles, overview.Net))

	if len(overview.IncomeByCategory) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", styles.TotalRow("Income by category"))
		rows := make([][]string, 0, len(overview.IncomeByCategory))
		for _, ct := range overview.IncomeByCategory {
			rows = append(rows, []string{ct.Category, output.Currency(ct.Total)})
		}
		renderColumns(w, rows)
	}

	if len(overview.ExpenseByCategory) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", styles.TotalRow("Expenses by category"))
		rows := make([][]string, 0, len(overview.ExpenseByCategory))
		for _, ct := range overview.ExpenseByCategory {
			rows = append(rows, []string{ct.Category, output.Currency(ct.Total)})
		}
		renderColumns(w, rows)
	}

	if len(overview.Budgets) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", styles.TotalRow("Budget vs actual"))
		rows := make([][]string, 0, len(overview.Budgets)+2)
		rows = append(rows, []string{"Category", "Budget", "Actual", "Variance"})
		for _, line := range overview.Budgets {
			rows = append(rows, []string{
				line.Category,
				output.Currency(line.Budget),
				output.Currency(line.Actual),
				varianceCell(styles, line.Variance),
			})
		}
		rows = append(rows, []string{
			styles.TotalRow(overview.Total.Category),
			output.Currency(overview.Total.Budget),
			output.Currency(overview.Total.Actual),
			varianceCell(styles, overview.Total.Variance),
		})
		renderColumns(w, rows)
	}
	return nil
}

type YearlyCmd struct {
	Account string `arg:"" help:"Account to report on."`
	Year    int    `required:"" help:"Year of the overview."`
}

func (cmd *YearlyCmd) Run(kctx *kong.Context, globals *Globals) error {
	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	overview := report.BuildYearly(ctx, account, cmd.Year)

	styles := output.NewStyles(kctx.Stdout)
	w := kctx.Stdout

	_, _ = fmt.Fprintf(w, "%s — %d\n\n", styles.Account(account.Name), overview.Year)

	rows := make([][]string, 0, 14)
	rows = append(rows, []string{"Month", "Income", "Expenses", "Budget", "Difference", "Budget Diff"})
	for _, row := range overview.Months {
		rows = append(rows, []string{
			fmt.Sprintf("%02d", row.Month),
			output.Currency(row.Income),
			output.Currency(row.Expenses),
			output.Currency(row.Budget),
			output.Currency(row.Difference),
			output.Currency(row.BudgetDiff),
		})
	}
	rows = append(rows, []string{
		styles.TotalRow("TOTAL"),
		output.Currency(overview.Total.Income),
		output.Currency(overview.Total.Expenses),
		output.Currency(overview.Total.Budget),
		output.Currency(overview.Total.Difference),
		output.Currency(overview.Total.BudgetDiff),
	})
	renderColumns(w, rows)
	return nil
}

// signedAmount colors a net amount green when non-negative and red otherwise.
func signedAmount(styles *output.Styles, d decimal.Decimal) string {
	text := output.Currency(d)
	if d.IsNegative() {
		return styles.Over(text)
	}
	return styles.Under(text)
}

// varianceCell renders a variance with OVER in red and UNDER in green.
func varianceCell(styles *output.Styles, v ledger.Variance) string {
	if v.Status == ledger.StatusOver {
		return styles.Over(v.String())
	}
	return styles.Under(v.String())
}

// renderColumns prints rows of cells with columns padded to a shared width.
// The first column is left-aligned, the rest right-aligned. Styled cells are
// measured by display width, so ANSI sequences do not skew the padding.
func renderColumns(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := output.Width(stripANSI(cell)); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			pad := widths[i] - output.Width(stripANSI(cell))
			if i == 0 {
				cells[i] = cell + strings.Repeat(" ", pad)
			} else {
				cells[i] = strings.Repeat(" ", pad) + cell
			}
		}
		_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  "))
	}
}

// stripANSI removes CSI escape sequences so styled cells measure correctly.
func stripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
