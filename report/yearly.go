package report

import (
	"context"

	"github.com/shopspring/decimal"

	"finman/ledger"
	"finman/telemetry"
)

// YearRow is one month's line in the yearly overview. Difference is income
// minus expenses; BudgetDiff is budget minus expenses. The TOTAL row reuses
// the shape with Month set to zero.
type YearRow struct {
	Month      int             `json:"month,omitempty"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	Budget     decimal.Decimal `json:"budget"`
	Difference decimal.Decimal `json:"difference"`
	BudgetDiff decimal.Decimal `json:"budget_diff"`
}

// Yearly is the twelve-month overview of a single year. Months always holds
// exactly twelve rows, January through December; months with no activity are
// zero rows. Total accumulates each column across the twelve rows.
type Yearly struct {
	Year   int       `json:"year"`
	Months []YearRow `json:"months"`
	Total  YearRow   `json:"total"`
}

// BuildYearly computes the overview for one year by scoping the summary
// primitives to each concrete (month, year) in turn. The TOTAL row sums the
// per-month values column by column; in particular the difference column is
// the sum of monthly differences, not the difference of summed totals.
func BuildYearly(ctx context.Context, account *ledger.Account, year int) Yearly {
	timer := telemetry.StartTimer(ctx, "report.yearly")
	defer timer.End()

	if account == nil {
		account = &ledger.Account{}
	}

	overview := Yearly{
		Year:   year,
		Months: make([]YearRow, 0, 12),
		Total:  zeroRow(0),
	}

	for month := 1; month <= 12; month++ {
		f := ledger.Filter{Month: month, Year: year}

		income := ledger.Sum(ledger.FilterRecords(account.Incomes, f))
		expenses := ledger.Sum(ledger.FilterRecords(account.Expenses, f))
		budget := ledger.Sum(ledger.FilterRecords(account.Budgets, f))

		row := YearRow{
			Month:      month,
			Income:     income,
			Expenses:   expenses,
			Budget:     budget,
			Difference: income.Sub(expenses),
			BudgetDiff: budget.Sub(expenses),
		}
		overview.Months = append(overview.Months, row)

		overview.Total.Income = overview.Total.Income.Add(row.Income)
		overview.Total.Expenses = overview.Total.Expenses.Add(row.Expenses)
		overview.Total.Budget = overview.Total.Budget.Add(row.Budget)
		overview.Total.Difference = overview.Total.Difference.Add(row.Difference)
		overview.Total.BudgetDiff = overview.Total.BudgetDiff.Add(row.BudgetDiff)
	}

	return overview
}

func zeroRow(month int) YearRow {
	return YearRow{
		Month:      month,
		Income:     decimal.Zero,
		Expenses:   decimal.Zero,
		Budget:     decimal.Zero,
		Difference: decimal.Zero,
		BudgetDiff: decimal.Zero,
	}
}
