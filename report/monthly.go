package report

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"finman/ledger"
	"finman/telemetry"
)

// BudgetLine compares one category's budget to the expenses actually recorded
// against it in the same period.
type BudgetLine struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
	Variance ledger.Variance `json:"variance"`
}

// Monthly is the overview of a single concrete month: headline totals plus
// per-category tables for incomes, expenses, and budget-vs-actual.
type Monthly struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalBudget   decimal.Decimal `json:"total_budget"`
	Net           decimal.Decimal `json:"net"`

	// Category tables, each sorted by category name.
	IncomeByCategory  []ledger.CategoryTotal `json:"income_by_category"`
	ExpenseByCategory []ledger.CategoryTotal `json:"expense_by_category"`
	Budgets           []BudgetLine           `json:"budgets"`

	// Total aggregates the budget table: the summed budgets, the expenses
	// matched to budgeted categories (unbudgeted categories are excluded),
	// and the overall variance computed the same way as a single line.
	Total BudgetLine `json:"total"`
}

// BuildMonthly computes the overview for one (month, year); both are
// required. Budgeted categories with no matching expenses report an actual
// of zero.
func BuildMonthly(ctx context.Context, account *ledger.Account, month, year int) Monthly {
	timer := telemetry.StartTimer(ctx, "report.monthly")
	defer timer.End()

	if account == nil {
		account = &ledger.Account{}
	}

	f := ledger.Filter{Month: month, Year: year}
	incomes := ledger.FilterRecords(account.Incomes, f)
	expenses := ledger.FilterRecords(account.Expenses, f)
	budgets := ledger.FilterRecords(account.Budgets, f)

	expenseTotals := ledger.GroupByCategory(expenses)
	actuals := make(map[string]decimal.Decimal, len(expenseTotals))
	for _, ct := range expenseTotals {
		actuals[ct.Category] = ct.Total
	}

	lines := make([]BudgetLine, 0, len(budgets))
	matched := decimal.Zero
	for _, b := range budgets {
		actual, ok := actuals[b.Category]
		if !ok {
			actual = decimal.Zero
		} else {
			matched = matched.Add(actual)
		}
		lines = append(lines, BudgetLine{
			Category: b.Category,
			Budget:   b.Amount,
			Actual:   actual,
			Variance: ledger.BudgetVariance(b.Amount, actual),
		})
	}
	slices.SortStableFunc(lines, func(a, b BudgetLine) int {
		return strings.Compare(a.Category, b.Category)
	})

	totalBudget := ledger.Sum(budgets)

	return Monthly{
		Month:             month,
		Year:              year,
		TotalIncome:       ledger.Sum(incomes),
		TotalExpenses:     ledger.Sum(expenses),
		TotalBudget:       totalBudget,
		Net:               ledger.Net(incomes, expenses),
		IncomeByCategory:  byCategoryName(ledger.GroupIncomesByCategory(incomes)),
		ExpenseByCategory: byCategoryName(expenseTotals),
		Budgets:           lines,
		Total: BudgetLine{
			Category: "TOTAL",
			Budget:   totalBudget,
			Actual:   matched,
			Variance: ledger.BudgetVariance(totalBudget, matched),
		},
	}
}

// byCategoryName re-sorts a descending-total breakdown by category name for
// the monthly tables.
func byCategoryName(totals []ledger.CategoryTotal) []ledger.CategoryTotal {
	sorted := slices.Clone(totals)
	slices.SortStableFunc(sorted, func(a, b ledger.CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})
	return sorted
}
