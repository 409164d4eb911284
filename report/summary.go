// Package report composes the aggregation primitives in finman/ledger into
// the three standard report shapes: the filtered summary, the monthly
// overview, and the yearly overview.
//
// Every builder is a stateless function of the account contents plus the
// requested filter or period. Builders never fail: an empty account or a
// filter matching nothing yields a report of zeros, not an error. The
// context parameter carries only optional telemetry; no builder performs I/O.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"finman/ledger"
	"finman/telemetry"
)

// Summary is the filtered financial summary: totals over an arbitrary
// month/year window plus an expense breakdown by category.
type Summary struct {
	Filter        ledger.Filter          `json:"filter"`
	TotalIncome   decimal.Decimal        `json:"total_income"`
	TotalExpenses decimal.Decimal        `json:"total_expenses"`
	Net           decimal.Decimal        `json:"net"`
	ByCategory    []ledger.CategoryTotal `json:"by_category"`
}

// BuildSummary computes the filtered summary for an account. The breakdown is
// ordered by descending total. A nil account is treated as empty.
func BuildSummary(ctx context.Context, account *ledger.Account, f ledger.Filter) Summary {
	timer := telemetry.StartTimer(ctx, "report.summary")
	defer timer.End()

	if account == nil {
		account = &ledger.Account{}
	}

	incomes := ledger.FilterRecords(account.Incomes, f)
	expenses := ledger.FilterRecords(account.Expenses, f)

	return Summary{
		Filter:        f,
		TotalIncome:   ledger.Sum(incomes),
		TotalExpenses: ledger.Sum(expenses),
		Net:           ledger.Net(incomes, expenses),
		ByCategory:    ledger.GroupByCategory(expenses),
	}
}
