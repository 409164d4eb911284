package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status tags a budget-vs-actual comparison.
type Status string

const (
	StatusOver  Status = "OVER"
	StatusUnder Status = "UNDER"
)

var hundred = decimal.NewFromInt(100)

// Variance is the ratio of actual spending to a budgeted amount, expressed as
// a percentage with an over/under tag.
type Variance struct {
	Percent decimal.Decimal `json:"percent"`
	Status  Status          `json:"status"`
}

// BudgetVariance computes (actual / budget) * 100 rounded to two decimal
// places when budget is positive, and 0 otherwise. The status is OVER only
// when the rounded percentage exceeds 100; spending exactly the budget yields
// 100.00 UNDER. A zero or absent budget is not an error, it is defined to be
// 0.00 UNDER regardless of actual.
func BudgetVariance(budget, actual decimal.Decimal) Variance {
	if budget.Sign() <= 0 {
		return Variance{Percent: decimal.Zero, Status: StatusUnder}
	}

	percent := actual.Div(budget).Mul(hundred).Round(2)

	status := StatusUnder
	if percent.GreaterThan(hundred) {
		status = StatusOver
	}
	return Variance{Percent: percent, Status: status}
}

// String renders the variance in the report cell format, e.g.
// "87.50% (UNDER)".
func (v Variance) String() string {
	return fmt.Sprintf("%s%% (%s)", v.Percent.StringFixed(2), v.Status)
}
