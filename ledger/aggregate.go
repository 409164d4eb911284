package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Sum returns the decimal sum of record amounts, zero for an empty or nil
// slice.
func Sum[T Record](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Value())
	}
	return total
}

// Net returns total income minus total expenses.
func Net(incomes []Income, expenses []Expense) decimal.Decimal {
	return Sum(incomes).Sub(Sum(expenses))
}

// CategoryTotal is one category's summed amount within a grouped breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// GroupByCategory sums expenses per category and returns the breakdown
// ordered by descending total. Ties keep the order in which the categories
// were first seen, so the result is deterministic for a given input.
func GroupByCategory(expenses []Expense) []CategoryTotal {
	return groupBy(expenses, func(e Expense) string { return e.Category })
}

// GroupIncomesByCategory is GroupByCategory for income records.
func GroupIncomesByCategory(incomes []Income) []CategoryTotal {
	return groupBy(incomes, func(i Income) string { return i.Category })
}

func groupBy[T Record](records []T, category func(T) string) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[string]int)

	for _, r := range records {
		cat := category(r)
		if i, ok := index[cat]; ok {
			totals[i].Total = totals[i].Total.Add(r.Value())
			continue
		}
		index[cat] = len(totals)
		totals = append(totals, CategoryTotal{Category: cat, Total: r.Value()})
	}

	// Stable sort keeps first-seen order for equal totals.
	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals
}
