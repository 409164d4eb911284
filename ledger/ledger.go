// Package ledger provides the financial record model and aggregation engine
// for finman. It defines the income, expense, and budget record types, the
// account that owns them, and pure functions that filter, sum, group, and
// compare records over month/year windows.
//
// All monetary amounts use decimal arithmetic to avoid floating point
// precision issues, since every output is currency-formatted.
//
// The engine performs no I/O and keeps no hidden state. It trusts that
// callers validated records at the boundary (amount > 0, category non-empty,
// month within 1..12); it aggregates whatever well-typed records it is given
// and never returns an error.
//
// Example usage:
//
//	account := ledger.NewAccount("Household")
//	account.AddExpense(ledger.Expense{
//	    Amount:   decimal.RequireFromString("42.50"),
//	    Category: "Groceries",
//	    Period:   ledger.Period{Month: 3, Year: 2024},
//	})
//
//	march := ledger.Filter{Month: 3, Year: 2024}
//	total := ledger.Sum(ledger.FilterRecords(account.Expenses, march))
package ledger

import "fmt"

// Period identifies the calendar month bucket a record belongs to.
// Month is 1..12; no further calendar validation is applied. The zero value
// is the "unperiod" sentinel assigned to records migrated from legacy
// snapshots that carried no date at all.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// IsZero reports whether the period is the unperiod sentinel.
func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

// String returns the period as "MM/YYYY", or "--/----" for the unperiod
// sentinel.
func (p Period) String() string {
	if p.IsZero() {
		return "--/----"
	}
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

// IncomeCategories is the fixed set of income classifications offered at the
// entry boundary. The engine itself aggregates arbitrary non-empty category
// strings, so extending this set requires no engine changes.
var IncomeCategories = []string{
	"Active Income",
	"Portfolio Income",
	"Passive Income",
	"Other",
}

// ExpenseCategories is the fixed set of expense and budget classifications
// offered at the entry boundary.
var ExpenseCategories = []string{
	"Utilities",
	"Groceries",
	"Housing",
	"Transportation",
	"Health Care",
	"Lifestyle",
	"Education",
}

// ValidIncomeCategory reports whether category is in the income set.
// Comparison is case-sensitive.
func ValidIncomeCategory(category string) bool {
	return contains(IncomeCategories, category)
}

// ValidExpenseCategory reports whether category is in the expense set.
// Comparison is case-sensitive.
func ValidExpenseCategory(category string) bool {
	return contains(ExpenseCategories, category)
}

func contains(set []string, s string) bool {
	for _, c := range set {
		if c == s {
			return true
		}
	}
	return false
}
