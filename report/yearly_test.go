package report

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"finman/ledger"
)

func TestBuildYearly(t *testing.T) {
	a := ledger.NewAccount("Household")

	a.AddIncome(ledger.Income{Amount: d("2000"), Category: "Active Income", Period: ledger.Period{Month: 1, Year: 2024}})
	a.AddIncome(ledger.Income{Amount: d("2000"), Category: "Active Income", Period: ledger.Period{Month: 2, Year: 2024}})
	a.AddExpense(ledger.Expense{Amount: d("500"), Category: "Housing", Period: ledger.Period{Month: 1, Year: 2024}})
	a.AddExpense(ledger.Expense{Amount: d("750"), Category: "Housing", Period: ledger.Period{Month: 2, Year: 2024}})
	a.SetBudget(ledger.Budget{Category: "Housing", Amount: d("600"), Period: ledger.Period{Month: 1, Year: 2024}})

	// A different year must not contribute.
	a.AddIncome(ledger.Income{Amount: d("9999"), Category: "Other", Period: ledger.Period{Month: 1, Year: 2023}})

	got := BuildYearly(context.Background(), a, 2024)

	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 12, len(got.Months))

	jan := got.Months[0]
	assert.Equal(t, 1, jan.Month)
	assert.Equal(t, "2000", jan.Income.String())
	assert.Equal(t, "500", jan.Expenses.String())
	assert.Equal(t, "600", jan.Budget.String())
	assert.Equal(t, "1500", jan.Difference.String())
	assert.Equal(t, "100", jan.BudgetDiff.String())

	feb := got.Months[1]
	assert.Equal(t, "1250", feb.Difference.String())
	assert.Equal(t, "-750", feb.BudgetDiff.String())

	// Quiet months are present as zero rows.
	dec := got.Months[11]
	assert.Equal(t, 12, dec.Month)
	assert.Equal(t, "0", dec.Income.String())
	assert.Equal(t, "0", dec.Expenses.String())

	assert.Equal(t, "4000", got.Total.Income.String())
	assert.Equal(t, "1250", got.Total.Expenses.String())
	assert.Equal(t, "600", got.Total.Budget.String())
	assert.Equal(t, "2750", got.Total.Difference.String())
	assert.Equal(t, "-650", got.Total.BudgetDiff.String())
}

func TestBuildYearly_TotalEqualsColumnSums(t *testing.T) {
	a := ledger.NewAccount("Household")
	for m := 1; m <= 12; m++ {
		a.AddIncome(ledger.Income{Amount: d("100.10"), Category: "Active Income", Period: ledger.Period{Month: m, Year: 2025}})
		a.AddExpense(ledger.Expense{Amount: d("33.33"), Category: "Groceries", Period: ledger.Period{Month: m, Year: 2025}})
	}

	got := BuildYearly(context.Background(), a, 2025)

	income, expenses, diff := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range got.Months {
		income = income.Add(row.Income)
		expenses = expenses.Add(row.Expenses)
		diff = diff.Add(row.Difference)
	}

	assert.Equal(t, 0, got.Total.Income.Cmp(income))
	assert.Equal(t, 0, got.Total.Expenses.Cmp(expenses))
	assert.Equal(t, 0, got.Total.Difference.Cmp(diff))
	assert.Equal(t, "1201.2", got.Total.Income.String())
	assert.Equal(t, "399.96", got.Total.Expenses.String())
}

func TestBuildYearly_Empty(t *testing.T) {
	got := BuildYearly(context.Background(), nil, 2024)

	assert.Equal(t, 12, len(got.Months))
	assert.Equal(t, "0", got.Total.Income.String())
	assert.Equal(t, "0", got.Total.BudgetDiff.String())
}
