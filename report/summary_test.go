package report

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"finman/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testAccount() *ledger.Account {
	a := ledger.NewAccount("Household")

	a.AddIncome(ledger.Income{Amount: d("2500"), Category: "Active Income", Period: ledger.Period{Month: 3, Year: 2024}})
	a.AddIncome(ledger.Income{Amount: d("400"), Category: "Passive Income", Period: ledger.Period{Month: 3, Year: 2024}})
	a.AddIncome(ledger.Income{Amount: d("2500"), Category: "Active Income", Period: ledger.Period{Month: 4, Year: 2024}})

	a.AddExpense(ledger.Expense{Amount: d("150"), Category: "Groceries", Period: ledger.Period{Month: 3, Year: 2024}})
	a.AddExpense(ledger.Expense{Amount: d("900"), Category: "Housing", Period: ledger.Period{Month: 3, Year: 2024}})
	a.AddExpense(ledger.Expense{Amount: d("60"), Category: "Groceries", Period: ledger.Period{Month: 4, Year: 2024}})

	a.SetBudget(ledger.Budget{Category: "Groceries", Amount: d("120"), Period: ledger.Period{Month: 3, Year: 2024}})
	a.SetBudget(ledger.Budget{Category: "Utilities", Amount: d("80"), Period: ledger.Period{Month: 3, Year: 2024}})

	return a
}

func TestBuildSummary(t *testing.T) {
	tests := []struct {
		name         string
		filter       ledger.Filter
		wantIncome   string
		wantExpenses string
		wantNet      string
		wantTopCat   string
	}{
		{
			name:         "all time",
			filter:       ledger.Filter{},
			wantIncome:   "5400",
			wantExpenses: "1110",
			wantNet:      "4290",
			wantTopCat:   "Housing",
		},
		{
			name:         "single month",
			filter:       ledger.Filter{Month: 3, Year: 2024},
			wantIncome:   "2900",
			wantExpenses: "1050",
			wantNet:      "1850",
			wantTopCat:   "Housing",
		},
		{
			name:         "month across years",
			filter:       ledger.Filter{Month: 4},
			wantIncome:   "2500",
			wantExpenses: "60",
			wantNet:      "2440",
			wantTopCat:   "Groceries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSummary(context.Background(), testAccount(), tt.filter)

			assert.Equal(t, tt.filter, got.Filter)
			assert.Equal(t, tt.wantIncome, got.TotalIncome.String())
			assert.Equal(t, tt.wantExpenses, got.TotalExpenses.String())
			assert.Equal(t, tt.wantNet, got.Net.String())
			assert.Equal(t, tt.wantTopCat, got.ByCategory[0].Category)
		})
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	t.Run("empty account yields zeros", func(t *testing.T) {
		got := BuildSummary(context.Background(), ledger.NewAccount("Empty"), ledger.Filter{})

		assert.Equal(t, "0", got.TotalIncome.String())
		assert.Equal(t, "0", got.TotalExpenses.String())
		assert.Equal(t, "0", got.Net.String())
		assert.Equal(t, 0, len(got.ByCategory))
	})

	t.Run("nil account treated as empty", func(t *testing.T) {
		got := BuildSummary(context.Background(), nil, ledger.Filter{Year: 2024})
		assert.Equal(t, "0", got.Net.String())
	})

	t.Run("filter matching nothing yields zeros", func(t *testing.T) {
		got := BuildSummary(context.Background(), testAccount(), ledger.Filter{Year: 1999})
		assert.Equal(t, "0", got.TotalIncome.String())
		assert.Equal(t, 0, len(got.ByCategory))
	})
}
