package ledger

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

const (
	seedFirstYear = 2023
	seedLastYear  = 2027
)

// SeedAccount builds a demo account populated with several years of random
// records: 2-4 incomes and 5-10 expenses per month, plus one budget per
// expense category per month. Amounts are rounded to cents. Passing a seeded
// rng makes the result reproducible.
func SeedAccount(name string, rng *rand.Rand) *Account {
	account := NewAccount(name)

	// The demo data sticks to earned income kinds and budgetable expenses.
	incomeCats := IncomeCategories[:3]
	expenseCats := ExpenseCategories[:6]

	for year := seedFirstYear; year <= seedLastYear; year++ {
		for month := 1; month <= 12; month++ {
			period := Period{Month: month, Year: year}

			for i := 0; i < 2+rng.IntN(3); i++ {
				account.AddIncome(Income{
					Amount:   seedAmount(rng, 1500, 3000),
					Category: incomeCats[rng.IntN(len(incomeCats))],
					Period:   period,
				})
			}

			for i := 0; i < 5+rng.IntN(6); i++ {
				account.AddExpense(Expense{
					Amount:   seedAmount(rng, 50, 500),
					Category: expenseCats[rng.IntN(len(expenseCats))],
					Period:   period,
				})
			}

			for _, cat := range expenseCats {
				account.SetBudget(Budget{
					Category: cat,
					Amount:   seedAmount(rng, 200, 800),
					Period:   period,
				})
			}
		}
	}

	return account
}

func seedAmount(rng *rand.Rand, base, spread float64) decimal.Decimal {
	return decimal.NewFromFloat(base + rng.Float64()*spread).Round(2)
}
