package ledger

import (
	"math/rand/v2"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "03/2024", Period{Month: 3, Year: 2024}.String())
	assert.Equal(t, "12/999", Period{Month: 12, Year: 999}.String())
	assert.Equal(t, "--/----", Period{}.String())
}

func TestValidCategories(t *testing.T) {
	assert.True(t, ValidIncomeCategory("Active Income"))
	assert.True(t, ValidIncomeCategory("Other"))
	assert.False(t, ValidIncomeCategory("active income"))
	assert.False(t, ValidIncomeCategory("Groceries"))

	assert.True(t, ValidExpenseCategory("Groceries"))
	assert.True(t, ValidExpenseCategory("Health Care"))
	assert.False(t, ValidExpenseCategory("groceries"))
	assert.False(t, ValidExpenseCategory(""))
}

func TestSeedAccount(t *testing.T) {
	account := SeedAccount("Test Account", rand.New(rand.NewPCG(1, 0)))

	assert.Equal(t, "Test Account", account.Name)

	// Five years, twelve months, bounded record counts per month.
	months := 5 * 12
	assert.True(t, len(account.Incomes) >= months*2)
	assert.True(t, len(account.Incomes) <= months*4)
	assert.True(t, len(account.Expenses) >= months*5)
	assert.True(t, len(account.Expenses) <= months*10)

	// One budget per seeded expense category per month.
	assert.Equal(t, months*6, len(account.Budgets))

	for _, in := range account.Incomes {
		assert.True(t, in.Amount.IsPositive())
		assert.True(t, ValidIncomeCategory(in.Category))
	}
	for _, e := range account.Expenses {
		assert.True(t, e.Amount.IsPositive())
		assert.True(t, ValidExpenseCategory(e.Category))
	}

	// Same seed, same data.
	again := SeedAccount("Test Account", rand.New(rand.NewPCG(1, 0)))
	assert.Equal(t, len(account.Incomes), len(again.Incomes))
	assert.Equal(t, account.Incomes[0], again.Incomes[0])
}
