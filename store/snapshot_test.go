package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"finman/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snapshotAt(t *testing.T) *Snapshot {
	t.Helper()
	return NewSnapshot(filepath.Join(t.TempDir(), "accounts.json"))
}

func TestSnapshot_LoadMissingFile(t *testing.T) {
	s := snapshotAt(t)

	accounts, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(accounts))
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := snapshotAt(t)

	a := ledger.NewAccount("Household")
	a.AddIncome(ledger.Income{Amount: d("2500.50"), Category: "Active Income", Period: ledger.Period{Month: 3, Year: 2024}})
	a.AddExpense(ledger.Expense{Amount: d("42.50"), Category: "Groceries", Period: ledger.Period{Month: 3, Year: 2024}, ItemName: "weekly shop"})
	a.SetBudget(ledger.Budget{Category: "Groceries", Amount: d("300"), Period: ledger.Period{Month: 3, Year: 2024}})

	b := ledger.NewAccount("Side Project")

	assert.NoError(t, s.Save(context.Background(), []*ledger.Account{a, b}))

	loaded, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, len(loaded))

	assert.Equal(t, "Household", loaded[0].Name)
	assert.Equal(t, 1, len(loaded[0].Incomes))
	assert.Equal(t, "2500.5", loaded[0].Incomes[0].Amount.String())
	assert.Equal(t, "weekly shop", loaded[0].Expenses[0].ItemName)
	assert.Equal(t, ledger.Period{Month: 3, Year: 2024}, loaded[0].Budgets[0].Period)

	assert.Equal(t, "Side Project", loaded[1].Name)
	assert.Equal(t, 0, len(loaded[1].Incomes))
}

func TestSnapshot_SaveOverwrites(t *testing.T) {
	s := snapshotAt(t)

	a := ledger.NewAccount("First")
	assert.NoError(t, s.Save(context.Background(), []*ledger.Account{a}))

	b := ledger.NewAccount("Second")
	assert.NoError(t, s.Save(context.Background(), []*ledger.Account{b}))

	loaded, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(loaded))
	assert.Equal(t, "Second", loaded[0].Name)
}

func TestSnapshot_SaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "accounts.json")
	s := NewSnapshot(path)

	assert.NoError(t, s.Save(context.Background(), nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSnapshot_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json at all", "definitely not json"},
		{"truncated object", `{"version": 2, "accounts": [`},
		{"null account entry", `{"version": 2, "accounts": [null]}`},
		{"legacy array with bad record", `[{"AccountName": "X", "Incomes": ["not-a-number"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snapshotAt(t)
			assert.NoError(t, os.WriteFile(s.Path(), []byte(tt.data), 0o644))

			_, err := s.Load(context.Background())
			assert.Error(t, err)
			assert.IsError(t, err, ErrCorruptSnapshot)
		})
	}
}

func TestSnapshot_LoadLegacyArray(t *testing.T) {
	legacy := `[
	  {
	    "AccountName": "Old Account",
	    "Incomes": [
	      1500.25,
	      {"Amount": 2000, "Category": "Active Income", "Month": 3, "Year": 2024}
	    ],
	    "Expenses": [
	      {"Amount": 42.5, "Category": "", "Month": 3, "Year": 2024, "ItemName": "misc"}
	    ],
	    "Budgets": [
	      {"Amount": 300, "Category": "Groceries", "Month": 3, "Year": 2024},
	      {"Amount": 350, "Category": "Groceries", "Month": 3, "Year": 2024}
	    ]
	  }
	]`

	s := snapshotAt(t)
	assert.NoError(t, os.WriteFile(s.Path(), []byte(legacy), 0o644))

	loaded, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(loaded))

	a := loaded[0]
	assert.Equal(t, "Old Account", a.Name)

	// Bare-number incomes migrate to the fallback category with no period.
	assert.Equal(t, 2, len(a.Incomes))
	assert.Equal(t, "1500.25", a.Incomes[0].Amount.String())
	assert.Equal(t, "Other", a.Incomes[0].Category)
	assert.True(t, a.Incomes[0].Period.IsZero())
	assert.Equal(t, "Active Income", a.Incomes[1].Category)

	// Empty categories migrate to the fallback too.
	assert.Equal(t, "Other", a.Expenses[0].Category)
	assert.Equal(t, "misc", a.Expenses[0].ItemName)

	// Duplicate legacy budgets collapse, last one wins.
	assert.Equal(t, 1, len(a.Budgets))
	assert.Equal(t, "350", a.Budgets[0].Amount.String())
}

func TestSnapshot_LegacyMigratesForwardOnSave(t *testing.T) {
	legacy := `[{"AccountName": "Old", "Incomes": [100], "Expenses": [], "Budgets": []}]`

	s := snapshotAt(t)
	assert.NoError(t, os.WriteFile(s.Path(), []byte(legacy), 0o644))

	loaded, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, s.Save(context.Background(), loaded))

	// The rewritten snapshot is the current envelope and reloads cleanly.
	data, err := os.ReadFile(s.Path())
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"version": 2`)

	again, err := s.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Other", again[0].Incomes[0].Category)
}
