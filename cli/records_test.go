package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"finman/ledger"
)

func TestRecordFlags_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		flags   recordFlags
		kind    string
		cats    []string
		wantErr string
	}{
		{
			name:  "valid expense fields",
			flags: recordFlags{Account: "A", Amount: "42.5", Category: "Groceries", Month: 3, Year: 2024},
			kind:  "expense",
			cats:  ledger.ExpenseCategories,
		},
		{
			name:    "missing fields off-terminal",
			flags:   recordFlags{Account: "A", Amount: "42.50"},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "required",
		},
		{
			name:    "unparsable amount",
			flags:   recordFlags{Account: "A", Amount: "twelve", Category: "Groceries", Month: 3, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "invalid amount",
		},
		{
			name:    "zero amount",
			flags:   recordFlags{Account: "A", Amount: "0", Category: "Groceries", Month: 3, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "must be positive",
		},
		{
			name:    "negative amount",
			flags:   recordFlags{Account: "A", Amount: "-5", Category: "Groceries", Month: 3, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "must be positive",
		},
		{
			name:    "category outside the set",
			flags:   recordFlags{Account: "A", Amount: "10", Category: "Gambling", Month: 3, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "unknown expense category",
		},
		{
			name:    "category is case-sensitive",
			flags:   recordFlags{Account: "A", Amount: "10", Category: "groceries", Month: 3, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "unknown expense category",
		},
		{
			name:    "month out of range",
			flags:   recordFlags{Account: "A", Amount: "10", Category: "Groceries", Month: 13, Year: 2024},
			kind:    "expense",
			cats:    ledger.ExpenseCategories,
			wantErr: "month must be between",
		},
		{
			name:  "income category set applies",
			flags: recordFlags{Account: "A", Amount: "10", Category: "Passive Income", Month: 1, Year: 2024},
			kind:  "income",
			cats:  ledger.IncomeCategories,
		},
		{
			name:    "expense category rejected for income",
			flags:   recordFlags{Account: "A", Amount: "10", Category: "Groceries", Month: 1, Year: 2024},
			kind:    "income",
			cats:    ledger.IncomeCategories,
			wantErr: "unknown income category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, period, err := tt.flags.resolve(tt.kind, tt.cats)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.flags.Amount, amount.String())
			assert.Equal(t, ledger.Period{Month: tt.flags.Month, Year: tt.flags.Year}, period)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount("12.34"))
	assert.Error(t, validateAmount("abc"))
	assert.Error(t, validateAmount("0"))
	assert.Error(t, validateAmount("-1"))
}
