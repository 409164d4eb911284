package ledger

import "github.com/shopspring/decimal"

// Record is the common shape of dated, valued financial records. The three
// concrete record types implement it so the filtering and summing primitives
// can operate on any of them.
type Record interface {
	// When returns the period bucket the record belongs to.
	When() Period
	// Value returns the record's monetary amount.
	Value() decimal.Decimal
}

// Income is a single income record. Immutable once created; removed only by
// deleting the whole account.
type Income struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Period   Period          `json:"period"`
}

func (i Income) When() Period           { return i.Period }
func (i Income) Value() decimal.Decimal { return i.Amount }

// Expense is a single expense record. ItemName is optional free text carried
// over from the earliest record schema; it has no effect on aggregation.
type Expense struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Period   Period          `json:"period"`
	ItemName string          `json:"item_name,omitempty"`
}

func (e Expense) When() Period           { return e.Period }
func (e Expense) Value() decimal.Decimal { return e.Amount }

// Budget is a spending limit for one category in one period. An account holds
// at most one budget per (category, period) pair; see Account.SetBudget.
type Budget struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   Period          `json:"period"`
}

func (b Budget) When() Period           { return b.Period }
func (b Budget) Value() decimal.Decimal { return b.Amount }
