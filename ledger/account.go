package ledger

// Account is a named container for a user's income, expense, and budget
// records. The name is a display identifier and is not guaranteed to be
// globally unique. Record slices preserve insertion order; the aggregation
// primitives rely on that order for deterministic output.
type Account struct {
	Name     string    `json:"name"`
	Incomes  []Income  `json:"incomes"`
	Expenses []Expense `json:"expenses"`
	Budgets  []Budget  `json:"budgets"`
}

// NewAccount creates an empty account with the given display name.
func NewAccount(name string) *Account {
	return &Account{Name: name}
}

// AddIncome appends an income record. The caller is responsible for boundary
// validation; the account does not re-validate.
func (a *Account) AddIncome(in Income) {
	a.Incomes = append(a.Incomes, in)
}

// AddExpense appends an expense record. The caller is responsible for
// boundary validation; the account does not re-validate.
func (a *Account) AddExpense(e Expense) {
	a.Expenses = append(a.Expenses, e)
}

// SetBudget replaces any budget with the same category and period, then
// appends the new one. Category comparison is case-sensitive string equality;
// "groceries" and "Groceries" are distinct categories. This is a whole-record
// replace, never a merge.
func (a *Account) SetBudget(b Budget) {
	kept := a.Budgets[:0]
	for _, existing := range a.Budgets {
		if existing.Category == b.Category && existing.Period == b.Period {
			continue
		}
		kept = append(kept, existing)
	}
	a.Budgets = append(kept, b)
}

// BudgetFor returns the budget for a (category, period) pair, if set.
func (a *Account) BudgetFor(category string, p Period) (Budget, bool) {
	for _, b := range a.Budgets {
		if b.Category == category && b.Period == p {
			return b, true
		}
	}
	return Budget{}, false
}
