package cli

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"finman/ledger"
	"finman/output"
)

type IncomeCmd struct {
	Add IncomeAddCmd `cmd:"" help:"Add an income record."`
}

type ExpenseCmd struct {
	Add ExpenseAddCmd `cmd:"" help:"Add an expense record."`
}

type BudgetCmd struct {
	Set BudgetSetCmd `cmd:"" help:"Set the budget for a category and period, replacing any existing one."`
}

// recordFlags are the entry fields shared by the three record commands.
// When run on a terminal with fields omitted, an interactive form collects
// them; otherwise all fields are required up front.
type recordFlags struct {
	Account  string `help:"Account to record against." required:""`
	Amount   string `help:"Positive decimal amount."`
	Category string `help:"Record category."`
	Month    int    `help:"Month (1-12)."`
	Year     int    `help:"Year."`
}

// resolve validates the amount/category/period fields, prompting for missing
// ones when interactive. All validation happens here, before any record is
// constructed; the engine trusts what it receives.
func (f *recordFlags) resolve(kind string, categories []string) (decimal.Decimal, ledger.Period, error) {
	if f.Amount == "" || f.Category == "" || f.Month == 0 || f.Year == 0 {
		if !isTerminal() {
			return decimal.Zero, ledger.Period{}, fmt.Errorf("--amount, --category, --month, and --year are required")
		}
		if err := f.prompt(kind, categories); err != nil {
			return decimal.Zero, ledger.Period{}, err
		}
	}

	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return decimal.Zero, ledger.Period{}, fmt.Errorf("invalid amount %q: enter a decimal value", f.Amount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, ledger.Period{}, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if !contains(categories, f.Category) {
		return decimal.Zero, ledger.Period{}, fmt.Errorf("unknown %s category %q", kind, f.Category)
	}
	if f.Month < 1 || f.Month > 12 {
		return decimal.Zero, ledger.Period{}, fmt.Errorf("month must be between 1 and 12, got %d", f.Month)
	}

	return amount, ledger.Period{Month: f.Month, Year: f.Year}, nil
}

// prompt collects the missing fields with an interactive form.
func (f *recordFlags) prompt(kind string, categories []string) error {
	var groups []*huh.Group

	if f.Category == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%s category", kind)).
				Options(huh.NewOptions(categories...)...).
				Value(&f.Category),
		))
	}
	if f.Amount == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Validate(validateAmount).
				Value(&f.Amount),
		))
	}
	if f.Month == 0 || f.Year == 0 {
		now := time.Now()
		if f.Month == 0 {
			f.Month = int(now.Month())
		}
		if f.Year == 0 {
			f.Year = now.Year()
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title("Month").
				Options(monthOptions()...).
				Value(&f.Month),
			huh.NewSelect[int]().
				Title("Year").
				Options(yearOptions(now.Year())...).
				Value(&f.Year),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	if err := huh.NewForm(groups...).Run(); err != nil {
		return fmt.Errorf("failed to read form: %w", err)
	}
	return nil
}

func validateAmount(s string) error {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("enter a decimal value")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

func monthOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 12)
	for m := 1; m <= 12; m++ {
		options[m-1] = huh.NewOption(fmt.Sprintf("%02d", m), m)
	}
	return options
}

func yearOptions(current int) []huh.Option[int] {
	options := make([]huh.Option[int], 0, 7)
	for y := current - 3; y <= current+3; y++ {
		options = append(options, huh.NewOption(fmt.Sprintf("%d", y), y))
	}
	return options
}

func contains(set []string, s string) bool {
	for _, c := range set {
		if c == s {
			return true
		}
	}
	return false
}

type IncomeAddCmd struct {
	recordFlags
}

func (cmd *IncomeAddCmd) Run(kctx *kong.Context, globals *Globals) error {
	amount, period, err := cmd.resolve("income", ledger.IncomeCategories)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	account.AddIncome(ledger.Income{Amount: amount, Category: cmd.Category, Period: period})
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Income of %s (%s) added for %s",
		output.Currency(amount), cmd.Category, period))
	return nil
}

type ExpenseAddCmd struct {
	recordFlags
	Item string `help:"Optional item name for the expense."`
}

func (cmd *ExpenseAddCmd) Run(kctx *kong.Context, globals *Globals) error {
	amount, period, err := cmd.resolve("expense", ledger.ExpenseCategories)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	account.AddExpense(ledger.Expense{
		Amount:   amount,
		Category: cmd.Category,
		Period:   period,
		ItemName: cmd.Item,
	})
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Expense of %s (%s) added for %s",
		output.Currency(amount), cmd.Category, period))
	return nil
}

type BudgetSetCmd struct {
	recordFlags
}

func (cmd *BudgetSetCmd) Run(kctx *kong.Context, globals *Globals) error {
	amount, period, err := cmd.resolve("budget", ledger.ExpenseCategories)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	ctx, done := runContext(kctx, globals)
	defer done()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts, err := loadAccounts(ctx, st, kctx.Stderr)
	if err != nil {
		return err
	}
	account, err := findAccount(accounts, cmd.Account)
	if err != nil {
		printError(kctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	account.SetBudget(ledger.Budget{Category: cmd.Category, Amount: amount, Period: period})
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Budget for %s set to %s for %s",
		cmd.Category, output.Currency(amount), period))
	return nil
}
