package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"finman/ledger"
)

type AccountCmd struct {
	Create AccountCreateCmd `cmd:"" help:"Create a new account."`
	List   AccountListCmd   `cmd:"" help:"List all accounts."`
	Delete AccountDeleteCmd `cmd:"" help:"Delete an account and all of its records."`
	Seed   AccountSeedCmd   `cmd:"" help:"Create a demo account filled with generated records."`
}

type AccountCreateCmd struct {
	Name string `arg:"" help:"Display name for the new account."`
}

func (cmd *AccountCreateCmd) Run(kctx *kong.Context, globals *Globals) error {
	if strings.TrimSpace(cmd.Name) == "" {
		printError(kctx.Stderr, "account name cannot be empty")
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

	for _, a := range accounts {
		if a.Name == cmd.Name {
			printError(kctx.Stderr, fmt.Sprintf("account %q already exists", cmd.Name))
			return NewCommandError(1)
		}
	}

	accounts = append(accounts, ledger.NewAccount(cmd.Name))
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Account %q created", cmd.Name))
	return nil
}

type AccountListCmd struct{}

func (cmd *AccountListCmd) Run(kctx *kong.Context, globals *Globals) error {
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

	if len(accounts) == 0 {
		printInfof(kctx.Stdout, "no accounts yet")
		return nil
	}

	for _, a := range accounts {
		_, _ = fmt.Fprintf(kctx.Stdout, "%s %s\n",
			accentStyle.Render(a.Name),
			fmt.Sprintf("(%d incomes, %d expenses, %d budgets)",
				len(a.Incomes), len(a.Expenses), len(a.Budgets)),
		)
	}
	return nil
}

type AccountDeleteCmd struct {
	Name  string `arg:"" help:"Name of the account to delete."`
	Force bool   `help:"Delete without confirmation."`
}

func (cmd *AccountDeleteCmd) Run(kctx *kong.Context, globals *Globals) error {
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

	index := -1
	for i, a := range accounts {
		if a.Name == cmd.Name {
			index = i
			break
		}
	}
	if index == -1 {
		printError(kctx.Stderr, fmt.Sprintf("account %q not found", cmd.Name))
		return NewCommandError(1)
	}

	if !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("Delete account %q and all of its records?", cmd.Name))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(kctx.Stdout, "aborted")
			return nil
		}
	}

	// Deleting an account invalidates any reference to it; the remaining
	// set is persisted wholesale.
	accounts = append(accounts[:index], accounts[index+1:]...)
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Account %q deleted", cmd.Name))
	return nil
}

type AccountSeedCmd struct {
	Name string `arg:"" optional:"" default:"Test Account" help:"Name for the demo account."`
	Seed uint64 `help:"Seed for the random generator (0 uses the current time)."`
}

func (cmd *AccountSeedCmd) Run(kctx *kong.Context, globals *Globals) error {
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

	for _, a := range accounts {
		if a.Name == cmd.Name {
			printError(kctx.Stderr, fmt.Sprintf("account %q already exists", cmd.Name))
			return NewCommandError(1)
		}
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	account := ledger.SeedAccount(cmd.Name, rng)
	accounts = append(accounts, account)
	if err := st.Save(ctx, accounts); err != nil {
		return err
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Account %q seeded with %d incomes, %d expenses, %d budgets",
		cmd.Name, len(account.Incomes), len(account.Expenses), len(account.Budgets)))
	return nil
}
