package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"finman/ledger"
	"finman/store"
)

// openStore constructs the configured storage backend. The returned close
// func releases backend resources and must always be called.
func openStore(globals *Globals) (store.Store, func() error, error) {
	switch globals.Backend {
	case "sqlite":
		db, err := store.OpenSQLite(globals.File)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return store.NewSnapshot(globals.File), func() error { return nil }, nil
	}
}

// loadAccounts loads the full account set, downgrading a corrupt snapshot to
// a warning plus an empty list, per the store contract.
func loadAccounts(ctx context.Context, st store.Store, stderr io.Writer) ([]*ledger.Account, error) {
	accounts, err := st.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrCorruptSnapshot) {
			printWarning(stderr, fmt.Sprintf("starting with empty accounts: %v", err))
			return nil, nil
		}
		return nil, err
	}
	return accounts, nil
}

// findAccount returns the account with the given name, or an error listing
// what exists.
func findAccount(accounts []*ledger.Account, name string) (*ledger.Account, error) {
	for _, a := range accounts {
		if a.Name == name {
			return a, nil
		}
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts exist yet; create one with 'finman account create'")
	}
	return nil, fmt.Errorf("account %q not found", name)
}
