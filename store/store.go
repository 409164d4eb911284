// Package store persists the full set of accounts as a single snapshot.
//
// The engine only ever needs "give me all accounts" and "persist all
// accounts": saving overwrites the entire prior snapshot, there is no
// incremental append. This makes the store trivially consistent for a single
// session, but concurrent writers would silently clobber each other's
// changes; finman assumes one active session at a time and does not attempt
// locking or conflict detection.
//
// Two backends implement the contract: a JSON snapshot file (the canonical
// format, compatible with legacy accounts.json files) and a SQLite database.
package store

import (
	"context"
	"errors"

	"finman/ledger"
)

// ErrCorruptSnapshot marks a snapshot that exists but cannot be read or
// parsed. Callers are expected to treat it as a non-fatal warning and proceed
// with an empty account list rather than abort.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Store loads and saves the full account set.
type Store interface {
	// Load returns all accounts. A missing snapshot yields an empty list
	// and no error; an unreadable or unparsable snapshot yields an empty
	// list and an error wrapping ErrCorruptSnapshot.
	Load(ctx context.Context) ([]*ledger.Account, error)

	// Save persists the full account set, replacing any prior snapshot.
	Save(ctx context.Context, accounts []*ledger.Account) error
}
