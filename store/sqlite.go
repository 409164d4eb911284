package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"finman/ledger"
	"finman/telemetry"
)

// SQLite is the database-backed store. It keeps the same full-snapshot
// contract as the JSON backend: Save replaces everything in one transaction,
// Load reads everything back in insertion order.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary creates) the database at path and runs
// schema migrations.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads all accounts with their records in stored order. A stored
// amount that no longer parses as a decimal degrades to the
// ErrCorruptSnapshot warning path, like an unparsable JSON snapshot.
func (s *SQLite) Load(ctx context.Context) ([]*ledger.Account, error) {
	timer := telemetry.StartTimer(ctx, "store.load sqlite")
	defer timer.End()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	type accountRow struct {
		id      int64
		account *ledger.Account
	}
	var loaded []accountRow
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		loaded = append(loaded, accountRow{id: id, account: ledger.NewAccount(name)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	for _, ar := range loaded {
		if err := s.loadRecords(ctx, ar.id, ar.account); err != nil {
			return nil, err
		}
	}

	accounts := make([]*ledger.Account, len(loaded))
	for i, ar := range loaded {
		accounts[i] = ar.account
	}
	return accounts, nil
}

func (s *SQLite) loadRecords(ctx context.Context, accountID int64, account *ledger.Account) error {
	incomes, err := s.db.QueryContext(ctx,
		`SELECT amount, category, month, year FROM incomes WHERE account_id = ? ORDER BY position`, accountID)
	if err != nil {
		return fmt.Errorf("query incomes: %w", err)
	}
	defer incomes.Close()
	for incomes.Next() {
		var amount, category string
		var month, year int
		if err := incomes.Scan(&amount, &category, &month, &year); err != nil {
			return fmt.Errorf("scan income: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("%w: income amount %q in account %q", ErrCorruptSnapshot, amount, account.Name)
		}
		account.AddIncome(ledger.Income{
			Amount:   d,
			Category: category,
			Period:   ledger.Period{Month: month, Year: year},
		})
	}
	if err := incomes.Err(); err != nil {
		return fmt.Errorf("iterate incomes: %w", err)
	}

	expenses, err := s.db.QueryContext(ctx,
		`SELECT amount, category, month, year, item_name FROM expenses WHERE account_id = ? ORDER BY position`, accountID)
	if err != nil {
		return fmt.Errorf("query expenses: %w", err)
	}
	defer expenses.Close()
	for expenses.Next() {
		var amount, category, itemName string
		var month, year int
		if err := expenses.Scan(&amount, &category, &month, &year, &itemName); err != nil {
			return fmt.Errorf("scan expense: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("%w: expense amount %q in account %q", ErrCorruptSnapshot, amount, account.Name)
		}
		account.AddExpense(ledger.Expense{
			Amount:   d,
			Category: category,
			Period:   ledger.Period{Month: month, Year: year},
			ItemName: itemName,
		})
	}
	if err := expenses.Err(); err != nil {
		return fmt.Errorf("iterate expenses: %w", err)
	}

	budgets, err := s.db.QueryContext(ctx,
		`SELECT amount, category, month, year FROM budgets WHERE account_id = ? ORDER BY position`, accountID)
	if err != nil {
		return fmt.Errorf("query budgets: %w", err)
	}
	defer budgets.Close()
	for budgets.Next() {
		var amount, category string
		var month, year int
		if err := budgets.Scan(&amount, &category, &month, &year); err != nil {
			return fmt.Errorf("scan budget: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("%w: budget amount %q in account %q", ErrCorruptSnapshot, amount, account.Name)
		}
		account.Budgets = append(account.Budgets, ledger.Budget{
			Amount:   d,
			Category: category,
			Period:   ledger.Period{Month: month, Year: year},
		})
	}
	if err := budgets.Err(); err != nil {
		return fmt.Errorf("iterate budgets: %w", err)
	}

	return nil
}

// Save replaces the entire stored account set in a single transaction,
// mirroring the JSON backend's full-snapshot overwrite semantics.
func (s *SQLite) Save(ctx context.Context, accounts []*ledger.Account) error {
	timer := telemetry.StartTimer(ctx, "store.save sqlite")
	defer timer.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"budgets", "expenses", "incomes", "accounts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, account := range accounts {
		res, err := tx.ExecContext(ctx, `INSERT INTO accounts (name) VALUES (?)`, account.Name)
		if err != nil {
			return fmt.Errorf("insert account %q: %w", account.Name, err)
		}
		accountID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("account id for %q: %w", account.Name, err)
		}

		for i, in := range account.Incomes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO incomes (account_id, position, amount, category, month, year) VALUES (?, ?, ?, ?, ?, ?)`,
				accountID, i, in.Amount.String(), in.Category, in.Period.Month, in.Period.Year); err != nil {
				return fmt.Errorf("insert income: %w", err)
			}
		}
		for i, e := range account.Expenses {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO expenses (account_id, position, amount, category, month, year, item_name) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				accountID, i, e.Amount.String(), e.Category, e.Period.Month, e.Period.Year, e.ItemName); err != nil {
				return fmt.Errorf("insert expense: %w", err)
			}
		}
		for i, b := range account.Budgets {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO budgets (account_id, position, amount, category, month, year) VALUES (?, ?, ?, ?, ?, ?)`,
				accountID, i, b.Amount.String(), b.Category, b.Period.Month, b.Period.Year); err != nil {
				return fmt.Errorf("insert budget: %w", err)
			}
		}
	}

	return tx.Commit()
}
