package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"finman/ledger"
	"finman/telemetry"
)

// snapshotVersion is the current envelope version written by Save.
const snapshotVersion = 2

// Snapshot is the JSON file backend. Writes are atomic (temp file plus
// rename) so a crash mid-save never leaves a half-written snapshot behind.
type Snapshot struct {
	path string
}

// NewSnapshot creates a snapshot store backed by the file at path. The file
// need not exist yet.
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Path returns the snapshot file location.
func (s *Snapshot) Path() string { return s.path }

// Load reads the snapshot file. A missing file is an empty account set. Any
// read or parse failure degrades to an empty set with an error wrapping
// ErrCorruptSnapshot, so the caller can warn and continue.
func (s *Snapshot) Load(ctx context.Context) ([]*ledger.Account, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("store.load %s", filepath.Base(s.path)))
	defer timer.End()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorruptSnapshot, s.path, err)
	}

	accounts, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorruptSnapshot, s.path, err)
	}
	return accounts, nil
}

// Save writes the full account set as an indented, versioned JSON envelope,
// replacing any prior snapshot.
func (s *Snapshot) Save(ctx context.Context, accounts []*ledger.Account) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("store.save %s", filepath.Base(s.path)))
	defer timer.End()

	if accounts == nil {
		accounts = []*ledger.Account{}
	}
	data, err := json.MarshalIndent(envelope{
		Version:  snapshotVersion,
		Accounts: accounts,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".accounts-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

type envelope struct {
	Version  int               `json:"version"`
	Accounts []*ledger.Account `json:"accounts"`
}

// decodeSnapshot accepts the current versioned envelope as well as the legacy
// top-level array written by earlier versions of the program. Legacy records
// are migrated forward to the canonical shape: records with no category get
// "Other", records with no month/year keep the zero "unperiod" sentinel.
func decodeSnapshot(data []byte) ([]*ledger.Account, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		return decodeLegacy(trimmed)
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	for _, a := range env.Accounts {
		if a == nil {
			return nil, fmt.Errorf("null account entry")
		}
	}
	return env.Accounts, nil
}

// Legacy snapshots use the PascalCase field names of the original program.
type legacyAccount struct {
	AccountName string            `json:"AccountName"`
	Incomes     []json.RawMessage `json:"Incomes"`
	Expenses    []legacyExpense   `json:"Expenses"`
	Budgets     []legacyBudget    `json:"Budgets"`
}

type legacyRecord struct {
	Amount   decimal.Decimal `json:"Amount"`
	Category string          `json:"Category"`
	Month    int             `json:"Month"`
	Year     int             `json:"Year"`
}

type legacyExpense struct {
	legacyRecord
	ItemName string `json:"ItemName"`
}

type legacyBudget legacyRecord

func decodeLegacy(data []byte) ([]*ledger.Account, error) {
	var raw []legacyAccount
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	accounts := make([]*ledger.Account, 0, len(raw))
	for _, la := range raw {
		account := ledger.NewAccount(la.AccountName)

		for _, ri := range la.Incomes {
			income, err := migrateIncome(ri)
			if err != nil {
				return nil, err
			}
			account.AddIncome(income)
		}
		for _, le := range la.Expenses {
			account.AddExpense(ledger.Expense{
				Amount:   le.Amount,
				Category: defaultCategory(le.Category),
				Period:   ledger.Period{Month: le.Month, Year: le.Year},
				ItemName: le.ItemName,
			})
		}
		for _, lb := range la.Budgets {
			account.SetBudget(ledger.Budget{
				Category: defaultCategory(lb.Category),
				Amount:   lb.Amount,
				Period:   ledger.Period{Month: lb.Month, Year: lb.Year},
			})
		}

		accounts = append(accounts, account)
	}
	return accounts, nil
}

// migrateIncome handles the oldest income shape, a bare decimal with no
// category or period, alongside the object shape.
func migrateIncome(raw json.RawMessage) (ledger.Income, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] != '{' {
		var amount decimal.Decimal
		if err := json.Unmarshal(trimmed, &amount); err != nil {
			return ledger.Income{}, fmt.Errorf("bare income amount: %w", err)
		}
		return ledger.Income{Amount: amount, Category: "Other"}, nil
	}

	var li legacyRecord
	if err := json.Unmarshal(trimmed, &li); err != nil {
		return ledger.Income{}, err
	}
	return ledger.Income{
		Amount:   li.Amount,
		Category: defaultCategory(li.Category),
		Period:   ledger.Period{Month: li.Month, Year: li.Year},
	}, nil
}

func defaultCategory(category string) string {
	if category == "" {
		return "Other"
	}
	return category
}
