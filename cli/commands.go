package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"finman/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	File      string `help:"Path to the accounts snapshot (JSON file or SQLite database)." env:"FINMAN_FILE" default:"data/accounts.json"`
	Backend   string `help:"Storage backend." enum:"json,sqlite" env:"FINMAN_BACKEND" default:"json"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Account AccountCmd `cmd:"" help:"Create, list, seed, and delete accounts."`
	Income  IncomeCmd  `cmd:"" help:"Record income."`
	Expense ExpenseCmd `cmd:"" help:"Record expenses."`
	Budget  BudgetCmd  `cmd:"" help:"Set per-category budgets."`
	Summary SummaryCmd `cmd:"" help:"Financial summary for an optional month/year filter."`
	Monthly MonthlyCmd `cmd:"" help:"Monthly overview with budget-vs-actual table."`
	Yearly  YearlyCmd  `cmd:"" help:"Twelve-month overview of a year."`
	Dump    DumpCmd    `cmd:"" help:"Dump the loaded snapshot for debugging."`
	Web     WebCmd     `cmd:"" help:"Start the local report viewer."`
}

// runContext prepares the context for a command, wiring a telemetry
// collector when --telemetry is set. The returned done func reports the
// collected timings and must be deferred by the caller.
func runContext(kctx *kong.Context, globals *Globals) (context.Context, func()) {
	ctx := context.Background()
	if !globals.Telemetry {
		return ctx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)

	return ctx, func() {
		_, _ = fmt.Fprintln(kctx.Stderr)
		collector.Report(kctx.Stderr)
	}
}
