package cli

import (
	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

type DumpCmd struct{}

func (cmd *DumpCmd) Run(kctx *kong.Context, globals *Globals) error {
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

	repr.New(kctx.Stdout, repr.Indent("  ")).Println(accounts)
	return nil
}
