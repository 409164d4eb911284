package cli

import (
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"finman/web"
)

type WebCmd struct {
	Port  int  `help:"Port to listen on." default:"8179"`
	Watch bool `help:"Reload automatically when the snapshot changes on disk." default:"true" negatable:""`
}

func (cmd *WebCmd) Run(kctx *kong.Context, globals *Globals) error {
	ctx, done := runContext(kctx, globals)
	defer done()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(globals)
	if err != nil {
		return err
	}
	defer closeStore()

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	watchFile := globals.File
	if globals.Backend != "json" {
		// Change events on the database file carry no signal.
		watchFile = ""
	}

	server := web.New(st, watchFile, log)
	server.Port = cmd.Port
	server.Version = Version
	server.CommitSHA = CommitSHA
	server.WatchEnabled = cmd.Watch

	printInfof(kctx.Stdout, "serving reports on http://%s:%d", server.Host, server.Port)
	return server.Start(ctx)
}
