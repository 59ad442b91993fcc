package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/diffmask/cmd/diffmask"
	"github.com/arthur-debert/diffmask/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := diffmask.NewRootCmd()
	rootCmd.SetArgs(diffmask.ArgsFor(os.Args[0], os.Args[1:]))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Errors go to stderr, in red on a terminal
		if r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr); rerr == nil {
			_ = r.RenderError(err)
		}
		stop()
		os.Exit(1)
	}
}
