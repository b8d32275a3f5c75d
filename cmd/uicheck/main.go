// Command uicheck runs browser checks against the demo sites.
//
//	uicheck list
//	uicheck run --tags regression
//	uicheck run --driver playwright --site the-internet=http://localhost:8080
//
// The exit code is 0 when every check passed, 1 when a check failed, 2 when
// a browser session could not be created and 3 for invalid configuration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/thesyncim/uicheck/pkg/errext"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(ctx, os.Stdout, os.Stderr)
	root.stdoutTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	root.stderrTTY = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	err := root.execute()
	stop()
	os.Exit(int(errext.Code(err)))
}
