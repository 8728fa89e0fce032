// Command matcompare searches a materials backend and compares materials,
// either in a full-screen terminal UI or through plain subcommands.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/matcompare/internal/cli"
	"github.com/rshade/matcompare/internal/session"
	"github.com/rshade/matcompare/pkg/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}

// extractExitCode maps errors the user can fix by changing the invocation to
// exitUsage and everything else to exitError.
func extractExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrNotInteractive),
		errors.Is(err, cli.ErrUnsupportedFormat),
		errors.Is(err, session.ErrQueryTooShort):
		return exitUsage
	default:
		return exitError
	}
}
