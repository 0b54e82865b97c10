package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// Result holds what a command wrote while running.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// RunCommand executes a command as the subcommand of a test app, feeding it
// stdin and capturing its output.
func RunCommand(t *testing.T, command *cli.Command, stdin string, args ...string) Result {
	t.Helper()

	return RunCommandWithContext(context.Background(), t, command, strings.NewReader(stdin), args...)
}

// RunCommandWithContext executes a command with a custom context and input.
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, stdin io.Reader, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer

	// Create a test CLI app
	app := &cli.Command{
		Name:      "test",
		Commands:  []*cli.Command{command},
		Reader:    stdin,
		Writer:    &stdout,
		ErrWriter: &stderr,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)
	err := app.Run(ctx, fullArgs)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}
