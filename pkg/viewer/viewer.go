// Package viewer opens the merged package.mask next to package.unmask in
// an external, interactive merge tool such as vimdiff.
package viewer

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/shell"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
	"github.com/arthur-debert/diffmask/pkg/types"
)

// DefaultCommand is used when no viewer command is configured.
const DefaultCommand = "vimdiff"

// Runner starts a command and waits for it.
type Runner func(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Viewer runs Command with the merged mask and the unmask file as its
// two last arguments.
type Viewer struct {
	FS types.FS
	// Command is split with shell quoting rules; $VARS are expanded
	// from the environment.
	Command string
	// TempDir holds the merged mask while the viewer runs. Empty means
	// the system default.
	TempDir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Run Runner
}

// Compare blocks until the viewer exits. Its exit status is ignored;
// only failing to start it is an error.
func (v Viewer) Compare(ctx context.Context, maskText, unmaskPath string) error {
	logger := logging.GetLogger("viewer")

	command := v.Command
	if command == "" {
		command = DefaultCommand
	}
	fields, err := shell.Fields(command, os.Getenv)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse viewer command %q", command)
	}
	if len(fields) == 0 {
		return errors.New(errors.ErrInvalidInput, "viewer command is empty")
	}

	tmp, err := v.FS.CreateTemp(v.TempDir, "package.mask.*", []byte(maskText))
	if err != nil {
		return errors.Wrap(err, errors.ErrFileCreate, "cannot create temporary mask file")
	}
	defer func() {
		if err := v.FS.Remove(tmp); err != nil {
			logger.Warn().Err(err).Str("path", tmp).Msg("Temporary mask file left behind")
		}
	}()

	run := v.Run
	if run == nil {
		run = ExecRunner
	}
	args := append(fields[1:], tmp, unmaskPath)
	logger.Info().Str("command", fields[0]).Strs("args", args).Msg("Starting viewer")

	err = run(ctx, fields[0], args, v.Stdin, v.Stdout, v.Stderr)
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		logger.Debug().Int("status", exitErr.ExitCode()).Msg("Viewer exited with non-zero status")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrViewerExecute, "cannot run %s", fields[0])
	}
	return nil
}
