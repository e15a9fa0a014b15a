package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/MKhiriev/fw-env-injector/internal/store"
)

// ErrRunningCommand is returned when the build command cannot be started.
var ErrRunningCommand = errors.New("error running build command")

// ExitError carries the exit status of a build command that ran and failed.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// runCommand executes command with the current contents of the environment
// store, so the build observes the resolved settings.
func (a *App) runCommand(ctx context.Context, command []string) error {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Env = store.MapToEnviron(a.env.Environ())
	cmd.Stdin = a.streams.Stdin
	cmd.Stdout = a.streams.Stdout
	cmd.Stderr = a.streams.Stderr

	a.logger.Info().Strs("command", command).Msg("running build command")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		a.logger.Error().
			Str("command", command[0]).
			Int("code", exitErr.ExitCode()).
			Msg(MsgCommandFailed)
		return &ExitError{Command: command[0], Code: exitErr.ExitCode()}
	}

	return fmt.Errorf("%w %s: %w", ErrRunningCommand, command[0], err)
}
