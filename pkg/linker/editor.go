package linker

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/logging"
)

// Editor opens the resolved zone for review and blocks until it is closed
type Editor struct {
	// Command is the configured editor command line; empty falls back to
	// $EDITOR, then VS Code, then Notepad
	Command string

	Runner Runner

	// LookPath locates fallback editors; nil uses exec.LookPath
	LookPath func(string) (string, error)

	// Getenv reads $EDITOR; nil uses os.Getenv
	Getenv func(string) string
}

// Resolve returns the program and arguments used to open path
func (e Editor) Resolve(path string) (string, []string, error) {
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookPath := e.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	for _, configured := range []string{e.Command, getenv("EDITOR")} {
		if fields := strings.Fields(configured); len(fields) > 0 {
			return fields[0], append(fields[1:], path), nil
		}
	}

	if code, err := lookPath("code"); err == nil {
		return code, []string{"--wait", path}, nil
	}
	if notepad, err := lookPath("notepad"); err == nil {
		return notepad, []string{path}, nil
	}

	return "", nil, errors.New(errors.ErrEditorFailed, "failed to locate VSCode and Notepad on your system")
}

// Wait opens path and returns once the editor exits
func (e Editor) Wait(ctx context.Context, path string) error {
	name, args, err := e.Resolve(path)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("linker.editor")
	logger.Info().Str("editor", name).Str("path", path).Msg("Waiting for the editor to close")

	code, err := e.Runner.Run(ctx, name, args)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEditorFailed, "failed to start %s", name)
	}
	if code != 0 {
		return errors.Newf(errors.ErrEditorFailed, "%s exited with status %d", name, code)
	}
	return nil
}
