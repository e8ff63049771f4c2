package linker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/testutil"
)

func lookPathIn(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", fmt.Errorf("%s not found", name)
	}
}

func TestEditorResolve(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		envValue string
		found    []string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "configured_command",
			command:  "subl --wait",
			envValue: "vim",
			found:    []string{"code"},
			wantName: "subl",
			wantArgs: []string{"--wait", "/tmp/mod.zone"},
		},
		{
			name:     "editor_variable",
			envValue: "vim",
			found:    []string{"code"},
			wantName: "vim",
			wantArgs: []string{"/tmp/mod.zone"},
		},
		{
			name:     "vscode",
			found:    []string{"code", "notepad"},
			wantName: "/usr/bin/code",
			wantArgs: []string{"--wait", "/tmp/mod.zone"},
		},
		{
			name:     "notepad",
			found:    []string{"notepad"},
			wantName: "/usr/bin/notepad",
			wantArgs: []string{"/tmp/mod.zone"},
		},
		{
			name:    "nothing_available",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Editor{
				Command:  tt.command,
				LookPath: lookPathIn(tt.found...),
				Getenv:   func(string) string { return tt.envValue },
			}

			name, args, err := e.Resolve("/tmp/mod.zone")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestEditorWait(t *testing.T) {
	runner := &testutil.FakeRunner{}
	e := Editor{Command: "vim", Runner: runner}

	require.NoError(t, e.Wait(context.Background(), "/tmp/mod.zone"))
	require.Len(t, runner.Calls, 1)
	assert.Equal(t, testutil.Call{Name: "vim", Args: []string{"/tmp/mod.zone"}}, runner.Calls[0])

	runner.ExitCode = 2
	err := e.Wait(context.Background(), "/tmp/mod.zone")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorFailed))
}
