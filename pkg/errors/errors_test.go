// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, codes and exit status mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t6modm/t6modm/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "zone_not_found",
			code:    errors.ErrZoneNotFound,
			message: "zone weapons not found",
			wantStr: "[ZONE_NOT_FOUND] zone weapons not found",
		},
		{
			name:    "config_invalid",
			code:    errors.ErrConfigValid,
			message: "OAT_HOME is not defined",
			wantStr: "[CONFIG_INVALID] OAT_HOME is not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")
	err := errors.Wrapf(base, errors.ErrFileWrite, "failed to write %s", "mod.zone")

	require.NotNil(t, err)
	assert.Equal(t, "[FILE_WRITE] failed to write mod.zone: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))
	assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrAssetNotFound, "images/*.png matched nothing")
	wrapped := fmt.Errorf("build: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrAssetNotFound))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrZoneNotFound))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrAssetNotFound))
	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrAssetNotFound, "")))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrIncludeCycle, errors.GetErrorCode(errors.New(errors.ErrIncludeCycle, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrZoneNotFound, "missing").
		WithDetail("source", "mod.zone").
		WithDetails(map[string]interface{}{"target": "sub"})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "mod.zone", details["source"])
	assert.Equal(t, "sub", details["target"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: stderrors.New("boom"), want: 1},
		{name: "coded_without_status", err: errors.New(errors.ErrConfigValid, "x"), want: 1},
		{
			name: "linker_status",
			err:  errors.New(errors.ErrLinkerFailed, "linker failed").WithDetail(errors.DetailExitCode, 3),
			want: 3,
		},
		{
			name: "wrapped_linker_status",
			err:  fmt.Errorf("build: %w", errors.New(errors.ErrLinkerFailed, "x").WithDetail(errors.DetailExitCode, 7)),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}
