package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	cause := errors.New("mkdir demo: file exists")

	tests := []struct {
		name      string
		err       *ExitError
		wantCode  int
		wantMsg   string
		wantCause error
	}{
		{"user error", NewUserError("project name is required"), ExitUserError, "project name is required", nil},
		{"system error", NewSystemError("git not found"), ExitSystemError, "git not found", nil},
		{"system error with cause", NewSystemErrorWithCause("creating directories", cause), ExitSystemError, "creating directories", cause},
		{"conflict error", NewConflictError("directory exists"), ExitConflict, "directory exists", nil},
		{"conflict error with cause", NewConflictErrorWithCause("directory exists", cause), ExitConflict, "directory exists", cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.EqualError(t, tt.err, tt.wantMsg)
			if tt.wantCause != nil {
				assert.ErrorIs(t, tt.err, tt.wantCause)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("x"), ExitUserError},
		{"system", NewSystemError("x"), ExitSystemError},
		{"wrapped conflict", fmt.Errorf("scaffold: %w", NewConflictError("x")), ExitConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}
