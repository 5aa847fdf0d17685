package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
}

func TestFileError(t *testing.T) {
	// Test creating a file error
	fileErr := NewFileError("cannot access", "/path/to/file", AccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, AccessDenied, fileErr.Kind())

	// With an underlying cause
	cause := errors.New("EACCES")
	fileErr = NewFileError("cannot access", "/path/to/file", AccessDenied, cause)
	assert.Equal(t, "cannot access: /path/to/file: EACCES", fileErr.Error())
	assert.Equal(t, cause, Unwrap(fileErr))

	// Without a path the base message is used
	fileErr = NewFileError("cannot access", "", AccessDenied, nil)
	assert.Equal(t, "cannot access", fileErr.Error())
}

func TestKindChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NewFileError("gone", "/x", NotFound, nil), IsNotFound, true},
		{"not found wrapped", fmt.Errorf("context: %w", NewFileError("gone", "/x", NotFound, nil)), IsNotFound, true},
		{"already exists", NewFileError("collision", "/x", AlreadyExists, nil), IsAlreadyExists, true},
		{"access denied", NewFileError("denied", "/x", AccessDenied, nil), IsAccessDenied, true},
		{"invalid name", NewFileError("bad name", "/x", InvalidName, nil), IsInvalidName, true},
		{"wrong kind", NewFileError("gone", "/x", NotFound, nil), IsAlreadyExists, false},
		{"plain error", errors.New("plain"), IsNotFound, false},
		{"nil", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestErrorConstants(t *testing.T) {
	assert.Equal(t, "path not found", ErrNotFound.Error())
	assert.Equal(t, NotFound, ErrNotFound.Kind())
	assert.Equal(t, "path already exists", ErrAlreadyExists.Error())
	assert.Equal(t, AlreadyExists, ErrAlreadyExists.Kind())
	assert.Equal(t, "access denied", ErrAccessDenied.Error())
	assert.Equal(t, AccessDenied, ErrAccessDenied.Kind())
	assert.Equal(t, "invalid configuration", ErrInvalidConfig.Error())
	assert.Equal(t, InvalidConfig, ErrInvalidConfig.Kind())
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("invalid value", "theme.name", InvalidConfig, nil)
	assert.Equal(t, "invalid value: theme.name", cfgErr.Error())
	assert.Equal(t, "theme.name", cfgErr.Param())
	assert.True(t, IsInvalidConfig(cfgErr))
	assert.False(t, IsInvalidConfig(New("other")))
}

func TestPluginError(t *testing.T) {
	plugErr := NewPluginError("missing command", "sample", InvalidPlugin, nil)
	assert.Equal(t, "missing command: sample", plugErr.Error())
	assert.Equal(t, "sample", plugErr.PluginName())
	assert.True(t, IsInvalidPlugin(plugErr))
}
