package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotmanError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.DotmanError
		expected string
	}{
		{
			name:     "plain",
			err:      errors.New(errors.ErrSourceDuplicate, "vimrc is already managed"),
			expected: "[SOURCE_DUPLICATE] vimrc is already managed",
		},
		{
			name:     "formatted",
			err:      errors.Newf(errors.ErrParse, "expected %s, got %s", "value", "end of line"),
			expected: "[PARSE] expected value, got end of line",
		},
		{
			name:     "wrapped",
			err:      errors.Wrap(stderrors.New("permission denied"), errors.ErrFileWrite, "failed to write files"),
			expected: "[FILE_WRITE] failed to write files: permission denied",
		},
		{
			name:     "wrapped and formatted",
			err:      errors.Wrapf(stderrors.New("exit status 128"), errors.ErrGitCommand, "git %s failed", "push"),
			expected: "[GIT_COMMAND] git push failed: exit status 128",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing happened"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing happened in %s", "apply"))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrUndefinedVariable, "undefined variable: host").
		WithDetail("line", 3).
		WithDetails(map[string]interface{}{"text": "$host", "file": 1})

	assert.Equal(t, map[string]interface{}{"line": 3, "text": "$host", "file": 1}, err.Details)

	// details are found through any wrapping
	outer := fmt.Errorf("apply: %w", err)
	assert.Equal(t, 3, errors.GetErrorDetails(outer)["line"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	missing := errors.New(errors.ErrFileNotFound, "vimrc does not exist")
	other := errors.New(errors.ErrFileNotFound, "zshrc does not exist")
	exists := errors.New(errors.ErrFileExists, "vimrc exists")

	assert.True(t, stderrors.Is(missing, other))
	assert.False(t, stderrors.Is(missing, exists))
	assert.True(t, stderrors.Is(fmt.Errorf("add: %w", missing), other))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{name: "matching", err: errors.New(errors.ErrGitInitialized, "done"), code: errors.ErrGitInitialized, expected: true},
		{name: "different", err: errors.New(errors.ErrGitInitialized, "done"), code: errors.ErrGitCommand},
		{name: "wrapped by fmt", err: fmt.Errorf("x: %w", errors.New(errors.ErrConfigSave, "y")), code: errors.ErrConfigSave, expected: true},
		{name: "outermost code wins", err: errors.Wrap(errors.New(errors.ErrFileAccess, "denied"), errors.ErrConfigLoad, "load"), code: errors.ErrFileAccess},
		{name: "standard error", err: stderrors.New("boom"), code: errors.ErrUnknown},
		{name: "nil", err: nil, code: errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrSourceNotManaged, errors.GetErrorCode(errors.New(errors.ErrSourceNotManaged, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestUnwrapChain(t *testing.T) {
	rootCause := stderrors.New("no such file or directory")
	readErr := errors.Wrap(rootCause, errors.ErrFileAccess, "failed to read dotman.toml")
	loadErr := errors.Wrap(readErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))
	assert.True(t, stderrors.Is(loadErr, rootCause))

	var inner *errors.DotmanError
	require.True(t, stderrors.As(loadErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrFileAccess, inner.Code)
}

func TestIsTemplateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "tokenize", err: errors.New(errors.ErrTokenize, "bad"), expected: true},
		{name: "parse", err: errors.New(errors.ErrParse, "bad"), expected: true},
		{name: "undefined variable", err: errors.New(errors.ErrUndefinedVariable, "bad"), expected: true},
		{name: "under another code", err: errors.Wrap(errors.New(errors.ErrParse, "bad"), errors.ErrInternal, "outer")},
		{name: "config", err: errors.New(errors.ErrConfigLoad, "bad")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsTemplateError(tt.err))
		})
	}
}
