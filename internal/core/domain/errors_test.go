package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidLink", ErrInvalidLink},
		{"ErrGitHubAPI", ErrGitHubAPI},
		{"ErrBlockedURL", ErrBlockedURL},
		{"ErrCancelled", ErrCancelled},
		{"ErrDownloadFailed", ErrDownloadFailed},
		{"ErrNoSelection", ErrNoSelection},
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestDownloadError_UnwrapsToSentinel(t *testing.T) {
	err := &DownloadError{URL: "https://raw.githubusercontent.com/a/b/main/x.png", StatusCode: 404}

	assert.True(t, errors.Is(err, ErrDownloadFailed))
	assert.Contains(t, err.Error(), "404")
}

func TestDownloadError_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("save: %w", &DownloadError{URL: "u", Err: cause})

	assert.True(t, errors.Is(err, ErrDownloadFailed))
	assert.True(t, errors.Is(err, cause))

	var dlErr *DownloadError
	assert.True(t, errors.As(err, &dlErr))
	assert.Equal(t, 0, dlErr.StatusCode)
}

func TestIsUserFacing(t *testing.T) {
	assert.False(t, IsUserFacing(nil))
	assert.False(t, IsUserFacing(ErrCancelled))
	assert.False(t, IsUserFacing(fmt.Errorf("scan: %w", ErrCancelled)))
	assert.True(t, IsUserFacing(ErrInvalidLink))
	assert.True(t, IsUserFacing(ErrBlockedURL))
}

type hintedError struct{ hint string }

func (e hintedError) Error() string { return "hinted" }
func (e hintedError) Hint() string  { return e.hint }

func TestHint(t *testing.T) {
	assert.Empty(t, Hint(nil))
	assert.Empty(t, Hint(ErrGitHubAPI))
	assert.Equal(t, "add a token", Hint(hintedError{hint: "add a token"}))
	assert.Equal(t, "add a token", Hint(fmt.Errorf("scan failed: %w", hintedError{hint: "add a token"})))
}
