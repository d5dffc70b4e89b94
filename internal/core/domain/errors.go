package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure kinds a user can run into.
// Adapters match on them with errors.Is and render a notice.
var (
	// ErrInvalidLink indicates the pasted text is not a usable GitHub link.
	ErrInvalidLink = errors.New("invalid GitHub link")

	// ErrGitHubAPI indicates the GitHub API answered with a non-2xx status
	// or could not be reached.
	ErrGitHubAPI = errors.New("GitHub request failed")

	// ErrBlockedURL indicates a URL failed the https host allow-list.
	ErrBlockedURL = errors.New("blocked URL")

	// ErrCancelled indicates an operation was superseded or aborted by the caller.
	// It is never shown to the user.
	ErrCancelled = errors.New("cancelled")

	// ErrDownloadFailed indicates a single image could not be downloaded.
	ErrDownloadFailed = errors.New("download failed")

	// ErrNoSelection indicates an action needs a selected list entry.
	ErrNoSelection = errors.New("no image selected")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown output format was requested.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// DownloadError carries the HTTP status of a failed image download.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download failed (%d): %s", e.StatusCode, e.URL)
	}
	if e.Err != nil {
		return fmt.Sprintf("download failed: %s: %v", e.URL, e.Err)
	}
	return "download failed: " + e.URL
}

// Unwrap lets errors.Is match ErrDownloadFailed.
func (e *DownloadError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDownloadFailed, e.Err}
	}
	return []error{ErrDownloadFailed}
}

// IsUserFacing reports whether err should be surfaced as a notice.
// Cancellation is swallowed.
func IsUserFacing(err error) bool {
	return err != nil && !errors.Is(err, ErrCancelled)
}

// Hint returns the remediation suggested by the first error in err's chain
// that offers one, or "".
func Hint(err error) string {
	var h interface{ Hint() string }
	if errors.As(err, &h) {
		return h.Hint()
	}
	return ""
}
