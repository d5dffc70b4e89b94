package github

import (
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "github: rate limit exceeded"
	}
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap lets errors.Is match domain.ErrGitHubAPI.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrGitHubAPI
}

// APIError represents a failed GitHub API call.
// StatusCode is zero when no response was received.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("github: request failed: %s", e.Message)
	}
	return fmt.Sprintf("github: API error %d %s: %s (URL: %s)",
		e.StatusCode, http.StatusText(e.StatusCode), e.Message, e.URL)
}

// Unwrap lets errors.Is match domain.ErrGitHubAPI and the underlying cause.
func (e *APIError) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrGitHubAPI, e.Err}
	}
	return []error{domain.ErrGitHubAPI}
}

// Hint returns a short suggestion for the user.
func (e *RateLimitError) Hint() string {
	return "configure a GitHub token to raise the rate limit"
}

// Hint returns a short suggestion for the user, or "" when none applies.
func (e *APIError) Hint() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "the configured GitHub token was rejected"
	case http.StatusNotFound:
		return "check the link; private repositories need a token"
	default:
		return ""
	}
}
