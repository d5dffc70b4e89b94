package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/logger"
	"github.com/custodia-labs/gittable/internal/netguard"
)

const (
	// DefaultTimeout bounds each API call.
	DefaultTimeout = 20 * time.Second

	// DefaultBranch is assumed when the API omits default_branch.
	DefaultBranch = "main"
)

// Ensure Client implements the interface.
var _ driven.RepositoryFetcher = (*Client)(nil)

// Client wraps go-github clients, one per token, behind the host guard.
type Client struct {
	mu          sync.Mutex
	clients     map[string]*gh.Client
	base        http.RoundTripper
	timeout     time.Duration
	rateLimiter *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the transport below the host guard.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.base = rt }
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimiter shares a rate limiter between clients.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) { c.rateLimiter = r }
}

// NewClient creates a GitHub API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		clients:     make(map[string]*gh.Client),
		timeout:     DefaultTimeout,
		rateLimiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// clientFor returns the go-github client for token, creating it on first use.
func (c *Client) clientFor(token string) *gh.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if client, ok := c.clients[token]; ok {
		return client
	}

	var rt http.RoundTripper = &netguard.Transport{Base: c.base}
	if token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   rt,
		}
	}

	client := gh.NewClient(&http.Client{Transport: rt})
	c.clients[token] = client
	return client
}

// FetchRepoMetadata returns the repository's default branch.
func (c *Client) FetchRepoMetadata(ctx context.Context, owner, repo, token string) (domain.RepoMetadata, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.rateLimiter.Wait(callCtx); err != nil {
		return domain.RepoMetadata{}, c.wrapError(ctx, err, "rate limit wait")
	}

	logger.Debug("github: GET repos/%s/%s", owner, repo)
	repository, resp, err := c.clientFor(token).Repositories.Get(callCtx, owner, repo)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return domain.RepoMetadata{}, c.wrapError(ctx, err, "get repo")
	}

	branch := repository.GetDefaultBranch()
	if branch == "" {
		branch = DefaultBranch
	}
	return domain.RepoMetadata{DefaultBranch: branch}, nil
}

// FetchTree fetches the entire tree at ref in one recursive call.
func (c *Client) FetchTree(ctx context.Context, owner, repo, ref, token string) (domain.Tree, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.rateLimiter.Wait(callCtx); err != nil {
		return domain.Tree{}, c.wrapError(ctx, err, "rate limit wait")
	}

	logger.Debug("github: GET repos/%s/%s/git/trees/%s?recursive=1", owner, repo, ref)
	tree, resp, err := c.clientFor(token).Git.GetTree(callCtx, owner, repo, url.PathEscape(ref), true)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return domain.Tree{}, c.wrapError(ctx, err, "get tree")
	}

	out := domain.Tree{
		Entries:   make([]domain.TreeEntry, 0, len(tree.Entries)),
		Truncated: tree.GetTruncated(),
	}
	for _, e := range tree.Entries {
		out.Entries = append(out.Entries, domain.TreeEntry{Path: e.GetPath(), Type: e.GetType()})
	}
	logger.Debug("github: tree has %d entries (truncated=%v)", len(out.Entries), out.Truncated)
	return out, nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
// parent is the caller's context: its cancellation is reported as
// domain.ErrCancelled, while the per-call timeout is an API failure.
func (c *Client) wrapError(parent context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	if parent.Err() != nil {
		return fmt.Errorf("%s: %w", operation, domain.ErrCancelled)
	}

	var limitErr *RateLimitError
	if errors.As(err, &limitErr) {
		return limitErr
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := time.Now()
		if abuseErr.RetryAfter != nil {
			resetAt = resetAt.Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{ResetAt: resetAt}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if apiErr.Message == "" {
			apiErr.Message = readErrorBody(ghErr.Response)
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{
			Message: fmt.Sprintf("%s: timed out after %s", operation, c.timeout),
			Err:     err,
		}
	}

	return &APIError{Message: fmt.Sprintf("%s: %v", operation, err), Err: err}
}

// maxErrorBody caps the bytes of a non-JSON error body kept on APIError.
const maxErrorBody = 512

// readErrorBody returns the start of a non-JSON error body, such as a proxy
// HTML page. go-github leaves the body readable after parsing it.
func readErrorBody(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(string(data)), " ")
}
