// Package github reads repository structure and raw file contents from GitHub.
//
// # Architecture
//
// The package implements two driven ports:
//
//   - Client: [driven.RepositoryFetcher] over the REST API (go-github)
//   - RawFetcher: [driven.ImageFetcher] over raw.githubusercontent.com
//
// Both are built on [netguard.Transport], so a request can only reach an
// allow-listed https host.
//
// # Authentication
//
// A token is optional. When set it is attached as a bearer token through
// an oauth2 static token source; otherwise requests are anonymous and
// limited to 60 per hour by GitHub. One go-github client is kept per token.
//
// # Rate Limiting
//
//  1. Proactive throttling: a token bucket limits request bursts.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset are
//     tracked from every response. Once the quota is exhausted, calls fail
//     fast with [RateLimitError] until the reset time.
//
// # Error Handling
//
//   - Caller cancellation: [domain.ErrCancelled]
//   - Non-2xx, timeouts, transport failures: [APIError], which matches
//     [domain.ErrGitHubAPI]
//   - Quota exhausted: [RateLimitError], which also matches [domain.ErrGitHubAPI]
//
// # Git LFS
//
// Raw downloads that return a Git LFS pointer instead of the image are
// re-fetched from media.githubusercontent.com.
package github
