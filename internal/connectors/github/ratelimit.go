package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/gittable/internal/logger"
)

const (
	// AnonymousLimit is GitHub's hourly quota without a token.
	AnonymousLimit = 60

	// ProactiveRate is the steady request rate per second.
	ProactiveRate = 2

	// ProactiveBurst lets a scan's metadata and tree calls go out back to back.
	ProactiveBurst = 4

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// Quota is the API quota last reported by GitHub.
type Quota struct {
	Limit     int
	Remaining int
	ResetAt   time.Time

	// Known is false until a response carried quota headers.
	Known bool
}

// Exhausted reports whether no calls are left before ResetAt.
func (q Quota) Exhausted(now time.Time) bool {
	return q.Known && q.Remaining <= 0 && now.Before(q.ResetAt)
}

// RateLimiter paces API calls and fails fast once GitHub reports the
// quota is spent.
type RateLimiter struct {
	mu     sync.Mutex
	quota  Quota
	bucket *rate.Limiter
	now    func() time.Time
}

// NewRateLimiter creates a limiter that assumes the anonymous quota until
// GitHub says otherwise.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		quota:  Quota{Limit: AnonymousLimit, Remaining: AnonymousLimit},
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), ProactiveBurst),
		now:    time.Now,
	}
}

// Wait blocks until the token bucket admits a request.
// It fails fast with RateLimitError while the API quota is exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	q := r.Quota()
	if q.Exhausted(r.now()) {
		logger.Warn("github rate limit exhausted until %s", q.ResetAt.Format(time.RFC3339))
		return &RateLimitError{ResetAt: q.ResetAt, Remaining: q.Remaining, Limit: q.Limit}
	}
	return nil
}

// UpdateFromResponse records the quota headers of resp. Missing or
// malformed headers leave the previous value in place.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if val, ok := headerInt(resp.Header, HeaderRateRemaining); ok {
		r.quota.Remaining = int(val)
		r.quota.Known = true
	}
	if val, ok := headerInt(resp.Header, HeaderRateLimit); ok {
		r.quota.Limit = int(val)
	}
	if val, ok := headerInt(resp.Header, HeaderRateReset); ok {
		r.quota.ResetAt = time.Unix(val, 0)
	}
	logger.Debug("github quota: %d/%d left", r.quota.Remaining, r.quota.Limit)
}

// Quota returns the last reported quota.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quota
}

func headerInt(h http.Header, name string) (int64, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}
