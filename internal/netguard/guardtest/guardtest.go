// Package guardtest routes allow-listed requests to a local test server.
//
// The rewrite happens below netguard.Transport, so code under test still
// issues requests to real GitHub hosts and the guard still sees them.
package guardtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Rewriter sends every request to Target, keeping path and query.
type Rewriter struct {
	Target *url.URL
	Base   http.RoundTripper

	mu    sync.Mutex
	hosts []string
}

// New returns a Rewriter pointing at srv.
func New(srv *httptest.Server) *Rewriter {
	target, _ := url.Parse(srv.URL)
	return &Rewriter{Target: target, Base: srv.Client().Transport}
}

// RoundTrip implements http.RoundTripper.
func (r *Rewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	r.hosts = append(r.hosts, req.URL.Host)
	r.mu.Unlock()

	out := req.Clone(req.Context())
	out.URL.Scheme = r.Target.Scheme
	out.URL.Host = r.Target.Host
	out.Host = req.URL.Host
	out.Header.Set("X-Original-Host", req.URL.Host)

	base := r.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(out)
	if resp != nil {
		// Callers read the URL they asked for, not the test server's.
		resp.Request = req
	}
	return resp, err
}

// Hosts returns the original host of each request in order.
func (r *Rewriter) Hosts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.hosts...)
}
