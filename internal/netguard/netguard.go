// Package netguard enforces the https host allow-list for every outbound
// request and every externally opened link.
//
// All HTTP clients in gittable are built on Transport, so a request to a
// host outside the list fails before a connection is attempted. Redirect
// hops go through the transport too and are checked the same way.
package netguard

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// allowedHosts is matched exactly against the lower-cased host.
var allowedHosts = map[string]struct{}{
	"github.com":                        {},
	"www.github.com":                    {},
	"api.github.com":                    {},
	"raw.githubusercontent.com":         {},
	"user-images.githubusercontent.com": {},
	"media.githubusercontent.com":       {},
	"objects.githubusercontent.com":     {},
}

// AllowedHosts returns the allow-listed hosts.
func AllowedHosts() []string {
	hosts := make([]string, 0, len(allowedHosts))
	for h := range allowedHosts {
		hosts = append(hosts, h)
	}
	return hosts
}

// Check parses raw and returns it normalised when the scheme is https and
// the host is allow-listed. Failures wrap domain.ErrBlockedURL.
func Check(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBlockedURL, err)
	}
	return CheckURL(u)
}

// CheckURL is Check for an already parsed URL.
func CheckURL(u *url.URL) (*url.URL, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: empty URL", domain.ErrBlockedURL)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q is not https", domain.ErrBlockedURL, u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if _, ok := allowedHosts[host]; !ok {
		return nil, fmt.Errorf("%w: host %q is not allowed", domain.ErrBlockedURL, host)
	}

	out := *u
	out.Host = strings.ToLower(u.Host)
	return &out, nil
}

// Allowed reports whether raw passes Check.
func Allowed(raw string) bool {
	_, err := Check(raw)
	return err == nil
}

// Transport is an http.RoundTripper that refuses requests outside the allow-list.
type Transport struct {
	// Base performs allowed requests. nil means http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if _, err := CheckURL(req.URL); err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	return t.base().RoundTrip(req)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// NewHTTPClient returns a client whose every request passes the guard.
func NewHTTPClient(base http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &Transport{Base: base},
		Timeout:   timeout,
	}
}
