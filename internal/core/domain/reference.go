package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RawContentHost serves file contents at a given ref.
const RawContentHost = "raw.githubusercontent.com"

// RefKind distinguishes folder links from file links.
type RefKind string

// Link kinds.
const (
	// RefKindNone is a bare repository link.
	RefKindNone RefKind = ""

	// RefKindTree is a folder link (/tree/{ref}/...).
	RefKindTree RefKind = "tree"

	// RefKindBlob is a file link (/blob/{ref}/...).
	RefKindBlob RefKind = "blob"
)

// GitHubReference is the parsed identity of a GitHub link.
// It is a value type; use WithRef to derive a resolved copy.
type GitHubReference struct {
	Owner   string
	Repo    string
	Ref     string
	Kind    RefKind
	Subpath string
}

// HasRef reports whether the link pinned a branch, tag or commit.
func (r GitHubReference) HasRef() bool {
	return r.Ref != ""
}

// WithRef returns a copy of r pinned to ref.
func (r GitHubReference) WithRef(ref string) GitHubReference {
	r.Ref = ref
	return r
}

// RawURL returns the raw-content URL of path inside the referenced repository.
func (r GitHubReference) RawURL(path string) string {
	return RawURL(r.Owner, r.Repo, r.Ref, path)
}

// String renders the reference as owner/repo[@ref][:subpath].
func (r GitHubReference) String() string {
	var b strings.Builder
	b.WriteString(r.Owner)
	b.WriteByte('/')
	b.WriteString(r.Repo)
	if r.Ref != "" {
		b.WriteByte('@')
		b.WriteString(r.Ref)
	}
	if r.Subpath != "" {
		b.WriteByte(':')
		b.WriteString(r.Subpath)
	}
	return b.String()
}

// ParseReference parses a pasted github.com link.
//
// Accepted shapes:
//
//	https://github.com/{owner}/{repo}[.git]
//	https://github.com/{owner}/{repo}/tree/{ref}/{subpath...}
//	https://github.com/{owner}/{repo}/blob/{ref}/{path...}
//
// Anything else fails with ErrInvalidLink. No network access is made.
func ParseReference(raw string) (GitHubReference, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GitHubReference{}, fmt.Errorf("%w: empty link", ErrInvalidLink)
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return GitHubReference{}, fmt.Errorf("%w: %q is not a URL", ErrInvalidLink, trimmed)
	}

	host := strings.ToLower(u.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return GitHubReference{}, fmt.Errorf("%w: host %q is not github.com", ErrInvalidLink, host)
	}

	parts, err := pathSegments(u.EscapedPath())
	if err != nil {
		return GitHubReference{}, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if len(parts) < 2 {
		return GitHubReference{}, fmt.Errorf("%w: expected github.com/{owner}/{repo}", ErrInvalidLink)
	}

	ref := GitHubReference{
		Owner: parts[0],
		Repo:  trimGitSuffix(parts[1]),
	}
	if ref.Repo == "" {
		return GitHubReference{}, fmt.Errorf("%w: empty repository name", ErrInvalidLink)
	}

	if len(parts) > 2 && (parts[2] == string(RefKindTree) || parts[2] == string(RefKindBlob)) {
		ref.Kind = RefKind(parts[2])
		if len(parts) > 3 {
			ref.Ref = parts[3]
		}
		if len(parts) > 4 {
			ref.Subpath = strings.Join(parts[4:], "/")
		}
	}

	return ref, nil
}

// RawURL builds https://raw.githubusercontent.com/{owner}/{repo}/{ref}/{path}
// with the ref and every path segment percent-encoded.
func RawURL(owner, repo, ref, path string) string {
	return "https://" + RawContentHost + "/" + owner + "/" + repo + "/" +
		url.PathEscape(ref) + "/" + EncodePath(path)
}

// EncodePath percent-encodes each "/"-separated segment of path.
func EncodePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// pathSegments splits an escaped URL path into decoded, non-empty segments.
func pathSegments(escaped string) ([]string, error) {
	var out []string
	for _, seg := range strings.Split(escaped, "/") {
		if seg == "" {
			continue
		}
		dec, err := url.PathUnescape(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, dec)
	}
	return out, nil
}

func trimGitSuffix(repo string) string {
	if len(repo) >= 4 && strings.EqualFold(repo[len(repo)-4:], ".git") {
		return repo[:len(repo)-4]
	}
	return repo
}
