package domain

import "time"

// TreeEntryType values reported by the git trees API.
const (
	TreeEntryBlob = "blob"
	TreeEntryTree = "tree"
)

// RepoMetadata is the subset of repository metadata the scanner needs.
type RepoMetadata struct {
	DefaultBranch string
}

// TreeEntry is one path in a recursive tree listing.
type TreeEntry struct {
	Path string
	Type string
}

// Tree is a recursive tree listing.
type Tree struct {
	Entries []TreeEntry

	// Truncated is set when GitHub cut the listing short for a large repository.
	Truncated bool
}

// ScanResult is the outcome of enumerating a link.
type ScanResult struct {
	Reference GitHubReference

	// URLs are raw-content image URLs in ordinal order.
	URLs []string

	// Truncated mirrors the upstream tree flag; results may be incomplete.
	Truncated bool
}

// TruncatedNotice is the message shown when a tree listing was cut short.
const TruncatedNotice = "Note: GitHub returned a truncated file tree (repo is very large). Results may be incomplete."

// ScanRecord is a persisted scan or saved curated order.
type ScanRecord struct {
	ID        string
	Link      string
	Owner     string
	Repo      string
	Ref       string
	Truncated bool
	URLs      []string
	CreatedAt time.Time
}

// Label returns a short human-readable description of the record.
func (r ScanRecord) Label() string {
	label := r.Owner + "/" + r.Repo
	if r.Ref != "" {
		label += "@" + r.Ref
	}
	return label
}
