package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxFilenameLength caps sanitised filenames, in characters.
const MaxFilenameLength = 180

// DefaultFilename is used when a URL yields no usable name.
const DefaultFilename = "image"

// FilenameFromURL returns the percent-decoded last path segment of raw.
// It returns "" when there is none.
func FilenameFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		parts := strings.Split(raw, "/")
		return parts[len(parts)-1]
	}
	escaped := u.EscapedPath()
	last := escaped[strings.LastIndexByte(escaped, '/')+1:]
	dec, err := url.PathUnescape(last)
	if err != nil {
		return last
	}
	return dec
}

// SanitizeFilename strips control characters, replaces path separators
// and truncates to MaxFilenameLength. An empty result, "." or ".." becomes
// DefaultFilename.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			continue
		case r == '/' || r == '\\':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if runes := []rune(out); len(runes) > MaxFilenameLength {
		out = string(runes[:MaxFilenameLength])
	}
	if out == "" || out == "." || out == ".." {
		return DefaultFilename
	}
	return out
}

// SplitExt splits name at its last dot. A leading dot is part of the stem.
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	return name[:dot], name[dot:]
}

// CandidateName returns the n-th collision-avoiding variant of name:
// "a.png", "a (1).png", "a (2).png", ...
func CandidateName(name string, n int) string {
	if n == 0 {
		return name
	}
	stem, ext := SplitExt(name)
	return fmt.Sprintf("%s (%d)%s", stem, n, ext)
}

// JoinStoragePath joins a sanitised folder and a filename.
func JoinStoragePath(folder, name string) string {
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// DownloadOutcome describes one item in a batch download.
type DownloadOutcome string

// Download outcomes.
const (
	DownloadPending DownloadOutcome = "pending"
	DownloadSaved   DownloadOutcome = "saved"
	DownloadFailure DownloadOutcome = "failed"
)

// DownloadProgress is reported for each item of a batch.
type DownloadProgress struct {
	// Index is 1-based.
	Index    int
	Total    int
	URL      string
	Filename string
	Outcome  DownloadOutcome
	Path     string
	Err      error
}

// Status renders the progress line shown while a batch runs.
func (p DownloadProgress) Status() string {
	return fmt.Sprintf("Downloading %d/%d: %s", p.Index, p.Total, p.Filename)
}

// DownloadSummary is the result of a batch download.
type DownloadSummary struct {
	OK     int
	Failed int
	Dir    string
	Paths  []string
}

// Total returns the number of attempted items.
func (s DownloadSummary) Total() int {
	return s.OK + s.Failed
}

// Message renders the completion notice.
func (s DownloadSummary) Message() string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if s.Failed == 0 {
		return fmt.Sprintf("Downloaded %d/%d images to: %s", s.OK, s.Total(), dir)
	}
	return fmt.Sprintf("Downloaded %d/%d images (failed: %d) to: %s", s.OK, s.Total(), s.Failed, dir)
}

// ImageInfo describes a fetched image.
type ImageInfo struct {
	URL      string
	Filename string
	Bytes    int
	Format   string

	// Width and Height are zero when the format could not be decoded.
	Width  int
	Height int
}

// Decoded reports whether dimensions are known.
func (i ImageInfo) Decoded() bool {
	return i.Width > 0 && i.Height > 0
}
