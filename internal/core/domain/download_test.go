package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://raw.githubusercontent.com/a/b/main/img/logo.png", "logo.png"},
		{"https://raw.githubusercontent.com/a/b/main/my%20pic.jpg", "my pic.jpg"},
		{"https://raw.githubusercontent.com/a/b/main/dir/", ""},
		{"https://raw.githubusercontent.com", ""},
		{"https://raw.githubusercontent.com/a/b/main/bad%zz.png", "bad%zz.png"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromURL(tt.raw))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "logo.png", "logo.png"},
		{"control chars stripped", "lo\x00go\x1f\x7f.png", "logo.png"},
		{"separators replaced", `a/b\c.png`, "a_b_c.png"},
		{"trimmed", "  x.png  ", "x.png"},
		{"empty falls back", "", DefaultFilename},
		{"only controls falls back", "\x01\x02", DefaultFilename},
		{"dot falls back", ".", DefaultFilename},
		{"dot-dot falls back", "..", DefaultFilename},
		{"padded dot-dot falls back", " ..\x00 ", DefaultFilename},
		{"dotted name kept", "...png", "...png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_EncodedDotSegments(t *testing.T) {
	for _, raw := range []string{
		"https://raw.githubusercontent.com/acme/demo/main/img/%2e%2e",
		"https://raw.githubusercontent.com/acme/demo/main/img/%2E",
	} {
		assert.Equal(t, DefaultFilename, SanitizeFilename(FilenameFromURL(raw)), raw)
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("é", 300) + ".png"
	got := SanitizeFilename(long)
	assert.Equal(t, MaxFilenameLength, len([]rune(got)))
}

func TestCandidateName(t *testing.T) {
	assert.Equal(t, "logo.png", CandidateName("logo.png", 0))
	assert.Equal(t, "logo (1).png", CandidateName("logo.png", 1))
	assert.Equal(t, "archive.tar (2).gz", CandidateName("archive.tar.gz", 2))
	assert.Equal(t, "README (1)", CandidateName("README", 1))
	assert.Equal(t, ".hidden (1)", CandidateName(".hidden", 1))
}

func TestJoinStoragePath(t *testing.T) {
	assert.Equal(t, "x.png", JoinStoragePath("", "x.png"))
	assert.Equal(t, "imgs/a/x.png", JoinStoragePath("imgs/a", "x.png"))
}

func TestDownloadSummary_Message(t *testing.T) {
	s := DownloadSummary{OK: 3, Dir: "imgs"}
	assert.Equal(t, "Downloaded 3/3 images to: imgs", s.Message())

	s = DownloadSummary{OK: 2, Failed: 1}
	assert.Equal(t, "Downloaded 2/3 images (failed: 1) to: .", s.Message())
}

func TestDownloadProgress_Status(t *testing.T) {
	p := DownloadProgress{Index: 2, Total: 5, Filename: "a.png"}
	assert.Equal(t, "Downloading 2/5: a.png", p.Status())
}

func TestImageInfo_Decoded(t *testing.T) {
	assert.False(t, ImageInfo{}.Decoded())
	assert.True(t, ImageInfo{Width: 1, Height: 1}.Decoded())
}
