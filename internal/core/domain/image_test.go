package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImagePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"img/a.PNG", true},
		{"a.jpg", true},
		{"a.JPEG", true},
		{"deep/dir/pic.webp", true},
		{"icon.ico", true},
		{"scan.TIFF", true},
		{"vector.svg", true},
		{"photo.avif", true},
		{"b.txt", false},
		{"readme.md", false},
		{"png", false},
		{"archive.png.zip", false},
		{"dir.png/file", false},
		{"trailingdot.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImagePath(tt.path))
		})
	}
}

func TestImageExtensions_MatchSet(t *testing.T) {
	exts := ImageExtensions()
	assert.Len(t, exts, len(imageExtensions))
	for _, e := range exts {
		assert.True(t, IsImagePath("x."+e), e)
	}
}
