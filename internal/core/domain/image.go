package domain

import "strings"

// imageExtensions is the set of file suffixes treated as images.
var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
	"svg":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
	"avif": {},
	"ico":  {},
}

// ImageExtensions returns the recognised image suffixes, lower-case, without dots.
func ImageExtensions() []string {
	return []string{"png", "jpg", "jpeg", "gif", "webp", "svg", "bmp", "tif", "tiff", "avif", "ico"}
}

// Extension returns the lower-cased suffix after the last dot of the final
// path segment, or "" when there is none.
func Extension(path string) string {
	name := path
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// IsImagePath reports whether path ends in a recognised image extension.
// Matching is case-insensitive and looks at the final dot-suffix only.
func IsImagePath(path string) bool {
	ext := Extension(path)
	if ext == "" {
		return false
	}
	_, ok := imageExtensions[ext]
	return ok
}
