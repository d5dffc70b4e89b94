package driven

// FileStore persists files under a storage root.
// All paths are slash-separated and relative to the root.
type FileStore interface {
	// Root returns the absolute storage root.
	Root() string

	// Exists reports whether any entry occupies path.
	Exists(path string) (bool, error)

	// MkdirAll creates path and any missing parents. Existing folders are fine.
	MkdirAll(path string) error

	// WriteFile creates path with data. It fails if path already exists.
	WriteFile(path string, data []byte) error
}
