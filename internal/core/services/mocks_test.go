package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// mockRepoFetcher implements driven.RepositoryFetcher.
type mockRepoFetcher struct {
	mu          sync.Mutex
	branch      string
	tree        domain.Tree
	metaErr     error
	treeErr     error
	metaCalls   int
	treeRefs    []string
	tokens      []string
	fetchTreeFn func(ctx context.Context, ref string) (domain.Tree, error)
}

func (m *mockRepoFetcher) FetchRepoMetadata(_ context.Context, _, _, token string) (domain.RepoMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metaCalls++
	m.tokens = append(m.tokens, token)
	if m.metaErr != nil {
		return domain.RepoMetadata{}, m.metaErr
	}
	return domain.RepoMetadata{DefaultBranch: m.branch}, nil
}

func (m *mockRepoFetcher) FetchTree(ctx context.Context, _, _, ref, token string) (domain.Tree, error) {
	m.mu.Lock()
	m.treeRefs = append(m.treeRefs, ref)
	m.tokens = append(m.tokens, token)
	fn, tree, err := m.fetchTreeFn, m.tree, m.treeErr
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, ref)
	}
	return tree, err
}

// mockImageFetcher implements driven.ImageFetcher.
type mockImageFetcher struct {
	mu      sync.Mutex
	bodies  map[string][]byte
	errs    map[string]error
	fetched []string
}

func (m *mockImageFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetched = append(m.fetched, url)
	if err := m.errs[url]; err != nil {
		return nil, err
	}
	if body, ok := m.bodies[url]; ok {
		return body, nil
	}
	return []byte("img:" + url), nil
}

// memFileStore implements driven.FileStore over a map.
type memFileStore struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	mkdirErr error
	writeErr error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: map[string][]byte{}, dirs: map[string]bool{}}
}

func (m *memFileStore) Root() string { return "/mem" }

func (m *memFileStore) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, file := m.files[path]
	return file || m.dirs[path], nil
}

func (m *memFileStore) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mkdirErr != nil {
		return m.mkdirErr
	}
	parts := strings.Split(path, "/")
	for i := range parts {
		m.dirs[strings.Join(parts[:i+1], "/")] = true
	}
	return nil
}

func (m *memFileStore) WriteFile(path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.files[path]; ok {
		return errors.New("exists")
	}
	m.files[path] = data
	return nil
}

// mockClipboard implements driven.Clipboard.
type mockClipboard struct {
	copied []string
	err    error
}

func (m *mockClipboard) Copy(text string) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, text)
	return nil
}

// mockBrowser implements driven.Browser.
type mockBrowser struct {
	opened []string
}

func (m *mockBrowser) Open(url string) error {
	m.opened = append(m.opened, url)
	return nil
}

// mockDecoder implements driven.ImageDecoder.
type mockDecoder struct {
	format        string
	width, height int
	err           error
}

func (m *mockDecoder) Decode(_ []byte) (string, int, int, error) {
	return m.format, m.width, m.height, m.err
}
