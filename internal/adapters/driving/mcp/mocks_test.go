package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// mockScanService is a mock implementation of driving.ScanService.
type mockScanService struct {
	result domain.ScanResult
	err    error
	links  []string
	tokens []string
}

func (m *mockScanService) Enumerate(_ context.Context, link, token string) (domain.ScanResult, error) {
	m.links = append(m.links, link)
	m.tokens = append(m.tokens, token)
	return m.result, m.err
}

// mockRenderService is a mock implementation of driving.RenderService.
type mockRenderService struct {
	format domain.OutputFormat
	urls   []string
	cfg    domain.RenderConfig
	err    error
}

func (m *mockRenderService) Render(format domain.OutputFormat, urls []string, cfg domain.RenderConfig) (string, error) {
	m.format, m.urls, m.cfg = format, urls, cfg
	if m.err != nil {
		return "", m.err
	}
	return string(format) + ":" + strings.Join(urls, ","), nil
}

func (m *mockRenderService) Formats() []domain.OutputFormat {
	return []domain.OutputFormat{domain.FormatHTML, domain.FormatLinks, domain.FormatPreview}
}

// mockDownloadService is a mock implementation of driving.DownloadService.
type mockDownloadService struct {
	summary domain.DownloadSummary
	err     error
	urls    []string
	dir     string
}

func (m *mockDownloadService) DownloadOne(_ context.Context, _, _ string) (string, error) {
	return "", m.err
}

func (m *mockDownloadService) DownloadAll(
	_ context.Context, urls []string, dir string, _ func(domain.DownloadProgress),
) (domain.DownloadSummary, error) {
	m.urls, m.dir = urls, dir
	return m.summary, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.Settings
}

func (m *mockSettingsService) Get() (domain.Settings, error) { return m.settings, nil }
func (m *mockSettingsService) Save(domain.Settings) error { return nil }
func (m *mockSettingsService) SetToken(string) error { return nil }
func (m *mockSettingsService) SetDownloadDir(string) error { return nil }
func (m *mockSettingsService) SetGallery(domain.RenderConfig) error { return nil }
func (m *mockSettingsService) GetDefaults() domain.Settings { return domain.DefaultSettings() }
func (m *mockSettingsService) ConfigPath() string { return "" }

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.ScanRecord
	err     error
}

func (m *mockHistoryService) Record(
	_ context.Context, _ string, _ domain.GitHubReference, _ []string, _ bool,
) (domain.ScanRecord, error) {
	return domain.ScanRecord{}, m.err
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.ScanRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ScanRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}
