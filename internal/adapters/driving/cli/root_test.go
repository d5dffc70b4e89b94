package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// MockScanService implements driving.ScanService for testing.
type MockScanService struct {
	EnumerateFunc func(ctx context.Context, link, token string) (domain.ScanResult, error)
	LastToken     string
}

func (m *MockScanService) Enumerate(ctx context.Context, link, token string) (domain.ScanResult, error) {
	m.LastToken = token
	if m.EnumerateFunc != nil {
		return m.EnumerateFunc(ctx, link, token)
	}
	return domain.ScanResult{
		Reference: domain.GitHubReference{Owner: "acme", Repo: "demo", Ref: "main"},
		URLs: []string{
			"https://raw.githubusercontent.com/acme/demo/main/a.png",
			"https://raw.githubusercontent.com/acme/demo/main/b.png",
			"https://raw.githubusercontent.com/acme/demo/main/c.png",
		},
	}, nil
}

// MockRenderService implements driving.RenderService for testing.
type MockRenderService struct {
	RenderFunc func(format domain.OutputFormat, urls []string, cfg domain.RenderConfig) (string, error)
	LastURLs   []string
	LastConfig domain.RenderConfig
}

func (m *MockRenderService) Render(format domain.OutputFormat, urls []string, cfg domain.RenderConfig) (string, error) {
	m.LastURLs = urls
	m.LastConfig = cfg
	if m.RenderFunc != nil {
		return m.RenderFunc(format, urls, cfg)
	}
	return string(format) + " output", nil
}

func (m *MockRenderService) Formats() []domain.OutputFormat {
	return []domain.OutputFormat{domain.FormatPreview, domain.FormatHTML, domain.FormatLinks}
}

// MockDownloadService implements driving.DownloadService for testing.
type MockDownloadService struct {
	DownloadAllFunc func(
		ctx context.Context, urls []string, dir string, progress func(domain.DownloadProgress),
	) (domain.DownloadSummary, error)
	LastURLs []string
	LastDir  string
}

func (m *MockDownloadService) DownloadOne(_ context.Context, url, dir string) (string, error) {
	m.LastURLs = []string{url}
	m.LastDir = dir
	return dir + "/" + domain.FilenameFromURL(url), nil
}

func (m *MockDownloadService) DownloadAll(
	ctx context.Context, urls []string, dir string, progress func(domain.DownloadProgress),
) (domain.DownloadSummary, error) {
	m.LastURLs = urls
	m.LastDir = dir
	if m.DownloadAllFunc != nil {
		return m.DownloadAllFunc(ctx, urls, dir, progress)
	}
	summary := domain.DownloadSummary{Dir: dir}
	for i, u := range urls {
		p := domain.DownloadProgress{Index: i + 1, Total: len(urls), URL: u, Filename: domain.FilenameFromURL(u)}
		p.Outcome = domain.DownloadPending
		progress(p)
		p.Outcome = domain.DownloadSaved
		p.Path = dir + "/" + p.Filename
		progress(p)
		summary.OK++
		summary.Paths = append(summary.Paths, p.Path)
	}
	return summary, nil
}

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	Settings domain.Settings
	SaveErr  error
	Saves    int
}

func (m *MockSettingsService) Get() (domain.Settings, error) {
	return m.Settings, nil
}

func (m *MockSettingsService) Save(s domain.Settings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Settings = s
	m.Saves++
	return nil
}

func (m *MockSettingsService) SetToken(token string) error {
	m.Settings.GitHubToken = token
	return m.Save(m.Settings)
}

func (m *MockSettingsService) SetDownloadDir(dir string) error {
	m.Settings.DownloadDir = domain.SanitizeFolderPath(dir)
	return m.Save(m.Settings)
}

func (m *MockSettingsService) SetGallery(cfg domain.RenderConfig) error {
	m.Settings.Gallery = cfg.Clamp()
	return m.Save(m.Settings)
}

func (m *MockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *MockSettingsService) ConfigPath() string {
	return "/tmp/gittable/config.toml"
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	Records  map[string]domain.ScanRecord
	Recorded []domain.ScanRecord
	Deleted  []string
}

func (m *MockHistoryService) Record(
	_ context.Context, link string, ref domain.GitHubReference, urls []string, truncated bool,
) (domain.ScanRecord, error) {
	r := domain.ScanRecord{
		ID: "rec-new", Link: link, Owner: ref.Owner, Repo: ref.Repo, Ref: ref.Ref,
		Truncated: truncated, URLs: urls, CreatedAt: time.Now(),
	}
	m.Recorded = append(m.Recorded, r)
	return r, nil
}

func (m *MockHistoryService) List(_ context.Context, limit int) ([]domain.ScanRecord, error) {
	var out []domain.ScanRecord
	for _, r := range m.Records {
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *MockHistoryService) Get(_ context.Context, id string) (*domain.ScanRecord, error) {
	r, ok := m.Records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *MockHistoryService) Delete(_ context.Context, id string) error {
	if _, ok := m.Records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Records, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockActionService implements driving.ActionService for testing.
type MockActionService struct {
	Copied  string
	Opened  string
	OpenErr error
}

func (m *MockActionService) Copy(text string) error {
	m.Copied = text
	return nil
}

func (m *MockActionService) Open(url string) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = url
	return nil
}

// MockPreviewService implements driving.PreviewService for testing.
type MockPreviewService struct {
	Info domain.ImageInfo
	Err  error
}

func (m *MockPreviewService) Inspect(_ context.Context, url string) (domain.ImageInfo, error) {
	if m.Err != nil {
		return domain.ImageInfo{}, m.Err
	}
	info := m.Info
	info.URL = url
	return info, nil
}

// testServices bundles the mocks installed by setupTestServices.
type testServices struct {
	Scan     *MockScanService
	Render   *MockRenderService
	Download *MockDownloadService
	Settings *MockSettingsService
	History  *MockHistoryService
	Actions  *MockActionService
	Preview  *MockPreviewService
}

// setupTestServices installs mock services and returns them with a
// function that restores the previous ones.
func setupTestServices() (*testServices, func()) {
	prev := Services{
		Scan: scanService, Render: renderService, Download: downloadService,
		Settings: settingsService, History: historyService, Actions: actionService, Preview: previewService,
	}

	ts := &testServices{
		Scan:     &MockScanService{},
		Render:   &MockRenderService{},
		Download: &MockDownloadService{},
		Settings: &MockSettingsService{Settings: domain.DefaultSettings()},
		History: &MockHistoryService{Records: map[string]domain.ScanRecord{
			"rec-1": {
				ID: "rec-1", Link: "https://github.com/acme/demo", Owner: "acme", Repo: "demo", Ref: "main",
				URLs:      []string{"https://raw.githubusercontent.com/acme/demo/main/z.png"},
				CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			},
		}},
		Actions: &MockActionService{},
		Preview: &MockPreviewService{},
	}

	SetServices(Services{
		Scan: ts.Scan, Render: ts.Render, Download: ts.Download,
		Settings: ts.Settings, History: ts.History, Actions: ts.Actions, Preview: ts.Preview,
	})
	return ts, func() { SetServices(prev) }
}

// resetFlags restores every flag in the tree to its default, since flag
// values and their Changed state outlive a single Execute call.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

// runWithInput is execute with input on stdin.
func runWithInput(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
