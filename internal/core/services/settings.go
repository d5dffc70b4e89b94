package services

import (
	"fmt"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driven"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGitHubToken    = "github.token"
	keyDownloadDir    = "download.dir"
	keyGalleryColumns = "gallery.columns"
	keyGalleryTitle   = "gallery.title"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
// The token is registered with the logger so it is redacted from every line.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	columns := defaults.Gallery.Columns
	if n := s.configStore.GetInt(keyGalleryColumns); n > 0 {
		columns = domain.ClampColumns(n)
	}

	token := s.configStore.GetString(keyGitHubToken)
	logger.AddSecret(token)

	return domain.Settings{
		GitHubToken: token,
		DownloadDir: domain.SanitizeFolderPath(s.configStore.GetString(keyDownloadDir)),
		Gallery: domain.RenderConfig{
			Columns: columns,
			Title:   s.configStore.GetString(keyGalleryTitle),
		},
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings domain.Settings) error {
	logger.AddSecret(settings.GitHubToken)

	values := []struct {
		key   string
		value any
	}{
		{keyGitHubToken, settings.GitHubToken},
		{keyDownloadDir, domain.SanitizeFolderPath(settings.DownloadDir)},
		{keyGalleryColumns, domain.ClampColumns(settings.Gallery.Columns)},
		{keyGalleryTitle, settings.Gallery.Title},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("set %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetToken updates the GitHub token. The token is stored in plaintext.
func (s *SettingsService) SetToken(token string) error {
	return s.update(func(cfg *domain.Settings) { cfg.GitHubToken = token })
}

// SetDownloadDir updates the download folder.
func (s *SettingsService) SetDownloadDir(dir string) error {
	return s.update(func(cfg *domain.Settings) { cfg.DownloadDir = dir })
}

// SetGallery updates the default table layout.
func (s *SettingsService) SetGallery(gallery domain.RenderConfig) error {
	return s.update(func(cfg *domain.Settings) { cfg.Gallery = gallery.Clamp() })
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) update(mutate func(*domain.Settings)) error {
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	mutate(&cfg)
	return s.Save(cfg)
}
