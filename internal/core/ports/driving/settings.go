package driving

import "github.com/custodia-labs/gittable/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error

	// SetToken updates the GitHub token. Empty clears it.
	SetToken(token string) error

	// SetDownloadDir updates the download folder after sanitising it.
	SetDownloadDir(dir string) error

	// SetGallery updates the default table layout.
	SetGallery(cfg domain.RenderConfig) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
