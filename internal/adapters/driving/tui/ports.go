// Package tui provides an interactive terminal user interface for gittable.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/ports/driving"
)

// ConfigWatcher notifies about configuration changes made outside the TUI.
type ConfigWatcher interface {
	// Watch calls onChange after every reload until ctx is done.
	Watch(ctx context.Context, onChange func()) error
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Curation owns the image list being edited.
	Curation driving.CurationService

	// Settings provides the token and download folder.
	Settings driving.SettingsService

	// Actions copies output and opens images. Optional.
	Actions driving.ActionService

	// Preview inspects the selected image. Optional.
	Preview driving.PreviewService

	// Download saves images under the storage root. Optional.
	Download driving.DownloadService

	// Watcher reports settings edited in another process. Optional.
	Watcher ConfigWatcher
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(curation driving.CurationService, settings driving.SettingsService) *Ports {
	return &Ports{
		Curation: curation,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Curation == nil {
		return ErrMissingCurationService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
