package mcp

import (
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan enumerates images from a GitHub link.
	Scan driving.ScanService

	// Render produces HTML tables and link lists.
	Render driving.RenderService

	// Download saves images under the storage root. Optional.
	Download driving.DownloadService

	// Settings supplies the GitHub token and download folder. Optional.
	Settings driving.SettingsService

	// History exposes saved scans as resources. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	if p.Render == nil {
		return ErrMissingRenderService
	}
	return nil
}
