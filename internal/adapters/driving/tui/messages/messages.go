// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/gittable/internal/core/domain"
)

// Pane identifies which part of the screen receives key presses.
type Pane int

const (
	// PaneLink is the link input.
	PaneLink Pane = iota
	// PaneList is the image list.
	PaneList
	// PaneTitle is the table title editor.
	PaneTitle
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneLink:
		return "link"
	case PaneList:
		return "list"
	case PaneTitle:
		return "title"
	default:
		return "unknown"
	}
}

// ScanCompleted carries the result of enumerating a link.
type ScanCompleted struct {
	Link   string
	Result domain.ScanResult
	Err    error
}

// RenderTick fires when the re-render debounce elapses.
// Ticks from older generations are ignored.
type RenderTick struct {
	Generation uint64
}

// ActionDone reports a one-shot side effect such as copy or open.
type ActionDone struct {
	Message string
	Err     error
}

// PreviewLoaded carries image details for the selected entry.
type PreviewLoaded struct {
	Info domain.ImageInfo
	Err  error
}

// DownloadProgressed is sent for every item of a batch download.
type DownloadProgressed struct {
	Progress domain.DownloadProgress
}

// DownloadFinished ends a batch download.
type DownloadFinished struct {
	Summary domain.DownloadSummary
	Err     error
}

// HistorySaved signals the curated order was stored.
type HistorySaved struct {
	Record domain.ScanRecord
	Err    error
}

// SettingsChanged is sent after the configuration file was reloaded.
type SettingsChanged struct {
	Settings domain.Settings
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
