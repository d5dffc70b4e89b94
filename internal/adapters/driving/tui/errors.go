package tui

import "errors"

// ErrMissingCurationService is returned when the curation service is not provided.
var ErrMissingCurationService = errors.New("tui: curation service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")
