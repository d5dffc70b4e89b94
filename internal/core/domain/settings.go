package domain

import "strings"

// TokenWarning is shown wherever the GitHub token is entered or displayed.
const TokenWarning = "The GitHub token is stored in plaintext in the config file. " +
	"Treat it as sensitive and prefer a fine-grained, read-only token."

// Settings holds persisted user configuration.
type Settings struct {
	// GitHubToken is an optional personal access token for API calls.
	GitHubToken string

	// DownloadDir is a storage-relative folder for downloaded images.
	// Empty means the storage root.
	DownloadDir string

	// Gallery holds the default table layout.
	Gallery RenderConfig
}

// DefaultSettings returns settings for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Gallery: RenderConfig{Columns: MinColumns},
	}
}

// HasToken reports whether a token is configured.
func (s Settings) HasToken() bool {
	return strings.TrimSpace(s.GitHubToken) != ""
}

// MaskedToken returns the token with all but the last four characters hidden.
func (s Settings) MaskedToken() string {
	t := strings.TrimSpace(s.GitHubToken)
	switch {
	case t == "":
		return "(not set)"
	case len(t) <= 4:
		return strings.Repeat("*", len(t))
	default:
		return strings.Repeat("*", len(t)-4) + t[len(t)-4:]
	}
}

// SanitizeFolderPath normalises a storage-relative folder path.
// Backslashes become slashes and empty, "." and ".." segments are dropped,
// so the result can never climb above the storage root.
func SanitizeFolderPath(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), `\`, "/")
	var kept []string
	for _, seg := range strings.Split(p, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/")
}
