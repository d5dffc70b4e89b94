package domain

// CurationSnapshot is a read-only view of a curation session.
type CurationSnapshot struct {
	// Link is the most recently scanned link.
	Link string

	// Reference is the resolved reference of the last applied scan.
	Reference GitHubReference

	Items []string

	// Selected is NoSelection when Items is empty.
	Selected int

	CanUndo   bool
	Truncated bool
	Config    RenderConfig

	// Scanning is set while a scan is in flight.
	Scanning bool
}

// SelectedURL returns the highlighted URL, if any.
func (s CurationSnapshot) SelectedURL() (string, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Selected], true
}
