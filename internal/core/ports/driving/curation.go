package driving

import (
	"context"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

// CurationService is a single curation session: one ordered image list,
// its layout and at most one outstanding scan.
type CurationService interface {
	// Scan enumerates link and replaces the list with the result.
	// A newer Scan supersedes this one; superseded scans return
	// domain.ErrCancelled and never touch the list.
	Scan(ctx context.Context, link string) (domain.ScanResult, error)

	// Load replaces the list without scanning.
	Load(urls []string)

	// Snapshot returns the current state.
	Snapshot() domain.CurationSnapshot

	// Select highlights index i.
	Select(i int)

	// MoveUp moves entry i towards the top.
	MoveUp(i int)

	// MoveDown moves entry i towards the bottom.
	MoveDown(i int)

	// Delete removes entry i. It fails with domain.ErrNoSelection when out of range.
	Delete(i int) error

	// Undo restores the most recent deletion.
	Undo() bool

	// SetColumns sets the table column count, clamped.
	SetColumns(n int)

	// SetTitle sets the table title.
	SetTitle(title string)

	// Render renders the current list in format.
	Render(format domain.OutputFormat) (string, error)

	// SaveHistory stores the current order in scan history.
	SaveHistory(ctx context.Context) (domain.ScanRecord, error)

	// Restore loads a saved record into the list.
	Restore(ctx context.Context, id string) error
}
