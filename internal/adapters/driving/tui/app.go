package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/gittable/internal/adapters/driving/tui/views/output"
	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/logger"
)

// RenderDelay coalesces rapid edits into one re-render.
const RenderDelay = 60 * time.Millisecond

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	linkInput  *input.Field
	titleInput *input.Field
	imageList  *list.ImageList
	outputView *output.View
	statusBar  *status.Bar

	// pane receives key presses.
	pane messages.Pane

	// format is the output shown in the output pane and copied with y.
	format domain.OutputFormat

	// renderGen invalidates pending debounce ticks.
	renderGen uint64

	// downloads streams batch download events while one runs.
	downloads chan tea.Msg

	// settingsChanged receives a signal per config reload.
	settingsChanged chan struct{}

	// err holds the last error that occurred.
	err error

	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		linkInput:  input.NewLinkField(s),
		titleInput: input.NewTitleField(s),
		imageList:  list.NewImageList(s),
		outputView: output.NewView(s),
		statusBar:  status.NewBar(s, km),
		pane:       messages.PaneLink,
		format:     domain.FormatHTML,
	}
	a.linkInput.Focus()
	a.refresh()
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("gittable"),
		a.linkInput.Init(),
		a.scheduleRender(),
	}
	if a.ports.Watcher != nil {
		cmds = append(cmds, a.watchSettings())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.pane {
		case messages.PaneLink:
			return a.updateLink(msg)
		case messages.PaneTitle:
			return a.updateTitle(msg)
		case messages.PaneList:
			return a.updateList(msg)
		}
		return a, nil

	case messages.ScanCompleted:
		return a, a.handleScan(msg)

	case messages.RenderTick:
		if msg.Generation == a.renderGen {
			a.render()
		}
		return a, nil

	case messages.ActionDone:
		a.report(msg.Message, msg.Err)
		return a, nil

	case messages.PreviewLoaded:
		a.report(describeImage(msg.Info), msg.Err)
		return a, nil

	case messages.HistorySaved:
		a.report(fmt.Sprintf("Saved %d images as %s", len(msg.Record.URLs), shortID(msg.Record.ID)), msg.Err)
		return a, nil

	case messages.DownloadProgressed:
		a.statusBar.SetState(status.StateDownloading)
		a.statusBar.SetMessage(msg.Progress.Status())
		return a, a.waitForDownload()

	case messages.DownloadFinished:
		a.downloads = nil
		a.report(msg.Summary.Message(), msg.Err)
		return a, nil

	case messages.SettingsChanged:
		if msg.Err != nil {
			a.report("", msg.Err)
		} else {
			a.statusBar.Notify("Settings reloaded")
		}
		return a, a.waitForSettings()

	case messages.ErrorOccurred:
		a.report("", msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the focused input
	var cmd tea.Cmd
	switch a.pane {
	case messages.PaneLink:
		a.linkInput, cmd = a.linkInput.Update(msg)
	case messages.PaneTitle:
		a.titleInput, cmd = a.titleInput.Update(msg)
	case messages.PaneList:
	}
	return a, cmd
}

// updateLink handles keys while the link input is focused.
func (a *App) updateLink(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), a.keymap.Submit):
		return a, a.startScan()
	case msg.String() == "tab" || msg.Type == tea.KeyEsc:
		a.focus(messages.PaneList)
		return a, nil
	}

	var cmd tea.Cmd
	a.linkInput, cmd = a.linkInput.Update(msg)
	return a, cmd
}

// updateTitle handles keys while the title is edited.
func (a *App) updateTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), a.keymap.Submit):
		a.ports.Curation.SetTitle(a.titleInput.Value())
		a.focus(messages.PaneList)
		return a, a.changed()
	case keymap.Matches(msg.String(), a.keymap.Cancel):
		a.focus(messages.PaneList)
		return a, nil
	}

	var cmd tea.Cmd
	a.titleInput, cmd = a.titleInput.Update(msg)
	return a, cmd
}

// updateList handles keys while the image list is focused.
//
//nolint:gocyclo // one case per list key
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := a.ports.Curation
	snap := cur.Snapshot()
	km := a.keymap
	k := msg.String()

	switch {
	case keymap.Matches(k, km.Quit):
		return a, tea.Quit
	case keymap.Matches(k, km.Focus):
		return a, a.focus(messages.PaneLink)
	case keymap.Matches(k, km.Up):
		cur.Select(snap.Selected - 1)
		a.refresh()
		return a, nil
	case keymap.Matches(k, km.Down):
		cur.Select(snap.Selected + 1)
		a.refresh()
		return a, nil
	case keymap.Matches(k, km.MoveUp):
		cur.MoveUp(snap.Selected)
		return a, a.changed()
	case keymap.Matches(k, km.MoveDown):
		cur.MoveDown(snap.Selected)
		return a, a.changed()
	case keymap.Matches(k, km.Delete):
		if err := cur.Delete(snap.Selected); err != nil {
			a.report("", err)
			return a, nil
		}
		a.statusBar.Notify("Deleted (u to undo)")
		return a, a.changed()
	case keymap.Matches(k, km.Undo):
		if !cur.Undo() {
			a.statusBar.Notify("Nothing to undo")
			return a, nil
		}
		a.statusBar.Notify("Restored")
		return a, a.changed()
	case keymap.Matches(k, km.MoreColumns):
		cur.SetColumns(snap.Config.Columns + 1)
		return a, a.changed()
	case keymap.Matches(k, km.FewerColumns):
		cur.SetColumns(snap.Config.Columns - 1)
		return a, a.changed()
	case keymap.Matches(k, km.Title):
		a.titleInput.SetValue(snap.Config.Title)
		return a, a.focus(messages.PaneTitle)
	case keymap.Matches(k, km.HTML):
		a.format = domain.FormatHTML
		return a, a.changed()
	case keymap.Matches(k, km.Links):
		a.format = domain.FormatLinks
		return a, a.changed()
	case keymap.Matches(k, km.ScrollUp):
		a.outputView.ScrollUp()
		return a, nil
	case keymap.Matches(k, km.ScrollDown):
		a.outputView.ScrollDown()
		return a, nil
	case keymap.Matches(k, km.Copy):
		return a, a.copyOutput()
	case keymap.Matches(k, km.Open):
		return a, a.openSelected(snap)
	case keymap.Matches(k, km.Preview):
		return a, a.inspectSelected(snap)
	case keymap.Matches(k, km.Download):
		return a, a.downloadSelected(snap)
	case keymap.Matches(k, km.DownloadAll):
		return a, a.downloadAll(snap)
	case keymap.Matches(k, km.Save):
		return a, a.saveHistory()
	}
	return a, nil
}

// focus moves keyboard focus to p.
func (a *App) focus(p messages.Pane) tea.Cmd {
	a.pane = p
	a.statusBar.SetPane(p)
	a.linkInput.Blur()
	a.titleInput.Blur()

	switch p {
	case messages.PaneLink:
		return a.linkInput.Focus()
	case messages.PaneTitle:
		return a.titleInput.Focus()
	case messages.PaneList:
	}
	return nil
}

// refresh copies the session state into the list and status bar.
func (a *App) refresh() {
	snap := a.ports.Curation.Snapshot()
	a.imageList.SetSnapshot(snap)
	a.statusBar.SetLayout(len(snap.Items), snap.Config.Columns, a.format.String())
	if snap.Truncated {
		a.statusBar.SetNote(domain.TruncatedNotice)
	} else {
		a.statusBar.SetNote("")
	}
}

// changed refreshes the list now and schedules a debounced re-render.
func (a *App) changed() tea.Cmd {
	a.refresh()
	return a.scheduleRender()
}

// scheduleRender starts a new debounce window. Only the tick of the
// latest window renders.
func (a *App) scheduleRender() tea.Cmd {
	a.renderGen++
	gen := a.renderGen
	return tea.Tick(RenderDelay, func(time.Time) tea.Msg {
		return messages.RenderTick{Generation: gen}
	})
}

// render re-renders the output pane in the current format.
func (a *App) render() {
	out, err := a.ports.Curation.Render(a.format)
	if err != nil {
		a.outputView.SetError(err)
		return
	}
	a.outputView.SetContent(a.format, out)
}

// report shows err when user-facing, or message otherwise.
// Cancellation is never shown.
func (a *App) report(message string, err error) {
	switch {
	case err == nil:
		if message != "" {
			a.statusBar.Notify(message)
		}
	case domain.IsUserFacing(err):
		a.err = err
		logger.Debug("tui: %v", err)
		a.statusBar.Fail(err)
	}
}

// startScan enumerates the link in the background.
func (a *App) startScan() tea.Cmd {
	link := strings.TrimSpace(a.linkInput.Value())
	if link == "" {
		a.report("", fmt.Errorf("%w: paste a GitHub link first", domain.ErrInvalidLink))
		return nil
	}

	a.statusBar.SetState(status.StateScanning)
	ctx, cur := a.ctx, a.ports.Curation
	return func() tea.Msg {
		result, err := cur.Scan(ctx, link)
		return messages.ScanCompleted{Link: link, Result: result, Err: err}
	}
}

// handleScan applies a finished scan. Superseded scans are dropped silently.
func (a *App) handleScan(msg messages.ScanCompleted) tea.Cmd {
	if errors.Is(msg.Err, domain.ErrCancelled) {
		return nil
	}
	a.refresh()
	if msg.Err != nil {
		a.report("", msg.Err)
		return nil
	}

	n := len(msg.Result.URLs)
	if n == 0 {
		a.statusBar.Notify("No images found at " + msg.Result.Reference.String())
	} else {
		a.statusBar.Notify(fmt.Sprintf("Found %d images in %s", n, msg.Result.Reference.String()))
		a.focus(messages.PaneList)
	}
	return a.scheduleRender()
}

// copyOutput copies the current rendering to the clipboard.
func (a *App) copyOutput() tea.Cmd {
	actions := a.ports.Actions
	if actions == nil {
		a.statusBar.Notify("Clipboard unavailable")
		return nil
	}
	out, err := a.ports.Curation.Render(a.format)
	if err != nil {
		a.report("", err)
		return nil
	}
	label := strings.ToUpper(a.format.String())
	return func() tea.Msg {
		if err := actions.Copy(out); err != nil {
			return messages.ActionDone{Err: err}
		}
		return messages.ActionDone{Message: "Copied " + label + " to clipboard"}
	}
}

// openSelected opens the highlighted image in the browser.
func (a *App) openSelected(snap domain.CurationSnapshot) tea.Cmd {
	url, ok := snap.SelectedURL()
	if !ok {
		a.report("", domain.ErrNoSelection)
		return nil
	}
	actions := a.ports.Actions
	if actions == nil {
		a.statusBar.Notify("Browser unavailable")
		return nil
	}
	return func() tea.Msg {
		if err := actions.Open(url); err != nil {
			return messages.ActionDone{Err: err}
		}
		return messages.ActionDone{Message: "Opened " + list.DisplayName(url)}
	}
}

// inspectSelected fetches the highlighted image and reports its size.
func (a *App) inspectSelected(snap domain.CurationSnapshot) tea.Cmd {
	url, ok := snap.SelectedURL()
	if !ok {
		a.report("", domain.ErrNoSelection)
		return nil
	}
	preview := a.ports.Preview
	if preview == nil {
		a.statusBar.Notify("Preview unavailable")
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		info, err := preview.Inspect(ctx, url)
		return messages.PreviewLoaded{Info: info, Err: err}
	}
}

// downloadSelected saves the highlighted image.
func (a *App) downloadSelected(snap domain.CurationSnapshot) tea.Cmd {
	url, ok := snap.SelectedURL()
	if !ok {
		a.report("", domain.ErrNoSelection)
		return nil
	}
	svc := a.ports.Download
	if svc == nil {
		a.statusBar.Notify("Downloads unavailable")
		return nil
	}
	dir := a.downloadDir()
	ctx := a.ctx
	return func() tea.Msg {
		path, err := svc.DownloadOne(ctx, url, dir)
		if err != nil {
			return messages.ActionDone{Err: err}
		}
		return messages.ActionDone{Message: "Downloaded to: " + path}
	}
}

// downloadAll saves every image in list order. Progress is streamed
// through a channel that the update loop drains one event at a time.
func (a *App) downloadAll(snap domain.CurationSnapshot) tea.Cmd {
	if len(snap.Items) == 0 {
		a.report("", domain.ErrNoSelection)
		return nil
	}
	svc := a.ports.Download
	if svc == nil {
		a.statusBar.Notify("Downloads unavailable")
		return nil
	}
	if a.downloads != nil {
		a.statusBar.Notify("A download is already running")
		return nil
	}

	events := make(chan tea.Msg, 8)
	a.downloads = events
	a.statusBar.SetState(status.StateDownloading)
	a.statusBar.SetMessage(fmt.Sprintf("Downloading %d images...", len(snap.Items)))

	ctx, dir, urls := a.ctx, a.downloadDir(), snap.Items
	send := func(msg tea.Msg) {
		select {
		case events <- msg:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(events)
		summary, err := svc.DownloadAll(ctx, urls, dir, func(p domain.DownloadProgress) {
			send(messages.DownloadProgressed{Progress: p})
		})
		send(messages.DownloadFinished{Summary: summary, Err: err})
	}()

	return a.waitForDownload()
}

// waitForDownload returns the next batch event.
func (a *App) waitForDownload() tea.Cmd {
	events := a.downloads
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return messages.DownloadFinished{Err: domain.ErrCancelled}
		}
		return msg
	}
}

// saveHistory stores the curated order.
func (a *App) saveHistory() tea.Cmd {
	ctx, cur := a.ctx, a.ports.Curation
	return func() tea.Msg {
		record, err := cur.SaveHistory(ctx)
		return messages.HistorySaved{Record: record, Err: err}
	}
}

// watchSettings subscribes to config reloads for the lifetime of ctx.
func (a *App) watchSettings() tea.Cmd {
	changed := make(chan struct{}, 1)
	a.settingsChanged = changed

	ctx, watcher := a.ctx, a.ports.Watcher
	go func() {
		err := watcher.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logger.Warn("settings watch: %v", err)
		}
	}()

	return a.waitForSettings()
}

// waitForSettings blocks until the next reload and reads the new values.
func (a *App) waitForSettings() tea.Cmd {
	changed := a.settingsChanged
	if changed == nil {
		return nil
	}
	ctx, settings := a.ctx, a.ports.Settings
	return func() tea.Msg {
		select {
		case <-changed:
		case <-ctx.Done():
			return nil
		}
		cfg, err := settings.Get()
		return messages.SettingsChanged{Settings: cfg, Err: err}
	}
}

func (a *App) downloadDir() string {
	cfg, err := a.ports.Settings.Get()
	if err != nil {
		logger.Warn("read settings: %v", err)
		return ""
	}
	return cfg.DownloadDir
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("gittable") + "  " +
		a.styles.Muted.Render("curate images from a GitHub link")

	listW, outW, bodyH := a.paneSizes()
	listPane := a.styles.PanelFor(a.pane == messages.PaneList).
		Width(listW).Height(bodyH).
		Render(a.imageList.View())
	outPane := a.styles.Panel.
		Width(outW).Height(bodyH).
		Render(a.outputView.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, outPane)

	parts := []string{header, a.linkInput.View(), body}
	if a.pane == messages.PaneTitle {
		parts = append(parts, a.titleInput.View())
	}
	parts = append(parts, a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// paneSizes splits the terminal between the list and output panes.
func (a *App) paneSizes() (listW, outW, bodyH int) {
	// Frame is border plus horizontal padding.
	const frame = 4
	listW = max(20, a.width*2/5-frame)
	outW = max(20, a.width-listW-2*frame)
	// header, input (3 rows), status bar, note, title input and frame
	bodyH = max(5, a.height-10)
	return listW, outW, bodyH
}

// describeImage formats inspection results for the status bar.
func describeImage(info domain.ImageInfo) string {
	desc := fmt.Sprintf("%s: %s, %s", info.Filename, strings.ToUpper(info.Format), humanBytes(info.Bytes))
	if info.Decoded() {
		desc += fmt.Sprintf(", %dx%d", info.Width, info.Height)
	}
	return desc
}

func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()
	a.ctx = ctx

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Pane returns the focused pane.
func (a *App) Pane() messages.Pane {
	return a.pane
}

// Format returns the output format.
func (a *App) Format() domain.OutputFormat {
	return a.format
}

// Output returns the last rendered output.
func (a *App) Output() string {
	return a.outputView.Content()
}

// Status returns the status bar state and message.
func (a *App) Status() (status.State, string) {
	return a.statusBar.State(), a.statusBar.Message()
}

// Note returns the warning line above the status bar.
func (a *App) Note() string {
	return a.statusBar.Note()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	listW, outW, bodyH := a.paneSizes()
	a.imageList.SetDimensions(listW, bodyH)
	a.outputView.SetDimensions(outW, bodyH)
	a.linkInput.SetWidth(width)
	a.titleInput.SetWidth(width)
	a.statusBar.SetWidth(width)
}
