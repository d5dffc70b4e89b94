// Package cli provides the cobra command tree for gittable.
// It is a driving adapter: commands call core services through driving ports.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gittable/internal/core/domain"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
	"github.com/custodia-labs/gittable/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flags handed to the bootstrap hook.
type Options struct {
	Verbose   bool
	ConfigDir string
	Root      string
}

// Services holds the driving ports the commands use.
type Services struct {
	Scan     driving.ScanService
	Render   driving.RenderService
	Download driving.DownloadService
	Settings driving.SettingsService
	History  driving.HistoryService
	Actions  driving.ActionService
	Preview  driving.PreviewService
}

// Bootstrap builds services once flags are parsed. The returned function
// releases resources and runs after the command finishes.
type Bootstrap func(ctx context.Context, opts Options) (cleanup func(), err error)

var (
	opts      Options
	bootstrap Bootstrap
	cleanup   func()
)

var (
	scanService     driving.ScanService
	renderService   driving.RenderService
	downloadService driving.DownloadService
	settingsService driving.SettingsService
	historyService  driving.HistoryService
	actionService   driving.ActionService
	previewService  driving.PreviewService
)

var rootCmd = &cobra.Command{
	Use:   "gittable",
	Short: "Turn GitHub image folders into gallery tables",
	Long: `gittable enumerates the images behind a GitHub repository, folder or
file link and turns them into an HTML table gallery, a list of raw links
or a local download.

Run "gittable tui" to curate the list interactively.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	// cobra prints to stderr unless told otherwise; results belong on stdout.
	rootCmd.SetOut(os.Stdout)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug logs to stderr")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "directory holding config.toml and scan history (default ~/.gittable)")
	flags.StringVar(&opts.Root, "root", "", "storage root for downloads (default current directory)")
}

// SetBootstrap registers the hook that wires services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects the driving ports.
func SetServices(s Services) {
	scanService = s.Scan
	renderService = s.Render
	downloadService = s.Download
	settingsService = s.Settings
	historyService = s.History
	actionService = s.Actions
	previewService = s.Preview
}

// Execute runs the root command and releases what the bootstrap hook built.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	if bootstrap == nil {
		return nil
	}

	done, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("starting gittable: %w", err)
	}
	cleanup = done
	return nil
}

// currentSettings returns persisted settings, or defaults without a service.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	s, err := settingsService.Get()
	if err != nil {
		logger.Warn("read settings: %v", err)
		return domain.DefaultSettings()
	}
	return s
}

// enumerate scans link with the configured token and records the scan.
func enumerate(cmd *cobra.Command, link string) (domain.ScanResult, error) {
	if scanService == nil {
		return domain.ScanResult{}, errors.New("scan service not configured")
	}

	result, err := scanService.Enumerate(cmd.Context(), link, currentSettings().GitHubToken)
	if err != nil {
		if hint := domain.Hint(err); hint != "" {
			cmd.PrintErrln("Hint: " + hint)
		}
		return domain.ScanResult{}, err
	}
	if result.Truncated {
		cmd.PrintErrln(domain.TruncatedNotice)
	}

	if historyService != nil && len(result.URLs) > 0 {
		if _, err := historyService.Record(cmd.Context(), link, result.Reference, result.URLs, result.Truncated); err != nil {
			logger.Warn("record scan history: %v", err)
		}
	}
	return result, nil
}

// resolveURLs returns the URLs of a saved scan when id is set, or scans args[0].
func resolveURLs(cmd *cobra.Command, args []string, id string) ([]string, error) {
	if id != "" {
		if historyService == nil {
			return nil, errors.New("history service not configured")
		}
		record, err := historyService.Get(cmd.Context(), id)
		if err != nil {
			return nil, fmt.Errorf("loading scan %s: %w", id, err)
		}
		return record.URLs, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%w: pass a GitHub link or --history", domain.ErrInvalidLink)
	}
	result, err := enumerate(cmd, args[0])
	if err != nil {
		return nil, err
	}
	return result.URLs, nil
}
