package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gittable/internal/adapters/driving/tui"
	"github.com/custodia-labs/gittable/internal/core/ports/driving"
)

// TUIConfig holds the services only the TUI needs.
type TUIConfig struct {
	Curation driving.CurationService

	// Watcher reloads settings when the config file changes. Optional.
	Watcher tui.ConfigWatcher
}

var tuiConfig *TUIConfig

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive curation UI.

Paste a GitHub link, reorder and prune the images, then copy the HTML
table or download the files.

Controls:
  enter          - Scan the link
  tab, /         - Switch between link and list
  ↑/k, ↓/j       - Move the selection
  shift+↑/K, J   - Move the selected image
  x, u           - Delete / undo
  +, -           - More / fewer columns
  t              - Edit the table title
  g, l           - HTML table / link list
  y, o, p        - Copy output / open image / preview
  d, D           - Download selected / all
  s              - Save the order to history
  q              - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Settings: settingsService,
		Actions:  actionService,
		Preview:  previewService,
		Download: downloadService,
	}
	if tuiConfig != nil {
		ports.Curation = tuiConfig.Curation
		ports.Watcher = tuiConfig.Watcher
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
