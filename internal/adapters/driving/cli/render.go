package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

var (
	renderFormat  string
	renderColumns int
	renderTitle   string
	renderCopy    bool
	renderHistory string
)

var renderCmd = &cobra.Command{
	Use:   "render [link]",
	Short: "Render a gallery table or link list",
	Long: `Scans a GitHub link and renders the images as copyable output.

Formats:
  html     - HTML table embedding the images (default)
  preview  - HTML table with numbered placeholder thumbnails
  links    - one raw-content URL per line

Columns and title default to the gallery settings. Use --history to render
a saved scan instead of scanning again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(domain.FormatHTML), "output format (html, preview, links)")
	renderCmd.Flags().IntVarP(&renderColumns, "columns", "c", 0, "table columns, 1-5 (default from settings)")
	renderCmd.Flags().StringVarP(&renderTitle, "title", "t", "", "table title (default from settings)")
	renderCmd.Flags().BoolVar(&renderCopy, "copy", false, "copy the output to the clipboard")
	renderCmd.Flags().StringVar(&renderHistory, "history", "", "render a saved scan by ID")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	urls, err := resolveURLs(cmd, args, renderHistory)
	if err != nil {
		return err
	}

	cfg := currentSettings().Gallery
	if cmd.Flags().Changed("columns") {
		cfg.Columns = renderColumns
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = renderTitle
	}

	format := domain.OutputFormat(strings.ToLower(strings.TrimSpace(renderFormat)))
	out, err := renderService.Render(format, urls, cfg)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	cmd.Println(out)

	if renderCopy {
		if actionService == nil {
			return errors.New("clipboard not configured")
		}
		if err := actionService.Copy(out); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		cmd.PrintErrf("Copied %s for %d images to the clipboard.\n", format, len(urls))
	}
	return nil
}
