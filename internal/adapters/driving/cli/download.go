package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

var (
	downloadDir        string
	downloadSelect     string
	downloadHistory    string
	downloadNoProgress bool
)

// downloadBarTemplate shows the counter, the bar and the current file.
const downloadBarTemplate pb.ProgressBarTemplate = `{{counters . }} {{bar . }} {{percent . }} {{string . "file"}}`

var downloadCmd = &cobra.Command{
	Use:   "download [link]",
	Short: "Download the images behind a GitHub link",
	Long: `Scans a GitHub link and saves every image under the storage root
(--root, default the current directory), one at a time.

Existing files are never overwritten: a second "logo.png" is saved as
"logo (1).png". A failed image is reported and the batch continues.
Press Ctrl-C to stop after the current image.

Examples:
  gittable download https://github.com/owner/repo/tree/main/docs
  gittable download https://github.com/owner/repo --dir assets/shots --select 1,3-5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadDir, "dir", "d", "", "folder under the storage root (default from settings)")
	downloadCmd.Flags().StringVarP(&downloadSelect, "select", "s", "", "1-based positions to download, e.g. 1,3-5")
	downloadCmd.Flags().StringVar(&downloadHistory, "history", "", "download a saved scan by ID")
	downloadCmd.Flags().BoolVar(&downloadNoProgress, "no-progress", false, "do not draw a progress bar")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	if downloadService == nil {
		return errors.New("download service not configured")
	}

	urls, err := resolveURLs(cmd, args, downloadHistory)
	if err != nil {
		return err
	}

	if downloadSelect != "" {
		positions, err := parseSelection(downloadSelect, len(urls))
		if err != nil {
			return err
		}
		picked := make([]string, 0, len(positions))
		for _, p := range positions {
			picked = append(picked, urls[p-1])
		}
		urls = picked
	}

	if len(urls) == 0 {
		cmd.Println("No images to download.")
		return nil
	}

	dir := downloadDir
	if !cmd.Flags().Changed("dir") {
		dir = currentSettings().DownloadDir
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var bar *pb.ProgressBar
	if !downloadNoProgress {
		bar = downloadBarTemplate.New(len(urls))
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
	}

	var failures []domain.DownloadProgress
	summary, err := downloadService.DownloadAll(ctx, urls, dir, func(p domain.DownloadProgress) {
		if p.Outcome == domain.DownloadFailure {
			failures = append(failures, p)
		}
		if bar == nil {
			return
		}
		bar.Set("file", p.Filename)
		if p.Outcome != domain.DownloadPending {
			bar.Increment()
		}
	})
	if bar != nil {
		bar.Finish()
	}

	for _, f := range failures {
		cmd.PrintErrf("  failed [%d] %s: %v\n", f.Index, f.Filename, f.Err)
	}

	if err != nil {
		if errors.Is(err, domain.ErrCancelled) {
			cmd.Printf("Stopped. %s\n", summary.Message())
			return nil
		}
		return fmt.Errorf("download failed: %w", err)
	}

	cmd.Println(summary.Message())
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d images", domain.ErrDownloadFailed, summary.Failed, summary.Total())
	}
	return nil
}

// parseSelection parses "1,3-5" into ordered, de-duplicated 1-based
// positions within [1, n].
func parseSelection(spec string, n int) ([]int, error) {
	var picked []int
	seen := make(map[int]bool)

	add := func(p int) error {
		if p < 1 || p > n {
			return fmt.Errorf("%w: position %d is outside 1-%d", domain.ErrInvalidInput, p, n)
		}
		if !seen[p] {
			seen[p] = true
			picked = append(picked, p)
		}
		return nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: bad selection %q", domain.ErrInvalidInput, part)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || to < from {
				return nil, fmt.Errorf("%w: bad range %q", domain.ErrInvalidInput, part)
			}
		}

		for p := from; p <= to; p++ {
			if err := add(p); err != nil {
				return nil, err
			}
		}
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("%w: empty selection", domain.ErrInvalidInput)
	}
	return picked, nil
}
