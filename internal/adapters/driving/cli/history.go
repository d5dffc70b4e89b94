package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show and remove saved scans",
	Long: `Every scan that finds images is recorded, and the TUI can save a
curated order. Pass a record ID to "render --history" or
"download --history" to reuse it without scanning again.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent scans, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the URLs of a saved scan",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a saved scan",
	Args:    cobra.ExactArgs(1),
	RunE:    runHistoryRemove,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No saved scans.")
		return nil
	}

	cmd.Printf("Saved scans (%d):\n\n", len(records))
	for _, r := range records {
		cmd.Printf("  %s  %s  %s  %d images\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Label(), len(r.URLs))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	record, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get scan: %w", err)
	}

	cmd.Printf("ID:      %s\n", record.ID)
	cmd.Printf("Link:    %s\n", record.Link)
	cmd.Printf("Source:  %s\n", record.Label())
	cmd.Printf("Saved:   %s\n", record.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if record.Truncated {
		cmd.Println("Note:    the listing was truncated by GitHub")
	}
	cmd.Printf("Images:  %d\n", len(record.URLs))
	for i, u := range record.URLs {
		cmd.Printf("  [%d] %s\n", i+1, u)
	}
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove scan: %w", err)
	}
	cmd.Printf("Removed scan %s\n", args[0])
	return nil
}
