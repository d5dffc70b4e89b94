package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open an image URL in the default browser",
	Long: `Opens the URL in the system browser. Only http and https links to
GitHub hosts are allowed.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	if actionService == nil {
		return errors.New("action service not configured")
	}
	if err := actionService.Open(args[0]); err != nil {
		return fmt.Errorf("open failed: %w", err)
	}
	cmd.PrintErrf("Opened %s\n", args[0])
	return nil
}
