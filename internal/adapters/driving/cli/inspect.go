package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Fetch one image and print its format, size and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if previewService == nil {
		return errors.New("preview service not configured")
	}

	info, err := previewService.Inspect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	cmd.Printf("URL:     %s\n", info.URL)
	cmd.Printf("File:    %s\n", info.Filename)
	cmd.Printf("Format:  %s\n", orUnknown(info.Format))
	cmd.Printf("Size:    %d bytes\n", info.Bytes)
	if info.Decoded() {
		cmd.Printf("Pixels:  %dx%d\n", info.Width, info.Height)
	} else {
		cmd.Println("Pixels:  unknown")
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
