package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan <link>",
	Short: "List the images behind a GitHub link",
	Long: `Enumerates every image reachable from a GitHub repository, folder or
file link and prints their raw-content URLs in path order.

Supported links:
  https://github.com/owner/repo
  https://github.com/owner/repo/tree/<ref>/<folder>
  https://github.com/owner/repo/blob/<ref>/<file>

Successful scans are kept in the scan history (see "gittable history").`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

type scanOutput struct {
	Owner     string   `json:"owner"`
	Repo      string   `json:"repo"`
	Ref       string   `json:"ref"`
	Path      string   `json:"path,omitempty"`
	Truncated bool     `json:"truncated"`
	URLs      []string `json:"urls"`
}

func runScan(cmd *cobra.Command, args []string) error {
	result, err := enumerate(cmd, args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		out := scanOutput{
			Owner:     result.Reference.Owner,
			Repo:      result.Reference.Repo,
			Ref:       result.Reference.Ref,
			Path:      result.Reference.Subpath,
			Truncated: result.Truncated,
			URLs:      result.URLs,
		}
		if out.URLs == nil {
			out.URLs = []string{}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(result.URLs) == 0 {
		cmd.Printf("No images found in %s.\n", result.Reference)
		return nil
	}

	cmd.Printf("Found %d images in %s:\n", len(result.URLs), result.Reference)
	for i, u := range result.URLs {
		cmd.Printf("  [%d] %s\n", i+1, u)
	}
	return nil
}
