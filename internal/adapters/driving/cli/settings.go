package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gittable/internal/core/domain"
)

var settingsTokenClear bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the GitHub token, the download folder and the default
gallery layout.

Use subcommands to change one value or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsTokenCmd = &cobra.Command{
	Use:   "token [value]",
	Short: "Set the GitHub token",
	Long: `Sets the personal access token used for GitHub API calls. Without a
value the token is read from the terminal without echo.

` + domain.TokenWarning,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsToken,
}

var settingsDirCmd = &cobra.Command{
	Use:   "dir <folder>",
	Short: "Set the download folder under the storage root",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDir,
}

var settingsColumnsCmd = &cobra.Command{
	Use:   "columns <n>",
	Short: "Set the default gallery column count",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsColumns,
}

var settingsTitleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: `Set the default gallery title ("" clears it)`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTitle,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	RunE:  runSettingsWizard,
}

func init() {
	settingsTokenCmd.Flags().BoolVar(&settingsTokenClear, "clear", false, "remove the stored token")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTokenCmd)
	settingsCmd.AddCommand(settingsDirCmd)
	settingsCmd.AddCommand(settingsColumnsCmd)
	settingsCmd.AddCommand(settingsTitleCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[GitHub]")
	cmd.Printf("  Token: %s\n", settings.MaskedToken())
	if settings.HasToken() {
		cmd.Printf("  Note: %s\n", domain.TokenWarning)
	}
	cmd.Println()

	cmd.Println("[Download]")
	cmd.Printf("  Folder: %s\n", displayDir(settings.DownloadDir))
	cmd.Println()

	cmd.Println("[Gallery]")
	cmd.Printf("  Columns: %d\n", settings.Gallery.Columns)
	title := settings.Gallery.Title
	if title == "" {
		title = "(none)"
	}
	cmd.Printf("  Title: %s\n", title)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsToken(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var token string
	switch {
	case settingsTokenClear:
	case len(args) == 1:
		token = args[0]
	default:
		cmd.PrintErrln(domain.TokenWarning)
		cmd.PrintErr("GitHub token: ")
		token = readPassword(cmd.InOrStdin())
		cmd.PrintErrln()
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		cmd.Println("GitHub token cleared.")
		return nil
	}
	cmd.Println("GitHub token saved.")
	return nil
}

func runSettingsDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetDownloadDir(args[0]); err != nil {
		return fmt.Errorf("failed to set download folder: %w", err)
	}
	cmd.Printf("Download folder set to: %s\n", displayDir(domain.SanitizeFolderPath(args[0])))
	return nil
}

func runSettingsColumns(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w: columns must be a number", domain.ErrInvalidInput)
	}

	gallery := currentSettings().Gallery
	gallery.Columns = domain.ClampColumns(n)
	if err := settingsService.SetGallery(gallery); err != nil {
		return fmt.Errorf("failed to set columns: %w", err)
	}
	cmd.Printf("Gallery columns set to: %d\n", gallery.Columns)
	return nil
}

func runSettingsTitle(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	gallery := currentSettings().Gallery
	gallery.Title = strings.TrimSpace(args[0])
	if err := settingsService.SetGallery(gallery); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	if gallery.Title == "" {
		cmd.Println("Gallery title cleared.")
		return nil
	}
	cmd.Printf("Gallery title set to: %s\n", gallery.Title)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current := currentSettings()
	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("gittable Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	cmd.Println("Step 1: GitHub Token")
	cmd.Println("--------------------")
	cmd.Println(domain.TokenWarning)
	cmd.Printf("Current: %s\n", current.MaskedToken())
	cmd.Print("Token (enter to keep, \"-\" to clear): ")
	switch input := readLine(reader); input {
	case "":
	case "-":
		current.GitHubToken = ""
	default:
		current.GitHubToken = input
	}
	cmd.Println()

	cmd.Println("Step 2: Download Folder")
	cmd.Println("-----------------------")
	cmd.Printf("Folder [%s]: ", displayDir(current.DownloadDir))
	if input := readLine(reader); input != "" {
		current.DownloadDir = domain.SanitizeFolderPath(input)
	}
	cmd.Println()

	cmd.Println("Step 3: Gallery Layout")
	cmd.Println("----------------------")
	cmd.Printf("Columns %d-%d [%d]: ", domain.MinColumns, domain.MaxColumns, current.Gallery.Columns)
	current.Gallery.Columns = parseChoice(readLine(reader), domain.MaxColumns, domain.ClampColumns(current.Gallery.Columns))
	cmd.Printf("Title [%s]: ", current.Gallery.Title)
	if input := readLine(reader); input != "" {
		current.Gallery.Title = input
	}
	cmd.Println()

	if err := settingsService.Save(current); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Settings saved to %s\n", settingsService.ConfigPath())
	return nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "(storage root)"
	}
	return dir
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is the terminal.
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(bufio.NewReader(in))
}
