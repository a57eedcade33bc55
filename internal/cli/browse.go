package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/CineSim/internal/ui"
)

var (
	browseNoPosters bool
	browseTheme     string
)

// newBrowseCommand creates the browse command
func newBrowseCommand() *cobra.Command {
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recommendations interactively",
		Long: `Open the interactive terminal browser.

Pick a title from the searchable catalog list, choose how many
recommendations you want, and page through the results with match scores
and poster links inline. Press ? inside the browser for the full key
reference.`,
		Example: `  # Browse with config defaults
  cinesim browse

  # Skip poster lookups for faster results
  cinesim browse --no-posters

  # Use the minimal theme
  cinesim browse --theme minimal`,
		RunE: runBrowse,
	}

	browseCmd.Flags().BoolVar(&browseNoPosters, "no-posters", false, "skip poster lookups")
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "color theme (default, high-contrast, minimal)")

	return browseCmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	theme := cfg.UI.Theme
	if browseTheme != "" {
		theme = browseTheme
	}
	if theme != "" && !isValidTheme(theme) {
		return fmt.Errorf("unknown theme %q (available: %s)",
			theme, strings.Join(ui.GetAvailableThemes(), ", "))
	}

	engine, err := buildEngine(cfg, !browseNoPosters)
	if err != nil {
		return err
	}

	return ui.InteractiveRun(engine, ui.Options{
		DefaultCount: cfg.UI.DefaultCount,
		MinCount:     cfg.UI.MinCount,
		MaxCount:     cfg.UI.MaxCount,
		Theme:        theme,
	})
}

// isValidTheme reports whether name is one of the built-in themes.
func isValidTheme(name string) bool {
	for _, t := range ui.GetAvailableThemes() {
		if t == name {
			return true
		}
	}
	return false
}
