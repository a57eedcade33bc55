package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// newTitlesCommand creates the titles command
func newTitlesCommand() *cobra.Command {
	titlesCmd := &cobra.Command{
		Use:   "titles [filter]",
		Short: "List known movie titles",
		Long: `List every title in the catalog in lexicographic order.

An optional filter argument keeps only titles containing the given
substring, case-insensitively. The list is exactly the set of titles the
recommend command accepts.`,
		Example: `  # All titles
  cinesim titles

  # Titles containing "star"
  cinesim titles star

  # Machine-readable list
  cinesim titles -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTitles,
	}

	return titlesCmd
}

func runTitles(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	engine, err := buildEngine(cfg, false)
	if err != nil {
		return err
	}

	titles := engine.Catalog().SortedTitles()
	if len(args) == 1 {
		titles = filterTitles(titles, args[0])
	}

	output, err := renderTitles(titles, getOutputFormat())
	if err != nil {
		return err
	}

	fmt.Print(string(output))

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "%d titles\n", len(titles))
	}

	return nil
}

// filterTitles keeps titles containing the substring, case-insensitively.
func filterTitles(titles []string, substr string) []string {
	needle := strings.ToLower(substr)
	filtered := make([]string, 0, len(titles))
	for _, title := range titles {
		if strings.Contains(strings.ToLower(title), needle) {
			filtered = append(filtered, title)
		}
	}
	return filtered
}

// renderTitles renders the title list as plain lines, or as a JSON
// document when the json format is selected. The richer formats make no
// sense for a bare list, so they fall back to plain lines.
func renderTitles(titles []string, format string) ([]byte, error) {
	switch format {
	case "json":
		doc := struct {
			Titles []string `json:"titles"`
			Total  int      `json:"total"`
		}{Titles: titles, Total: len(titles)}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal titles: %w", err)
		}
		return append(data, '\n'), nil
	case "text", "terminal", "", "markdown", "md", "csv":
		var sb strings.Builder
		for _, title := range titles {
			sb.WriteString(title)
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
