package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/CineSim/internal/config"
	"github.com/yildizm/CineSim/internal/formatter"
	"github.com/yildizm/CineSim/internal/recommend"
)

var (
	recommendCount      int
	recommendNoPosters  bool
	recommendTimeout    time.Duration
	recommendOutputFile string
)

// newRecommendCommand creates the recommend command
func newRecommendCommand() *cobra.Command {
	recommendCmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend movies similar to a title",
		Long: `Recommend movies similar to the given title, closest first.

The title must match a catalog entry exactly; use the titles command to
see what the catalog knows. An unknown title produces an empty result
rather than an error, so shell pipelines stay simple.`,
		Example: `  # Five recommendations with posters
  cinesim recommend "Toy Story"

  # Ten results as JSON, no poster lookups
  cinesim recommend -n 10 --no-posters -o json "Heat"

  # Save a CSV report
  cinesim recommend "Alien" -o csv --output-file similar.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 0, "number of recommendations (default from config)")
	recommendCmd.Flags().BoolVar(&recommendNoPosters, "no-posters", false, "skip poster lookups")
	recommendCmd.Flags().DurationVar(&recommendTimeout, "timeout", 30*time.Second, "overall timeout for the request")
	recommendCmd.Flags().StringVar(&recommendOutputFile, "output-file", "", "save output to file instead of stdout")

	return recommendCmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	// Use config values if flags weren't explicitly set
	if !cmd.Flag("count").Changed {
		recommendCount = cfg.UI.DefaultCount
	}
	format := getOutputFormat()
	if !cmd.Flag("output").Changed && cfg.Output.DefaultFormat != "" {
		format = cfg.Output.DefaultFormat
	}

	engine, err := buildEngine(cfg, !recommendNoPosters)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), recommendTimeout)
	defer cancel()

	response, err := engine.Recommend(ctx, args[0], recommendCount)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	return writeResponse(response, format, colorEnabled(cfg), recommendOutputFile)
}

// writeResponse formats a response and routes it to the configured
// destination.
func writeResponse(response *recommend.Response, format string, color bool, outputFile string) error {
	responseFormatter, err := getFormatter(format, color)
	if err != nil {
		return fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := responseFormatter.Format(response)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return handleOutputDestination(output, outputFile)
}

// getFormatter returns the appropriate formatter for the given format
func getFormatter(format string, color bool) (formatter.Formatter, error) {
	switch format {
	case "json":
		return formatter.NewJSON(), nil
	case "markdown", "md":
		return formatter.NewMarkdown(), nil
	case "csv":
		return formatter.NewCSV(), nil
	case "text", "terminal", "":
		return formatter.NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// colorEnabled resolves the effective color setting from the --no-color
// flag, the configured color mode, and the NO_COLOR convention.
func colorEnabled(cfg *config.Config) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cfg.Output.ColorMode != "never"
}

func handleOutputDestination(output []byte, outputFile string) error {
	if outputFile != "" {
		if err := writeOutputBytesToFile(output, outputFile); err != nil {
			return fmt.Errorf("failed to write output to file: %w", err)
		}

		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outputFile)
		}
	} else {
		fmt.Print(string(output))
	}

	return nil
}

func writeOutputBytesToFile(output []byte, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}
	cleanPath := filepath.Clean(filePath)

	// Create or truncate the file
	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	// Write the output
	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
