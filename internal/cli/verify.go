package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/CineSim/internal/catalog"
	"github.com/yildizm/CineSim/internal/config"
	"github.com/yildizm/CineSim/internal/emoji"
	"github.com/yildizm/CineSim/internal/vectorindex"
)

var verifyWatch bool

// newVerifyCommand creates the verify command
func newVerifyCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify artifact consistency",
		Long: `Verify that the three artifact files load and agree with each other.

Checks that the movie records parse, that every embedding vector has the
declared dimension, and that the index holds the same vectors row for row
as the embeddings file. With --watch, stays running and re-verifies
whenever the offline pipeline rewrites an artifact.`,
		Example: `  # One-shot check
  cinesim verify

  # Keep checking while the pipeline regenerates artifacts
  cinesim verify --watch`,
		RunE: runVerify,
	}

	verifyCmd.Flags().BoolVarP(&verifyWatch, "watch", "w", false, "re-verify whenever an artifact file changes")

	return verifyCmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if err := verifyArtifacts(cfg); err != nil {
		fmt.Printf("%s Verification failed: %v\n", emoji.GetEmoji("error"), err)
		if !verifyWatch {
			return err
		}
	}

	if verifyWatch {
		return watchArtifacts(cfg)
	}

	return nil
}

// verifyArtifacts loads all three artifacts and cross-checks them. Any
// inconsistency means the files come from different pipeline runs.
func verifyArtifacts(cfg *config.Config) error {
	movies, err := catalog.LoadMovies(cfg.Artifacts.MoviesPath())
	if err != nil {
		return fmt.Errorf("movies artifact: %w", err)
	}

	emb, err := catalog.LoadEmbeddings(cfg.Artifacts.EmbeddingsPath())
	if err != nil {
		return fmt.Errorf("embeddings artifact: %w", err)
	}

	cat, err := catalog.New(movies, emb)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	index, err := vectorindex.Load(cfg.Artifacts.IndexPath())
	if err != nil {
		return fmt.Errorf("index artifact: %w", err)
	}

	if cat.Len() != index.Len() {
		return fmt.Errorf("row misalignment: %d movies but %d indexed vectors", cat.Len(), index.Len())
	}
	if cat.Dimension() != index.Dimension() {
		return fmt.Errorf("dimension mismatch: embeddings have %d, index has %d", cat.Dimension(), index.Dimension())
	}

	for row := 0; row < cat.Len(); row++ {
		want, _ := cat.VectorAt(row)
		got, ok := index.VectorAt(row)
		if !ok || !equalVectors(want, got) {
			movie, _ := cat.MovieAt(row)
			return fmt.Errorf("index row %d (%s) does not match its embedding", row, movie.Title)
		}
	}

	fmt.Printf("%s Artifacts are consistent\n", emoji.GetEmoji("success"))
	fmt.Printf("%s %d movies, %d dimensions, %s metric\n",
		emoji.GetEmoji("catalog"), cat.Len(), cat.Dimension(), index.Metric())

	return nil
}

func equalVectors(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// watchArtifacts re-verifies whenever an artifact file is rewritten.
func watchArtifacts(cfg *config.Config) error {
	watcher, cleanup, err := setupArtifactWatcher(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return runVerifyLoop(watcher, cfg)
}

// setupArtifactWatcher creates a watcher on all three artifact files
func setupArtifactWatcher(cfg *config.Config) (*fsnotify.Watcher, func(), error) {
	paths := []string{
		cfg.Artifacts.MoviesPath(),
		cfg.Artifacts.EmbeddingsPath(),
		cfg.Artifacts.IndexPath(),
	}

	for _, path := range paths {
		if err := validateWatchFilePath(path); err != nil {
			return nil, nil, fmt.Errorf("invalid artifact path %s: %w", path, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			cleanupWatcher(watcher)
			return nil, nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	fmt.Printf("\n%s Watching %d artifact files for changes\n", emoji.GetEmoji("search"), len(paths))
	fmt.Println("Press Ctrl+C to stop...")

	cleanup := func() { cleanupWatcher(watcher) }
	return watcher, cleanup, nil
}

// runVerifyLoop runs the watch loop with signal handling
func runVerifyLoop(watcher *fsnotify.Watcher, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			fmt.Println("\nReceived interrupt signal, stopping...")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			handleArtifactEvent(event, cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}

// handleArtifactEvent re-verifies after write events, ignoring the
// chatter fsnotify reports for other operations.
func handleArtifactEvent(event fsnotify.Event, cfg *config.Config) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}

	fmt.Printf("\n%s %s changed, re-verifying...\n", emoji.GetEmoji("clock"), filepath.Base(event.Name))
	if err := verifyArtifacts(cfg); err != nil {
		fmt.Printf("%s Verification failed: %v\n", emoji.GetEmoji("error"), err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	// Check for empty path
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	// Clean the path to resolve . and .. elements
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// For watch operations, ensure the file exists and is a regular file
	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}

func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}
