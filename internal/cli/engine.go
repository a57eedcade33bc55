package cli

import (
	"fmt"
	"os"

	"github.com/yildizm/CineSim/internal/catalog"
	"github.com/yildizm/CineSim/internal/config"
	"github.com/yildizm/CineSim/internal/logger"
	"github.com/yildizm/CineSim/internal/poster"
	"github.com/yildizm/CineSim/internal/recommend"
	"github.com/yildizm/CineSim/internal/vectorindex"
)

// buildEngine loads the artifacts named by the configuration and wires
// the recommendation engine. Poster lookups are optional; the catalog and
// index are required and a load failure is fatal for the command.
func buildEngine(cfg *config.Config, withPosters bool) (*recommend.Engine, error) {
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Loading artifacts from %s\n", cfg.Artifacts.Dir)
	}

	cat, err := catalog.Load(cfg.Artifacts.MoviesPath(), cfg.Artifacts.EmbeddingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	index, err := vectorindex.Load(cfg.Artifacts.IndexPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	posters, err := buildPosterClient(cfg, withPosters)
	if err != nil {
		return nil, err
	}

	engine, err := recommend.New(cat, index, posters, logger.NewWithCallback("recommend", isVerbose))
	if err != nil {
		return nil, fmt.Errorf("artifacts are inconsistent: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Loaded %d movies (%d dimensions, %s metric)\n",
			cat.Len(), cat.Dimension(), engine.Metric())
	}

	return engine, nil
}

// buildPosterClient wires the configured poster provider, or returns nil
// when posters are disabled so the engine skips lookups entirely.
func buildPosterClient(cfg *config.Config, withPosters bool) (*poster.Client, error) {
	if !withPosters || !cfg.Poster.Enabled {
		return nil, nil
	}

	provider, err := poster.NewProvider(poster.Options{
		Provider:     cfg.Poster.Provider,
		Endpoint:     cfg.Poster.Endpoint,
		ImageBaseURL: cfg.Poster.ImageBaseURL,
		APIKey:       cfg.Poster.APIKey,
		Timeout:      cfg.Poster.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure poster provider: %w", err)
	}

	client, err := poster.NewClient(provider, cfg.Poster.CacheSize, logger.NewWithCallback("poster", isVerbose))
	if err != nil {
		return nil, fmt.Errorf("failed to build poster client: %w", err)
	}

	return client, nil
}
