package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// DemoAPIKey is the public demo key for the poster API. It is heavily
// rate limited and only suitable for trying the tool out.
const DemoAPIKey = "trilogy"

// Config holds the complete application configuration
type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Artifacts ArtifactsConfig `yaml:"artifacts" json:"artifacts"`
	Poster    PosterConfig    `yaml:"poster" json:"poster"`
	Output    OutputConfig    `yaml:"output" json:"output"`
	UI        UIConfig        `yaml:"ui" json:"ui"`
}

// ArtifactsConfig locates the three precomputed artifact files. All three
// must be row-aligned: record i, embedding vector i, and index entry i
// refer to the same movie.
type ArtifactsConfig struct {
	Dir        string `yaml:"dir" json:"dir"`               // base directory for artifacts
	Movies     string `yaml:"movies" json:"movies"`         // movie records file
	Embeddings string `yaml:"embeddings" json:"embeddings"` // embedding matrix file
	Index      string `yaml:"index" json:"index"`           // similarity index file
}

// MoviesPath returns the resolved movie records path.
func (a *ArtifactsConfig) MoviesPath() string { return a.join(a.Movies) }

// EmbeddingsPath returns the resolved embedding matrix path.
func (a *ArtifactsConfig) EmbeddingsPath() string { return a.join(a.Embeddings) }

// IndexPath returns the resolved similarity index path.
func (a *ArtifactsConfig) IndexPath() string { return a.join(a.Index) }

func (a *ArtifactsConfig) join(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(expandPath(a.Dir), name)
}

// PosterConfig configures the poster metadata API client
type PosterConfig struct {
	Provider     string        `yaml:"provider" json:"provider"`             // omdb|tmdb
	Endpoint     string        `yaml:"endpoint" json:"endpoint"`             // API endpoint URL
	ImageBaseURL string        `yaml:"image_base_url" json:"image_base_url"` // image host prefix (tmdb)
	APIKey       string        `yaml:"api_key" json:"api_key"`               // API key (env var or .env supported)
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`               // per-request timeout
	CacheSize    int           `yaml:"cache_size" json:"cache_size"`         // LRU entries, 0 uses the default
	Enabled      bool          `yaml:"enabled" json:"enabled"`               // skip lookups entirely when false
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	CompactMode   bool   `yaml:"compact_mode" json:"compact_mode"`     // compact output mode
}

// UIConfig configures the interactive browser
type UIConfig struct {
	DefaultCount int    `yaml:"default_count" json:"default_count"` // initial recommendation count
	MinCount     int    `yaml:"min_count" json:"min_count"`         // count selector lower bound
	MaxCount     int    `yaml:"max_count" json:"max_count"`         // count selector upper bound
	Theme        string `yaml:"theme" json:"theme"`                 // default|high-contrast|minimal
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Artifacts: ArtifactsConfig{
			Dir:        "./artifacts",
			Movies:     "movies.json",
			Embeddings: "embeddings.json",
			Index:      "index.json",
		},
		Poster: PosterConfig{
			Provider:     "omdb",
			Endpoint:     "http://www.omdbapi.com/",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			APIKey:       "",
			Timeout:      2 * time.Second,
			CacheSize:    256,
			Enabled:      true,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			CompactMode:   false,
		},
		UI: UIConfig{
			DefaultCount: 5,
			MinCount:     3,
			MaxCount:     10,
			Theme:        "default",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateArtifactsConfig(); err != nil {
		return err
	}
	if err := c.validatePosterConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	return nil
}

// validateArtifactsConfig validates artifact location configuration
func (c *Config) validateArtifactsConfig() error {
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("artifacts dir must not be empty")
	}
	if c.Artifacts.Movies == "" || c.Artifacts.Embeddings == "" || c.Artifacts.Index == "" {
		return fmt.Errorf("artifact file names must not be empty")
	}
	return nil
}

// validatePosterConfig validates poster API configuration
func (c *Config) validatePosterConfig() error {
	if c.Poster.Provider != "" {
		validProviders := map[string]bool{
			"omdb": true,
			"tmdb": true,
		}
		if !validProviders[c.Poster.Provider] {
			return fmt.Errorf("invalid poster provider: %s (must be one of: omdb, tmdb)", c.Poster.Provider)
		}
	}
	if c.Poster.Timeout <= 0 {
		return fmt.Errorf("poster timeout must be positive")
	}
	if c.Poster.CacheSize < 0 {
		return fmt.Errorf("poster cache_size must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates count selector bounds
func (c *Config) validateUIConfig() error {
	if c.UI.MinCount < 1 {
		return fmt.Errorf("ui min_count must be greater than 0")
	}
	if c.UI.MaxCount < c.UI.MinCount {
		return fmt.Errorf("ui max_count must be >= min_count")
	}
	if c.UI.DefaultCount < c.UI.MinCount || c.UI.DefaultCount > c.UI.MaxCount {
		return fmt.Errorf("ui default_count must be within [min_count, max_count]")
	}
	return nil
}
