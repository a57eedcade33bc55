package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.cinesim.yaml",               // Project-specific config (highest priority)
	"~/.config/cinesim/config.yaml", // User config
	"/etc/cinesim/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including a project .env file)
// 3. ./.cinesim.yaml
// 4. ~/.config/cinesim/config.yaml
// 5. /etc/cinesim/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		// Validate the custom path for security
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest to highest)
		paths := make([]string, len(l.configPaths))
		copy(paths, l.configPaths)
		for i := len(paths)/2 - 1; i >= 0; i-- {
			opp := len(paths) - 1 - i
			paths[i], paths[opp] = paths[opp], paths[i]
		}

		for _, path := range paths {
			expandedPath := expandPath(path)
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					// Log warning but continue with other config files
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	// Pull in a project .env file if present. godotenv never overwrites
	// variables already set in the environment, so system env wins.
	_ = godotenv.Load()

	// Apply environment variable overrides
	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Fall back to the public demo key when no key was configured anywhere
	if config.Poster.APIKey == "" {
		config.Poster.APIKey = DemoAPIKey
	}

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Artifacts Config
		"CINESIM_ARTIFACTS_DIR":        func(v string) error { config.Artifacts.Dir = v; return nil },
		"CINESIM_ARTIFACTS_MOVIES":     func(v string) error { config.Artifacts.Movies = v; return nil },
		"CINESIM_ARTIFACTS_EMBEDDINGS": func(v string) error { config.Artifacts.Embeddings = v; return nil },
		"CINESIM_ARTIFACTS_INDEX":      func(v string) error { config.Artifacts.Index = v; return nil },

		// Poster Config
		"CINESIM_POSTER_PROVIDER":       func(v string) error { config.Poster.Provider = v; return nil },
		"CINESIM_POSTER_ENDPOINT":       func(v string) error { config.Poster.Endpoint = v; return nil },
		"CINESIM_POSTER_IMAGE_BASE_URL": func(v string) error { config.Poster.ImageBaseURL = v; return nil },
		"CINESIM_POSTER_API_KEY":        func(v string) error { config.Poster.APIKey = v; return nil },
		"CINESIM_POSTER_TIMEOUT":        func(v string) error { return parseDuration(v, &config.Poster.Timeout) },
		"CINESIM_POSTER_CACHE_SIZE":     func(v string) error { return parseInt(v, &config.Poster.CacheSize) },
		"CINESIM_POSTER_ENABLED":        func(v string) error { return parseBool(v, &config.Poster.Enabled) },

		// Output Config
		"CINESIM_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"CINESIM_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"CINESIM_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"CINESIM_OUTPUT_COMPACT_MODE":   func(v string) error { return parseBool(v, &config.Output.CompactMode) },

		// UI Config
		"CINESIM_UI_DEFAULT_COUNT": func(v string) error { return parseInt(v, &config.UI.DefaultCount) },
		"CINESIM_UI_MIN_COUNT":     func(v string) error { return parseInt(v, &config.UI.MinCount) },
		"CINESIM_UI_MAX_COUNT":     func(v string) error { return parseInt(v, &config.UI.MaxCount) },
		"CINESIM_UI_THEME":         func(v string) error { config.UI.Theme = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Offline pipelines commonly export the key under this name; the
	// prefixed variable wins when both are set.
	if os.Getenv("CINESIM_POSTER_API_KEY") == "" {
		if key := os.Getenv("OMDB_API_KEY"); key != "" {
			config.Poster.APIKey = key
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	// Clean the path to resolve any ".." components
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// Ensure it's a YAML file
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	// Convert to absolute path for additional validation
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	// Basic sanity check - ensure it's not in sensitive system directories
	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeArtifactsConfig(&dst.Artifacts, &src.Artifacts)
	mergePosterConfig(&dst.Poster, &src.Poster)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeUIConfig(&dst.UI, &src.UI)
}

// mergeArtifactsConfig merges artifact location configuration
func mergeArtifactsConfig(dst, src *ArtifactsConfig) {
	if src.Dir != "" {
		dst.Dir = src.Dir
	}
	if src.Movies != "" {
		dst.Movies = src.Movies
	}
	if src.Embeddings != "" {
		dst.Embeddings = src.Embeddings
	}
	if src.Index != "" {
		dst.Index = src.Index
	}
}

// mergePosterConfig merges poster API configuration
func mergePosterConfig(dst, src *PosterConfig) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.ImageBaseURL != "" {
		dst.ImageBaseURL = src.ImageBaseURL
	}
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.CacheSize != 0 {
		dst.CacheSize = src.CacheSize
	}
	// For boolean fields we cannot tell "false" from "unset" after YAML
	// unmarshaling; env overrides cover explicit disabling.
}

// mergeOutputConfig merges output configuration
func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Verbose, src.Verbose)
	mergeIfSet(&dst.CompactMode, src.CompactMode)
}

// mergeUIConfig merges interactive browser configuration
func mergeUIConfig(dst, src *UIConfig) {
	if src.DefaultCount != 0 {
		dst.DefaultCount = src.DefaultCount
	}
	if src.MinCount != 0 {
		dst.MinCount = src.MinCount
	}
	if src.MaxCount != 0 {
		dst.MaxCount = src.MaxCount
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
}

// mergeIfSet only merges boolean values if they appear to be explicitly set
// This is a simple heuristic, but works for most cases
func mergeIfSet(dst *bool, src bool) {
	// For now, always merge - this could be improved with custom unmarshaling
	*dst = src
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
