package config

// SampleConfig returns a fully commented configuration template for
// `cinesim config init`.
func SampleConfig() string {
	return `# CineSim configuration file
#
# Search order: --config flag, $CINESIM_CONFIG, ./.cinesim.yaml,
# ~/.config/cinesim/config.yaml, /etc/cinesim/config.yaml.
# Environment variables with the CINESIM_ prefix override file settings.

version: "1.0"

# Artifact files produced by the offline pipeline. All three must come
# from the same pipeline run: record i in the movie catalog, vector i in
# the embeddings file, and row i of the index describe the same movie.
artifacts:
  dir: "./artifacts"
  movies: "movies.json"
  embeddings: "embeddings.json"
  index: "index.json"

# Poster metadata API settings. The bundled demo key is heavily rate
# limited; set your own key here, via CINESIM_POSTER_API_KEY or
# OMDB_API_KEY, or in a .env file next to the binary.
poster:
  provider: "omdb"          # omdb | tmdb
  endpoint: "http://www.omdbapi.com/"
  image_base_url: "https://image.tmdb.org/t/p/w500"
  api_key: ""
  timeout: 2s
  cache_size: 256
  enabled: true

# Output defaults for the one-shot commands.
output:
  default_format: "text"    # text | json | markdown | csv
  color_mode: "auto"        # auto | always | never
  verbose: false
  compact_mode: false

# Interactive browser defaults.
ui:
  default_count: 5
  min_count: 3
  max_count: 10
  theme: "default"          # default | high-contrast | minimal
`
}

// MinimalSampleConfig returns a compact template with only the settings
// most installs change.
func MinimalSampleConfig() string {
	return `version: "1.0"

artifacts:
  dir: "./artifacts"

poster:
  api_key: ""

output:
  default_format: "text"

ui:
  default_count: 5
`
}
