package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads the movie records and embeddings artifacts and assembles a
// validated Catalog. The movies file may be JSON or CSV; the format is
// detected from the file extension.
func Load(moviesPath, embeddingsPath string) (*Catalog, error) {
	movies, err := LoadMovies(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie records: %w", err)
	}

	emb, err := LoadEmbeddings(embeddingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load embeddings: %w", err)
	}

	cat, err := New(movies, emb)
	if err != nil {
		return nil, fmt.Errorf("artifact validation failed: %w", err)
	}

	return cat, nil
}

// LoadMovies reads movie records from a JSON or CSV file.
func LoadMovies(path string) ([]Movie, error) {
	// #nosec G304 - artifact paths come from validated configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseMoviesCSV(data)
	case ".json":
		return parseMoviesJSON(data)
	default:
		// Sniff: JSON arrays start with '['
		if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
			return parseMoviesJSON(data)
		}
		return parseMoviesCSV(data)
	}
}

// parseMoviesJSON decodes a JSON array of movie records.
func parseMoviesJSON(data []byte) ([]Movie, error) {
	var movies []Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return movies, nil
}

// parseMoviesCSV decodes movie records from CSV with a header row.
// Recognized columns: id (or movieId), title, year, genres
// (pipe-separated). Column order is free; unknown columns are ignored.
func parseMoviesCSV(data []byte) ([]Movie, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have a header row and at least one record")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	idCol, ok := cols["id"]
	if !ok {
		idCol, ok = cols["movieid"]
	}
	if !ok {
		return nil, fmt.Errorf("CSV header must contain an id or movieId column")
	}
	titleCol, ok := cols["title"]
	if !ok {
		return nil, fmt.Errorf("CSV header must contain a title column")
	}
	yearCol, hasYear := cols["year"]
	genresCol, hasGenres := cols["genres"]

	movies := make([]Movie, 0, len(records)-1)
	for line, rec := range records[1:] {
		if idCol >= len(rec) || titleCol >= len(rec) {
			return nil, fmt.Errorf("CSV record on line %d has too few fields", line+2)
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[idCol]))
		if err != nil {
			return nil, fmt.Errorf("invalid id on line %d: %w", line+2, err)
		}

		m := Movie{
			ID:    id,
			Title: strings.TrimSpace(rec[titleCol]),
		}

		if hasYear && yearCol < len(rec) && strings.TrimSpace(rec[yearCol]) != "" {
			year, err := strconv.Atoi(strings.TrimSpace(rec[yearCol]))
			if err != nil {
				return nil, fmt.Errorf("invalid year on line %d: %w", line+2, err)
			}
			m.Year = year
		}

		if hasGenres && genresCol < len(rec) && strings.TrimSpace(rec[genresCol]) != "" {
			for _, g := range strings.Split(rec[genresCol], "|") {
				if g = strings.TrimSpace(g); g != "" {
					m.Genres = append(m.Genres, g)
				}
			}
		}

		movies = append(movies, m)
	}

	return movies, nil
}

// LoadEmbeddings reads the embedding matrix artifact.
func LoadEmbeddings(path string) (*Embeddings, error) {
	// #nosec G304 - artifact paths come from validated configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var emb Embeddings
	if err := json.Unmarshal(data, &emb); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	// Pipelines that omit the dimension field get it inferred from the
	// first vector.
	if emb.Dimension == 0 && len(emb.Vectors) > 0 {
		emb.Dimension = len(emb.Vectors[0])
	}

	return &emb, nil
}

// WriteMovies serializes movie records to a JSON artifact. The CLI never
// writes artifacts; this exists for the offline pipeline and tests.
func WriteMovies(path string, movies []Movie) error {
	data, err := json.MarshalIndent(movies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal movies: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// WriteEmbeddings serializes the embedding matrix to a JSON artifact.
func WriteEmbeddings(path string, emb *Embeddings) error {
	data, err := json.MarshalIndent(emb, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal embeddings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
