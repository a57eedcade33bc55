// Package catalog provides read-only access to the movie records and
// embedding vectors produced by the offline pipeline. Records and vectors
// are row-aligned: record i corresponds to embedding vector i. A Catalog is
// immutable after construction, so concurrent readers never need locking.
package catalog

import (
	"fmt"
	"sort"
)

// Movie is a single catalog record. The ID is unique across the catalog;
// titles are unique in practice but duplicates are tolerated (title lookup
// resolves to the first occurrence by row order).
type Movie struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Year   int      `json:"year,omitempty"`
	Genres []string `json:"genres,omitempty"`
}

// Embeddings is the dense vector matrix loaded from the embeddings
// artifact, one fixed-length vector per catalog row.
type Embeddings struct {
	Dimension int         `json:"dimension"`
	Vectors   [][]float32 `json:"vectors"`
}

// Catalog bundles the row-aligned movie records and embedding vectors.
type Catalog struct {
	movies       []Movie
	vectors      [][]float32
	dimension    int
	titleToRow   map[string]int
	sortedTitles []string
}

// New builds a Catalog from records and embeddings, validating row
// alignment, vector dimensions, and record invariants.
func New(movies []Movie, emb *Embeddings) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("catalog contains no movies")
	}
	if emb == nil {
		return nil, fmt.Errorf("embeddings must not be nil")
	}
	if len(movies) != len(emb.Vectors) {
		return nil, fmt.Errorf("row misalignment: %d movies but %d embedding vectors",
			len(movies), len(emb.Vectors))
	}
	if emb.Dimension < 1 {
		return nil, fmt.Errorf("embedding dimension must be positive, got %d", emb.Dimension)
	}

	seenIDs := make(map[int]int, len(movies))
	titleToRow := make(map[string]int, len(movies))
	for row, m := range movies {
		if m.Title == "" {
			return nil, fmt.Errorf("movie at row %d has an empty title", row)
		}
		if prev, dup := seenIDs[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %d at rows %d and %d", m.ID, prev, row)
		}
		seenIDs[m.ID] = row

		// First occurrence wins for duplicate titles.
		if _, exists := titleToRow[m.Title]; !exists {
			titleToRow[m.Title] = row
		}
	}

	for row, vec := range emb.Vectors {
		if len(vec) != emb.Dimension {
			return nil, fmt.Errorf("embedding vector at row %d has dimension %d, want %d",
				row, len(vec), emb.Dimension)
		}
	}

	sorted := make([]string, len(movies))
	for i, m := range movies {
		sorted[i] = m.Title
	}
	sort.Strings(sorted)

	return &Catalog{
		movies:       movies,
		vectors:      emb.Vectors,
		dimension:    emb.Dimension,
		titleToRow:   titleToRow,
		sortedTitles: sorted,
	}, nil
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Dimension returns the embedding vector length.
func (c *Catalog) Dimension() int {
	return c.dimension
}

// MovieAt returns the record at the given row.
func (c *Catalog) MovieAt(row int) (Movie, bool) {
	if row < 0 || row >= len(c.movies) {
		return Movie{}, false
	}
	return c.movies[row], true
}

// VectorAt returns the embedding vector at the given row.
func (c *Catalog) VectorAt(row int) ([]float32, bool) {
	if row < 0 || row >= len(c.vectors) {
		return nil, false
	}
	return c.vectors[row], true
}

// ResolveTitle maps a title to its row by exact match, first occurrence
// wins when duplicates exist.
func (c *Catalog) ResolveTitle(title string) (int, bool) {
	row, ok := c.titleToRow[title]
	return row, ok
}

// HasTitle reports whether the title exists in the catalog.
func (c *Catalog) HasTitle(title string) bool {
	_, ok := c.titleToRow[title]
	return ok
}

// Titles returns all titles in row order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = m.Title
	}
	return titles
}

// SortedTitles returns all titles in lexicographic order, for selectors.
func (c *Catalog) SortedTitles() []string {
	out := make([]string, len(c.sortedTitles))
	copy(out, c.sortedTitles)
	return out
}
