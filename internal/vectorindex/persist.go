package vectorindex

import (
	"encoding/json"
	"fmt"
	"os"
)

// indexFile is the on-disk shape of the index artifact. The vectors are
// stored row-aligned with the movie records and embeddings artifacts.
type indexFile struct {
	Metric    Metric      `json:"metric"`
	Dimension int         `json:"dimension"`
	Vectors   [][]float32 `json:"vectors"`
}

// Load reads a prebuilt index artifact from a JSON file.
func Load(path string) (*Index, error) {
	// #nosec G304 - artifact paths come from validated configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc indexFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	idx, err := New(doc.Metric, doc.Vectors)
	if err != nil {
		return nil, fmt.Errorf("index validation failed: %w", err)
	}

	if doc.Dimension != 0 && doc.Dimension != idx.Dimension() {
		return nil, fmt.Errorf("declared dimension %d does not match vectors of dimension %d",
			doc.Dimension, idx.Dimension())
	}

	return idx, nil
}

// Save serializes the index to a JSON artifact. The CLI never writes
// artifacts; this exists for the offline pipeline and tests.
func (idx *Index) Save(path string) error {
	doc := indexFile{
		Metric:    idx.metric,
		Dimension: idx.dimension,
		Vectors:   idx.vectors,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
