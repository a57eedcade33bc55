// Package vectorindex implements the prebuilt similarity index over the
// embedding matrix. The index is an exact flat scan: every query compares
// against all indexed vectors, which is plenty for catalogs in the tens of
// thousands of rows. Results are ordered by increasing distance with ties
// broken by row, so queries are fully deterministic. When the query vector
// is itself a member of the indexed set, it appears in the results at
// distance 0.
package vectorindex

import (
	"errors"
	"fmt"
	"sort"
)

// Metric selects the distance function used by the index.
type Metric string

const (
	// MetricL2 orders neighbors by euclidean distance.
	MetricL2 Metric = "l2"
	// MetricCosine orders neighbors by cosine distance (1 - similarity).
	MetricCosine Metric = "cosine"
)

var (
	// ErrDimensionMismatch is returned when a query vector's length does
	// not match the indexed dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrInvalidK is returned when a search requests fewer than one
	// neighbor.
	ErrInvalidK = errors.New("k must be greater than 0")
	// ErrUnknownMetric is returned for metrics other than l2 and cosine.
	ErrUnknownMetric = errors.New("unknown metric")
)

// Neighbor is one search hit: the row position of the indexed vector and
// its distance from the query.
type Neighbor struct {
	Row      int     `json:"row"`
	Distance float32 `json:"distance"`
}

// Index is an immutable flat similarity index.
type Index struct {
	metric    Metric
	dimension int
	vectors   [][]float32
}

// New builds an index over the given vectors. The vectors are retained,
// not copied; callers must not mutate them afterwards.
func New(metric Metric, vectors [][]float32) (*Index, error) {
	if metric != MetricL2 && metric != MetricCosine {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("index contains no vectors")
	}

	dimension := len(vectors[0])
	if dimension == 0 {
		return nil, fmt.Errorf("index vectors must not be empty")
	}
	for row, vec := range vectors {
		if len(vec) != dimension {
			return nil, fmt.Errorf("%w: vector at row %d has dimension %d, want %d",
				ErrDimensionMismatch, row, len(vec), dimension)
		}
	}

	return &Index{
		metric:    metric,
		dimension: dimension,
		vectors:   vectors,
	}, nil
}

// Len returns the number of indexed vectors.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// Dimension returns the indexed vector length.
func (idx *Index) Dimension() int {
	return idx.dimension
}

// Metric returns the distance function the index was built with.
func (idx *Index) Metric() Metric {
	return idx.metric
}

// VectorAt returns the stored vector for the given row.
func (idx *Index) VectorAt(row int) ([]float32, bool) {
	if row < 0 || row >= len(idx.vectors) {
		return nil, false
	}
	return idx.vectors[row], true
}

// Search returns the k nearest neighbors of the query vector, ordered by
// increasing distance, ties broken by ascending row. k is capped at the
// index size.
func (idx *Index) Search(vector []float32, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if len(vector) != idx.dimension {
		return nil, fmt.Errorf("%w: query has dimension %d, index has %d",
			ErrDimensionMismatch, len(vector), idx.dimension)
	}

	neighbors := make([]Neighbor, len(idx.vectors))
	for row, vec := range idx.vectors {
		neighbors[row] = Neighbor{
			Row:      row,
			Distance: idx.distance(vector, vec),
		}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Row < neighbors[j].Row
	})

	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

// distance computes the configured metric between two vectors of equal
// dimension.
func (idx *Index) distance(a, b []float32) float32 {
	switch idx.metric {
	case MetricCosine:
		return 1.0 - CosineSimilarity(a, b)
	default:
		return EuclideanDistance(a, b)
	}
}
