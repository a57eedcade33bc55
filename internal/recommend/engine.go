// Package recommend implements the similarity-driven recommendation flow:
// resolve a query title to its embedding row, ask the index for the
// nearest neighbors, map the neighbor rows back to movie records in
// similarity order, and attach poster URLs.
package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yildizm/CineSim/internal/catalog"
	"github.com/yildizm/CineSim/internal/logger"
	"github.com/yildizm/CineSim/internal/poster"
	"github.com/yildizm/CineSim/internal/vectorindex"
)

// MaxCount caps how many recommendations one request may ask for. Larger
// requests are clamped, not rejected.
const MaxCount = 10

// Engine answers recommendation queries against a loaded catalog and its
// prebuilt index. It holds no mutable state; every call is an independent
// pure query.
type Engine struct {
	catalog *catalog.Catalog
	index   *vectorindex.Index
	posters *poster.Client
	logger  *logger.Logger
}

// New wires an engine from its collaborators. The poster client may be
// nil, which disables poster resolution. The catalog and index must be
// row-aligned artifacts from the same pipeline run.
func New(cat *catalog.Catalog, idx *vectorindex.Index, posters *poster.Client, log *logger.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if idx == nil {
		return nil, fmt.Errorf("index is required")
	}
	if cat.Len() != idx.Len() {
		return nil, fmt.Errorf("row misalignment: %d movies but %d indexed vectors",
			cat.Len(), idx.Len())
	}
	if cat.Dimension() != idx.Dimension() {
		return nil, fmt.Errorf("dimension mismatch: embeddings have %d, index has %d",
			cat.Dimension(), idx.Dimension())
	}
	if log == nil {
		log = logger.New("recommend", nil)
	}

	return &Engine{
		catalog: cat,
		index:   idx,
		posters: posters,
		logger:  log,
	}, nil
}

// Recommend returns up to count movies similar to the query title, closest
// first. Unknown titles yield an empty response with a nil error; the
// query title itself never appears in the results.
func (e *Engine) Recommend(ctx context.Context, title string, count int) (*Response, error) {
	start := time.Now()

	resp := &Response{
		Query:          title,
		RequestedCount: count,
		Metadata: Metadata{
			RequestID: uuid.NewString(),
			Metric:    string(e.index.Metric()),
		},
	}

	if count < 1 {
		resp.Metadata.Elapsed = time.Since(start)
		return resp, nil
	}
	if count > MaxCount {
		count = MaxCount
	}

	row, ok := e.catalog.ResolveTitle(title)
	if !ok {
		e.logger.InfoWithFields("unknown title",
			[]logger.Field{logger.F("title", title)})
		resp.Metadata.Elapsed = time.Since(start)
		return resp, nil
	}

	vector, ok := e.catalog.VectorAt(row)
	if !ok {
		return nil, fmt.Errorf("no embedding vector at row %d", row)
	}

	// One extra neighbor absorbs the query row itself, which the index
	// returns at distance 0.
	neighbors, err := e.index.Search(vector, count+1)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	recs := make([]Recommendation, 0, count)
	for _, n := range neighbors {
		movie, ok := e.catalog.MovieAt(n.Row)
		if !ok {
			continue
		}
		// Exclude by title rather than by ordinal position, so the
		// query survives duplicate-title rows and distance ties
		// reordering the self hit away from position 0.
		if movie.Title == title {
			continue
		}

		recs = append(recs, Recommendation{
			Rank:     len(recs) + 1,
			ID:       movie.ID,
			Title:    movie.Title,
			Year:     movie.Year,
			Genres:   movie.Genres,
			Distance: n.Distance,
		})
		if len(recs) == count {
			break
		}
	}

	if e.posters != nil {
		for i := range recs {
			recs[i].Poster = e.posters.URL(ctx, recs[i].Title)
		}
		stats := e.posters.Stats()
		resp.Metadata.PosterStats = &stats
	}

	resp.Recommendations = recs
	resp.Metadata.Elapsed = time.Since(start)

	e.logger.InfoWithFields("recommendation complete", []logger.Field{
		logger.F("title", title),
		logger.Count(len(recs)),
		logger.Duration(resp.Metadata.Elapsed),
	})

	return resp, nil
}

// Catalog exposes the engine's catalog for callers that need title lists.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Metric returns the distance metric of the underlying index.
func (e *Engine) Metric() string {
	return string(e.index.Metric())
}

// PosterStats returns poster lookup counters, or zero stats when posters
// are disabled.
func (e *Engine) PosterStats() poster.Stats {
	if e.posters == nil {
		return poster.Stats{}
	}
	return e.posters.Stats()
}
