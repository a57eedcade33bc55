package recommend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yildizm/CineSim/internal/catalog"
	"github.com/yildizm/CineSim/internal/logger"
	"github.com/yildizm/CineSim/internal/poster"
	"github.com/yildizm/CineSim/internal/vectorindex"
)

// lineCatalog builds a catalog whose vectors sit on a line, so the
// similarity order from the first movie is simply the row order.
func lineCatalog(t *testing.T, titles ...string) (*catalog.Catalog, *vectorindex.Index) {
	t.Helper()

	movies := make([]catalog.Movie, len(titles))
	vectors := make([][]float32, len(titles))
	for i, title := range titles {
		movies[i] = catalog.Movie{ID: i + 1, Title: title}
		vectors[i] = []float32{float32(i), 0}
	}

	cat, err := catalog.New(movies, &catalog.Embeddings{Dimension: 2, Vectors: vectors})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	idx, err := vectorindex.New(vectorindex.MetricL2, vectors)
	if err != nil {
		t.Fatalf("vectorindex.New() error: %v", err)
	}
	return cat, idx
}

func quietLogger() *logger.Logger {
	return logger.New("recommend", nil).WithWriter(io.Discard)
}

func newTestEngine(t *testing.T, posters *poster.Client, titles ...string) *Engine {
	t.Helper()
	cat, idx := lineCatalog(t, titles...)
	engine, err := New(cat, idx, posters, quietLogger())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return engine
}

func titlesOf(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommendOrdering(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C", "D", "E")

	resp, err := engine.Recommend(context.Background(), "A", 3)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	want := []string{"B", "C", "D"}
	got := titlesOf(resp.Recommendations)
	if len(got) != len(want) {
		t.Fatalf("got %d recommendations %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recommendation %d = %q, want %q", i, got[i], want[i])
		}
	}

	for i, rec := range resp.Recommendations {
		if rec.Rank != i+1 {
			t.Errorf("recommendation %d has rank %d, want %d", i, rec.Rank, i+1)
		}
	}
	for i := 1; i < len(resp.Recommendations); i++ {
		if resp.Recommendations[i].Distance < resp.Recommendations[i-1].Distance {
			t.Errorf("distances not ascending at position %d", i)
		}
	}
}

func TestRecommendUnknownTitle(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C")

	resp, err := engine.Recommend(context.Background(), "Zardoz", 3)
	if err != nil {
		t.Fatalf("Recommend() error: %v, want nil for unknown title", err)
	}
	if len(resp.Recommendations) != 0 {
		t.Errorf("got %d recommendations for unknown title, want 0", len(resp.Recommendations))
	}
}

func TestRecommendExcludesQueryTitle(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C", "D", "E")

	for count := 1; count <= 4; count++ {
		resp, err := engine.Recommend(context.Background(), "C", count)
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		for _, rec := range resp.Recommendations {
			if rec.Title == "C" {
				t.Errorf("count=%d: query title appeared in results", count)
			}
		}
	}
}

func TestRecommendDuplicateTitles(t *testing.T) {
	// Two rows share the query title; both must be excluded even though
	// only one is the resolved query row.
	movies := []catalog.Movie{
		{ID: 1, Title: "Solaris"},
		{ID: 2, Title: "Stalker"},
		{ID: 3, Title: "Solaris"},
		{ID: 4, Title: "Mirror"},
	}
	vectors := [][]float32{
		{0, 0},
		{1, 0},
		{0.5, 0},
		{2, 0},
	}

	cat, err := catalog.New(movies, &catalog.Embeddings{Dimension: 2, Vectors: vectors})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	idx, err := vectorindex.New(vectorindex.MetricL2, vectors)
	if err != nil {
		t.Fatalf("vectorindex.New() error: %v", err)
	}
	engine, err := New(cat, idx, nil, quietLogger())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := engine.Recommend(context.Background(), "Solaris", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	for _, rec := range resp.Recommendations {
		if rec.Title == "Solaris" {
			t.Error("duplicate query title appeared in results")
		}
	}
	if len(resp.Recommendations) == 0 || resp.Recommendations[0].Title != "Stalker" {
		t.Errorf("got %v, want Stalker first", titlesOf(resp.Recommendations))
	}
}

func TestRecommendFirstOccurrenceWins(t *testing.T) {
	// "Twin" appears at rows 0 and 2 with very different vectors. The
	// query must resolve to row 0, whose neighborhood contains "Near".
	movies := []catalog.Movie{
		{ID: 1, Title: "Twin"},
		{ID: 2, Title: "Far"},
		{ID: 3, Title: "Twin"},
		{ID: 4, Title: "Near"},
	}
	vectors := [][]float32{
		{0, 0},
		{10, 0},
		{9, 0},
		{1, 0},
	}

	cat, err := catalog.New(movies, &catalog.Embeddings{Dimension: 2, Vectors: vectors})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	idx, err := vectorindex.New(vectorindex.MetricL2, vectors)
	if err != nil {
		t.Fatalf("vectorindex.New() error: %v", err)
	}
	engine, err := New(cat, idx, nil, quietLogger())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	resp, err := engine.Recommend(context.Background(), "Twin", 1)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Title != "Near" {
		t.Errorf("got %v, want [Near]", titlesOf(resp.Recommendations))
	}
}

func TestRecommendCountHandling(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C", "D", "E")
	ctx := context.Background()

	t.Run("count below one yields empty result", func(t *testing.T) {
		for _, count := range []int{0, -5} {
			resp, err := engine.Recommend(ctx, "A", count)
			if err != nil {
				t.Fatalf("Recommend() error: %v", err)
			}
			if len(resp.Recommendations) != 0 {
				t.Errorf("count=%d: got %d recommendations, want 0", count, len(resp.Recommendations))
			}
		}
	})

	t.Run("count above available returns what exists", func(t *testing.T) {
		resp, err := engine.Recommend(ctx, "A", 9)
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		if len(resp.Recommendations) != 4 {
			t.Errorf("got %d recommendations, want 4", len(resp.Recommendations))
		}
	})

	t.Run("count above the maximum is clamped", func(t *testing.T) {
		resp, err := engine.Recommend(ctx, "A", 5000)
		if err != nil {
			t.Fatalf("Recommend() error: %v", err)
		}
		if len(resp.Recommendations) > MaxCount {
			t.Errorf("got %d recommendations, want at most %d", len(resp.Recommendations), MaxCount)
		}
		if resp.RequestedCount != 5000 {
			t.Errorf("RequestedCount = %d, want the original 5000", resp.RequestedCount)
		}
	})
}

func TestRecommendPrefixProperty(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C", "D", "E", "F", "G")
	ctx := context.Background()

	small, err := engine.Recommend(ctx, "B", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	large, err := engine.Recommend(ctx, "B", 5)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	for i, rec := range small.Recommendations {
		if rec.Title != large.Recommendations[i].Title {
			t.Errorf("position %d: %q in small result, %q in large", i,
				rec.Title, large.Recommendations[i].Title)
		}
	}
}

func TestRecommendWithPosters(t *testing.T) {
	// "C" gets a server error; its poster must degrade to the error
	// placeholder without disturbing the rest of the batch.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("t")
		if title == "C" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"Response":"True","Poster":"https://img.example/%s.jpg"}`, title)
	}))
	defer server.Close()

	provider, err := poster.NewOMDB(server.URL, "secret", 0)
	if err != nil {
		t.Fatalf("NewOMDB() error: %v", err)
	}
	client, err := poster.NewClient(provider, 8, quietLogger())
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}

	engine := newTestEngine(t, client, "A", "B", "C", "D", "E")

	resp, err := engine.Recommend(context.Background(), "A", 3)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(resp.Recommendations))
	}

	wantPosters := map[string]string{
		"B": "https://img.example/B.jpg",
		"C": poster.PlaceholderError,
		"D": "https://img.example/D.jpg",
	}
	for _, rec := range resp.Recommendations {
		if rec.Poster != wantPosters[rec.Title] {
			t.Errorf("poster for %q = %q, want %q", rec.Title, rec.Poster, wantPosters[rec.Title])
		}
	}

	if resp.Metadata.PosterStats == nil {
		t.Fatal("PosterStats missing from metadata")
	}
	if resp.Metadata.PosterStats.Errors != 1 {
		t.Errorf("poster errors = %d, want 1", resp.Metadata.PosterStats.Errors)
	}
}

func TestRecommendWithoutPosterClient(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C")

	resp, err := engine.Recommend(context.Background(), "A", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.Poster != "" {
			t.Errorf("poster for %q = %q, want empty with no client", rec.Title, rec.Poster)
		}
	}
	if resp.Metadata.PosterStats != nil {
		t.Error("PosterStats present without a poster client")
	}
}

func TestRecommendMetadata(t *testing.T) {
	engine := newTestEngine(t, nil, "A", "B", "C")
	ctx := context.Background()

	first, err := engine.Recommend(ctx, "A", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	second, err := engine.Recommend(ctx, "A", 2)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	if first.Metadata.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if first.Metadata.RequestID == second.Metadata.RequestID {
		t.Error("RequestID repeated across requests")
	}
	if first.Metadata.Metric != "l2" {
		t.Errorf("Metric = %q, want l2", first.Metadata.Metric)
	}
	if first.Metadata.Elapsed < 0 {
		t.Errorf("Elapsed = %v, want non-negative", first.Metadata.Elapsed)
	}
}

// BenchmarkRecommend benchmarks a full lookup without poster calls on a
// catalog-sized dataset.
func BenchmarkRecommend(b *testing.B) {
	n := 5000
	movies := make([]catalog.Movie, n)
	vectors := make([][]float32, n)
	for i := 0; i < n; i++ {
		movies[i] = catalog.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i)}
		vectors[i] = []float32{float32(i%97) + 1, float32(i % 89), float32(i % 83)}
	}

	cat, err := catalog.New(movies, &catalog.Embeddings{Dimension: 3, Vectors: vectors})
	if err != nil {
		b.Fatal(err)
	}
	idx, err := vectorindex.New(vectorindex.MetricCosine, vectors)
	if err != nil {
		b.Fatal(err)
	}
	engine, err := New(cat, idx, nil, logger.New("recommend", nil).WithWriter(io.Discard))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Recommend(ctx, "Movie 42", 10); err != nil {
			b.Fatal(err)
		}
	}
}

func TestNewValidatesAlignment(t *testing.T) {
	cat, _ := lineCatalog(t, "A", "B", "C")

	t.Run("row count mismatch", func(t *testing.T) {
		idx, err := vectorindex.New(vectorindex.MetricL2, [][]float32{{0, 0}, {1, 0}})
		if err != nil {
			t.Fatalf("vectorindex.New() error: %v", err)
		}
		if _, err := New(cat, idx, nil, quietLogger()); err == nil {
			t.Error("New() accepted misaligned row counts")
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		idx, err := vectorindex.New(vectorindex.MetricL2, [][]float32{{0}, {1}, {2}})
		if err != nil {
			t.Fatalf("vectorindex.New() error: %v", err)
		}
		if _, err := New(cat, idx, nil, quietLogger()); err == nil {
			t.Error("New() accepted mismatched dimensions")
		}
	})

	t.Run("missing collaborators", func(t *testing.T) {
		idx, err := vectorindex.New(vectorindex.MetricL2, [][]float32{{0, 0}, {1, 0}, {2, 0}})
		if err != nil {
			t.Fatalf("vectorindex.New() error: %v", err)
		}
		if _, err := New(nil, idx, nil, quietLogger()); err == nil {
			t.Error("New() accepted nil catalog")
		}
		if _, err := New(cat, nil, nil, quietLogger()); err == nil {
			t.Error("New() accepted nil index")
		}
	})
}
