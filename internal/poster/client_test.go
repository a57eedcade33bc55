package poster

import (
	"context"
	"io"
	"testing"

	"github.com/yildizm/CineSim/internal/logger"
)

// stubProvider returns scripted outcomes per title and counts calls.
type stubProvider struct {
	results map[string]*Result
	errs    map[string]error
	calls   map[string]int
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		results: make(map[string]*Result),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (s *stubProvider) Name() string {
	return "stub"
}

func (s *stubProvider) Lookup(_ context.Context, title string) (*Result, error) {
	s.calls[title]++
	if err, ok := s.errs[title]; ok {
		return nil, err
	}
	if result, ok := s.results[title]; ok {
		return result, nil
	}
	return &Result{}, nil
}

func quietLogger() *logger.Logger {
	return logger.New("poster", nil).WithWriter(io.Discard)
}

func TestClientResolvesURL(t *testing.T) {
	stub := newStubProvider()
	stub.results["Heat"] = &Result{URL: "https://img.example/heat.jpg", Found: true}

	client, err := NewClient(stub, 8, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if got := client.URL(context.Background(), "Heat"); got != "https://img.example/heat.jpg" {
		t.Errorf("Expected poster URL, got '%s'", got)
	}
	if client.ProviderName() != "stub" {
		t.Errorf("Expected provider 'stub', got '%s'", client.ProviderName())
	}
}

func TestClientCachesConfirmedOutcomes(t *testing.T) {
	stub := newStubProvider()
	stub.results["Heat"] = &Result{URL: "https://img.example/heat.jpg", Found: true}
	stub.results["Obscure Film"] = &Result{}

	client, err := NewClient(stub, 8, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		client.URL(ctx, "Heat")
		client.URL(ctx, "Obscure Film")
	}

	if stub.calls["Heat"] != 1 {
		t.Errorf("Expected 1 provider call for found title, got %d", stub.calls["Heat"])
	}
	if stub.calls["Obscure Film"] != 1 {
		t.Errorf("Expected 1 provider call for missing title, got %d", stub.calls["Obscure Film"])
	}

	stats := client.Stats()
	if stats.Lookups != 6 {
		t.Errorf("Expected 6 lookups, got %d", stats.Lookups)
	}
	if stats.CacheHits != 4 {
		t.Errorf("Expected 4 cache hits, got %d", stats.CacheHits)
	}
}

func TestClientDoesNotCacheErrors(t *testing.T) {
	stub := newStubProvider()
	stub.errs["Flaky"] = NewError(ErrTypeConnection, "request failed", "stub")

	client, err := NewClient(stub, 8, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	ctx := context.Background()

	// Failed lookups must be retried on the next request, not served
	// from cache.
	if got := client.URL(ctx, "Flaky"); got != PlaceholderError {
		t.Errorf("Expected error placeholder, got '%s'", got)
	}
	if got := client.URL(ctx, "Flaky"); got != PlaceholderError {
		t.Errorf("Expected error placeholder, got '%s'", got)
	}
	if stub.calls["Flaky"] != 2 {
		t.Errorf("Expected 2 provider calls, got %d", stub.calls["Flaky"])
	}
}

func TestClientPlaceholders(t *testing.T) {
	stub := newStubProvider()
	stub.results["Missing"] = &Result{}
	stub.errs["Broken"] = NewError(ErrTypeTimeout, "request timed out", "stub")

	client, err := NewClient(stub, 8, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	ctx := context.Background()

	// Confirmed absence and transport failure render differently.
	if got := client.URL(ctx, "Missing"); got != PlaceholderMissing {
		t.Errorf("Expected missing placeholder, got '%s'", got)
	}
	if got := client.URL(ctx, "Broken"); got != PlaceholderError {
		t.Errorf("Expected error placeholder, got '%s'", got)
	}
	if PlaceholderMissing == PlaceholderError {
		t.Error("Placeholders must be distinguishable")
	}
}

func TestClientIsolatesFailures(t *testing.T) {
	stub := newStubProvider()
	stub.results["First"] = &Result{URL: "https://img.example/1.jpg", Found: true}
	stub.errs["Second"] = NewError(ErrTypeTimeout, "request timed out", "stub")
	stub.results["Third"] = &Result{URL: "https://img.example/3.jpg", Found: true}

	client, err := NewClient(stub, 8, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	ctx := context.Background()

	// One failing title must not affect the others in a batch.
	urls := []string{
		client.URL(ctx, "First"),
		client.URL(ctx, "Second"),
		client.URL(ctx, "Third"),
	}

	want := []string{"https://img.example/1.jpg", PlaceholderError, "https://img.example/3.jpg"}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("URL %d: expected '%s', got '%s'", i, want[i], urls[i])
		}
	}

	stats := client.Stats()
	if stats.Found != 2 || stats.Errors != 1 {
		t.Errorf("Expected 2 found and 1 error, got %+v", stats)
	}
}

func TestClientRequiresProvider(t *testing.T) {
	if _, err := NewClient(nil, 8, quietLogger()); err == nil {
		t.Fatal("Expected error for nil provider, got nil")
	}
}
