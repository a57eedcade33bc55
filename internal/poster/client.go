package poster

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yildizm/CineSim/internal/logger"
)

const (
	// PlaceholderError stands in for a poster when the lookup itself
	// failed, so the user can tell a broken service from a missing image.
	PlaceholderError = "https://via.placeholder.com/500x750?text=Error"

	// PlaceholderMissing stands in for a poster the service confirmed it
	// does not have.
	PlaceholderMissing = "https://via.placeholder.com/500x750?text=No+Poster"
)

// defaultCacheSize bounds the title cache when the caller passes zero.
const defaultCacheSize = 256

// Stats counts lookup outcomes since the client was created.
type Stats struct {
	Lookups   int64 `json:"lookups"`
	CacheHits int64 `json:"cache_hits"`
	Found     int64 `json:"found"`
	Missing   int64 `json:"missing"`
	Errors    int64 `json:"errors"`
}

// Client wraps a Provider with an LRU cache and placeholder substitution.
// Only confirmed outcomes are cached; transport failures are retried on
// the next request for the same title.
type Client struct {
	provider Provider
	cache    *lru.Cache[string, string]
	logger   *logger.Logger

	lookups   atomic.Int64
	cacheHits atomic.Int64
	found     atomic.Int64
	missing   atomic.Int64
	errors    atomic.Int64
}

// NewClient creates a caching poster client. A cacheSize of zero or less
// uses the default; a nil log gets a quiet component logger.
func NewClient(provider Provider, cacheSize int, log *logger.Logger) (*Client, error) {
	if provider == nil {
		return nil, NewError(ErrTypeConfiguration, "provider is required", "")
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, NewErrorWithCause(ErrTypeConfiguration, "failed to create cache", provider.Name(), err)
	}

	if log == nil {
		log = logger.New("poster", nil)
	}

	return &Client{
		provider: provider,
		cache:    cache,
		logger:   log,
	}, nil
}

// URL resolves the poster URL for a title, substituting a placeholder on
// failure or confirmed absence. It never returns an error, so one bad
// lookup cannot abort a recommendation batch.
func (c *Client) URL(ctx context.Context, title string) string {
	c.lookups.Add(1)

	if cached, ok := c.cache.Get(title); ok {
		c.cacheHits.Add(1)
		return cached
	}

	result, err := c.provider.Lookup(ctx, title)
	if err != nil {
		c.errors.Add(1)
		c.logger.WarnWithFields("poster lookup failed",
			[]logger.Field{logger.F("title", title), logger.Err(err)})
		return PlaceholderError
	}

	if !result.Found {
		c.missing.Add(1)
		c.cache.Add(title, PlaceholderMissing)
		c.logger.WarnWithFields("no poster available",
			[]logger.Field{logger.F("title", title)})
		return PlaceholderMissing
	}

	c.found.Add(1)
	c.cache.Add(title, result.URL)
	return result.URL
}

// ProviderName returns the name of the wrapped provider.
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// Stats returns a snapshot of lookup counters.
func (c *Client) Stats() Stats {
	return Stats{
		Lookups:   c.lookups.Load(),
		CacheHits: c.cacheHits.Load(),
		Found:     c.found.Load(),
		Missing:   c.missing.Load(),
		Errors:    c.errors.Load(),
	}
}
