// Package poster resolves poster image URLs for movie titles through an
// external metadata service. A lookup distinguishes confirmed absence
// (the service answered and has no poster for the title) from transport
// failure (the service never answered), because the two render with
// different placeholder images.
package poster

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single poster lookup so one slow title cannot
// stall an interactive recommendation batch.
const DefaultTimeout = 2 * time.Second

// Result is the outcome of a completed lookup. Found reports whether the
// service has a poster; URL is empty when it does not.
type Result struct {
	URL   string
	Found bool
}

// Provider performs poster lookups against one metadata service.
type Provider interface {
	// Name returns the provider identifier used in logs and errors.
	Name() string

	// Lookup queries the service for a title's poster. A nil error with
	// Found=false is a confirmed absence; an error means the service
	// could not give an answer.
	Lookup(ctx context.Context, title string) (*Result, error)
}

// Options configures provider construction.
type Options struct {
	// Provider selects the metadata service: "omdb" or "tmdb".
	Provider string

	// Endpoint overrides the service query URL. Empty uses the
	// provider's default.
	Endpoint string

	// ImageBaseURL prefixes relative poster paths (tmdb only).
	ImageBaseURL string

	// APIKey authenticates requests.
	APIKey string

	// Timeout bounds each lookup. Zero uses DefaultTimeout.
	Timeout time.Duration
}

// NewProvider constructs the provider named in opts.
func NewProvider(opts Options) (Provider, error) {
	switch opts.Provider {
	case "", "omdb":
		return NewOMDB(opts.Endpoint, opts.APIKey, opts.Timeout)
	case "tmdb":
		return NewTMDB(opts.Endpoint, opts.ImageBaseURL, opts.APIKey, opts.Timeout)
	default:
		return nil, NewError(ErrTypeConfiguration,
			fmt.Sprintf("unsupported provider %q", opts.Provider), opts.Provider)
	}
}
