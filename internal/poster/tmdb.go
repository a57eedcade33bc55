package poster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// defaultTMDBEndpoint is the TMDB movie search URL.
	defaultTMDBEndpoint = "https://api.themoviedb.org/3/search/movie"

	// defaultTMDBImageBase prefixes the relative poster paths TMDB
	// returns. w500 matches the rendered poster width.
	defaultTMDBImageBase = "https://image.tmdb.org/t/p/w500"
)

// TMDB looks up posters through the TMDB search API. A search returns a
// ranked result list; the lookup takes the first result's poster path and
// joins it onto the image base URL.
type TMDB struct {
	endpoint  *url.URL
	imageBase string
	apiKey    string
	client    *http.Client
}

// NewTMDB creates a TMDB provider. Empty endpoint and image base use the
// public defaults; a zero timeout uses DefaultTimeout.
func NewTMDB(endpoint, imageBase, apiKey string, timeout time.Duration) (*TMDB, error) {
	if apiKey == "" {
		return nil, NewError(ErrTypeConfiguration, "API key is required", "tmdb")
	}
	if endpoint == "" {
		endpoint = defaultTMDBEndpoint
	}
	if imageBase == "" {
		imageBase = defaultTMDBImageBase
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, NewErrorWithCause(ErrTypeConfiguration, "invalid endpoint", "tmdb", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &TMDB{
		endpoint:  u,
		imageBase: strings.TrimRight(imageBase, "/"),
		apiKey:    apiKey,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider name
func (p *TMDB) Name() string {
	return "tmdb"
}

// tmdbResponse is the subset of the TMDB search response the lookup needs.
type tmdbResponse struct {
	Results []struct {
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// Lookup searches TMDB and resolves the first result's poster.
func (p *TMDB) Lookup(ctx context.Context, title string) (*Result, error) {
	reqURL := *p.endpoint
	query := reqURL.Query()
	query.Set("api_key", p.apiKey)
	query.Set("query", title)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), http.NoBody)
	if err != nil {
		return nil, NewErrorWithCause(ErrTypeConnection, "failed to create request", "tmdb", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, wrapTransportError("tmdb", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{
			Type:       ErrTypeAuthentication,
			Message:    "API key rejected",
			Provider:   "tmdb",
			StatusCode: resp.StatusCode,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Type:       ErrTypeHTTP,
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
			Provider:   "tmdb",
			StatusCode: resp.StatusCode,
			Retryable:  resp.StatusCode >= http.StatusInternalServerError,
		}
	}

	var body tmdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, NewErrorWithCause(ErrTypeResponse, "failed to decode response", "tmdb", err)
	}

	if len(body.Results) == 0 || body.Results[0].PosterPath == "" {
		return &Result{}, nil
	}

	path := body.Results[0].PosterPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Result{URL: p.imageBase + path, Found: true}, nil
}
