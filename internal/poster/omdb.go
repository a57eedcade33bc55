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

// defaultOMDBEndpoint is the public OMDb query URL.
const defaultOMDBEndpoint = "http://www.omdbapi.com/"

// OMDB looks up posters through the OMDb API. A title query returns a
// single record with a Poster field, or Response=False when the title is
// unknown.
type OMDB struct {
	endpoint *url.URL
	apiKey   string
	client   *http.Client
}

// NewOMDB creates an OMDb provider. An empty endpoint uses the public
// API; a zero timeout uses DefaultTimeout.
func NewOMDB(endpoint, apiKey string, timeout time.Duration) (*OMDB, error) {
	if apiKey == "" {
		return nil, NewError(ErrTypeConfiguration, "API key is required", "omdb")
	}
	if endpoint == "" {
		endpoint = defaultOMDBEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, NewErrorWithCause(ErrTypeConfiguration, "invalid endpoint", "omdb", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &OMDB{
		endpoint: u,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider name
func (p *OMDB) Name() string {
	return "omdb"
}

// omdbResponse is the subset of the OMDb record the lookup needs.
type omdbResponse struct {
	Response string `json:"Response"`
	Poster   string `json:"Poster"`
	Error    string `json:"Error"`
}

// Lookup queries OMDb by exact title.
func (p *OMDB) Lookup(ctx context.Context, title string) (*Result, error) {
	reqURL := *p.endpoint
	query := reqURL.Query()
	query.Set("apikey", p.apiKey)
	query.Set("t", title)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), http.NoBody)
	if err != nil {
		return nil, NewErrorWithCause(ErrTypeConnection, "failed to create request", "omdb", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, wrapTransportError("omdb", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{
			Type:       ErrTypeAuthentication,
			Message:    "API key rejected",
			Provider:   "omdb",
			StatusCode: resp.StatusCode,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Type:       ErrTypeHTTP,
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
			Provider:   "omdb",
			StatusCode: resp.StatusCode,
			Retryable:  resp.StatusCode >= http.StatusInternalServerError,
		}
	}

	var body omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, NewErrorWithCause(ErrTypeResponse, "failed to decode response", "omdb", err)
	}

	// Response=False means the title is unknown; a known title can still
	// carry Poster="N/A". Both are confirmed absences.
	if !strings.EqualFold(body.Response, "True") {
		return &Result{}, nil
	}
	if body.Poster == "" || body.Poster == "N/A" {
		return &Result{}, nil
	}

	return &Result{URL: body.Poster, Found: true}, nil
}
