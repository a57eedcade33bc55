package formatter

import (
	"encoding/json"

	"github.com/yildizm/CineSim/internal/poster"
	"github.com/yildizm/CineSim/internal/recommend"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(response *recommend.Response) ([]byte, error) {
	output := &jsonOutput{
		Query:           response.Query,
		RequestedCount:  response.RequestedCount,
		Recommendations: response.Recommendations,
		Metadata: jsonMetadata{
			RequestID:   response.Metadata.RequestID,
			Metric:      response.Metadata.Metric,
			Elapsed:     response.Metadata.Elapsed.String(),
			PosterStats: response.Metadata.PosterStats,
		},
	}

	// An unknown title produces no recommendations; emit an empty array
	// rather than null so consumers can iterate unconditionally.
	if output.Recommendations == nil {
		output.Recommendations = []recommend.Recommendation{}
	}

	return json.MarshalIndent(output, "", "  ")
}

// jsonOutput is the machine-readable response document.
type jsonOutput struct {
	Query           string                     `json:"query"`
	RequestedCount  int                        `json:"requested_count"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Metadata        jsonMetadata               `json:"metadata"`
}

// jsonMetadata mirrors recommend.Metadata with a human-readable elapsed
// duration.
type jsonMetadata struct {
	RequestID   string        `json:"request_id"`
	Metric      string        `json:"metric"`
	Elapsed     string        `json:"elapsed"`
	PosterStats *poster.Stats `json:"poster_stats,omitempty"`
}
