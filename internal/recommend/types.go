package recommend

import (
	"time"

	"github.com/yildizm/CineSim/internal/poster"
)

// Recommendation is one ranked result. Rank starts at 1 for the closest
// neighbor. Poster is empty when poster resolution is disabled.
type Recommendation struct {
	Rank     int      `json:"rank"`
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year,omitempty"`
	Genres   []string `json:"genres,omitempty"`
	Distance float32  `json:"distance"`
	Poster   string   `json:"poster,omitempty"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	RequestID   string        `json:"request_id"`
	Metric      string        `json:"metric"`
	Elapsed     time.Duration `json:"elapsed"`
	PosterStats *poster.Stats `json:"poster_stats,omitempty"`
}

// Response is a complete answer to one recommendation request. An unknown
// query title yields an empty Recommendations slice, not an error.
type Response struct {
	Query           string           `json:"query"`
	RequestedCount  int              `json:"requested_count"`
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        Metadata         `json:"metadata"`
}
