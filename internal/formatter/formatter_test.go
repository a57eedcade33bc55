package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/CineSim/internal/poster"
)

func TestJSONFormat(t *testing.T) {
	f := NewJSON()

	output, err := f.Format(sampleResponse())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var doc struct {
		Query           string `json:"query"`
		RequestedCount  int    `json:"requested_count"`
		Recommendations []struct {
			Rank   int    `json:"rank"`
			Title  string `json:"title"`
			Poster string `json:"poster"`
		} `json:"recommendations"`
		Metadata struct {
			RequestID string `json:"request_id"`
			Metric    string `json:"metric"`
			Elapsed   string `json:"elapsed"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(output, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Query != "Blade Runner" {
		t.Errorf("query = %q, want Blade Runner", doc.Query)
	}
	if len(doc.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(doc.Recommendations))
	}
	if doc.Recommendations[0].Rank != 1 || doc.Recommendations[0].Title != "Alien" {
		t.Errorf("first recommendation = %+v, want rank 1 Alien", doc.Recommendations[0])
	}
	if doc.Metadata.Metric != "cosine" {
		t.Errorf("metric = %q, want cosine", doc.Metadata.Metric)
	}
	if doc.Metadata.Elapsed != "12ms" {
		t.Errorf("elapsed = %q, want 12ms", doc.Metadata.Elapsed)
	}
}

func TestJSONFormatEmptyResult(t *testing.T) {
	f := NewJSON()

	output, err := f.Format(emptyResponse())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	// Consumers iterate the array unconditionally, so it must be [] and
	// never null.
	if strings.Contains(string(output), `"recommendations": null`) {
		t.Errorf("empty result serialized as null:\n%s", output)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(output, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	recs, ok := doc["recommendations"].([]interface{})
	if !ok {
		t.Fatalf("recommendations is %T, want array", doc["recommendations"])
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0", len(recs))
	}
}

func TestCSVFormat(t *testing.T) {
	f := NewCSV()

	output, err := f.Format(sampleResponse())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(output))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d CSV rows, want header + 3", len(records))
	}
	if records[0][0] != "Rank" || records[0][2] != "Title" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[1][2] != "Alien" {
		t.Errorf("first record title = %q, want Alien", records[1][2])
	}
	if records[1][4] != "Horror|Sci-Fi" {
		t.Errorf("genres = %q, want pipe-joined", records[1][4])
	}
	if records[2][6] != poster.PlaceholderMissing {
		t.Errorf("missing poster cell = %q, want placeholder", records[2][6])
	}
}

func TestMarkdownFormat(t *testing.T) {
	f := NewMarkdown()

	output, err := f.Format(sampleResponse())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	got := string(output)

	for _, want := range []string{
		"# Movie Recommendations",
		"| Query | Blade Runner |",
		"| 1 | Alien | 1979 |",
		"[Alien](https://img.example/alien.jpg)",
		"The Thing: _no poster available_",
		"Moon: _poster lookup failed_",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownFormatEmptyResult(t *testing.T) {
	f := NewMarkdown()

	output, err := f.Format(emptyResponse())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(string(output), `No recommendations found for "Zardoz"`) {
		t.Errorf("output missing empty-result notice:\n%s", output)
	}
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		metric   string
		want     float64
	}{
		{name: "cosine identical", distance: 0, metric: "cosine", want: 1},
		{name: "cosine orthogonal", distance: 1, metric: "cosine", want: 0},
		{name: "cosine opposite clamps at zero", distance: 2, metric: "cosine", want: 0},
		{name: "l2 zero distance", distance: 0, metric: "l2", want: 1},
		{name: "l2 unit distance", distance: 1, metric: "l2", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchScore(tt.distance, tt.metric)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("matchScore(%v, %s) = %v, want %v", tt.distance, tt.metric, got, tt.want)
			}
		})
	}
}

func TestPosterNote(t *testing.T) {
	if got := posterNote(poster.PlaceholderMissing); got != "no poster available" {
		t.Errorf("posterNote(missing) = %q", got)
	}
	if got := posterNote(poster.PlaceholderError); got != "poster lookup failed" {
		t.Errorf("posterNote(error) = %q", got)
	}
	if got := posterNote("https://img.example/p.jpg"); got != "" {
		t.Errorf("posterNote(real URL) = %q, want empty", got)
	}
}
