package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/CineSim/internal/config"
	"github.com/yildizm/CineSim/internal/recommend"
)

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "json format", format: "json", wantErr: false},
		{name: "markdown format", format: "markdown", wantErr: false},
		{name: "markdown alias", format: "md", wantErr: false},
		{name: "csv format", format: "csv", wantErr: false},
		{name: "text format", format: "text", wantErr: false},
		{name: "terminal alias", format: "terminal", wantErr: false},
		{name: "empty defaults to terminal", format: "", wantErr: false},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := getFormatter(tt.format, false)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for format %q, got none", tt.format)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error for format %q, got %v", tt.format, err)
			}
			if f == nil {
				t.Errorf("Expected formatter for format %q, got nil", tt.format)
			}
		})
	}
}

func TestColorEnabled(t *testing.T) {
	oldNoColor := noColor
	defer func() { noColor = oldNoColor }()

	tests := []struct {
		name       string
		flag       bool
		colorMode  string
		noColorEnv string
		expected   bool
	}{
		{name: "enabled by default", flag: false, colorMode: "auto", expected: true},
		{name: "flag disables", flag: true, colorMode: "auto", expected: false},
		{name: "config never disables", flag: false, colorMode: "never", expected: false},
		{name: "NO_COLOR disables", flag: false, colorMode: "always", noColorEnv: "1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor = tt.flag
			if tt.noColorEnv != "" {
				t.Setenv("NO_COLOR", tt.noColorEnv)
			} else {
				t.Setenv("NO_COLOR", "")
			}

			cfg := config.DefaultConfig()
			cfg.Output.ColorMode = tt.colorMode

			if got := colorEnabled(cfg); got != tt.expected {
				t.Errorf("Expected colorEnabled %v, got %v", tt.expected, got)
			}
		})
	}
}

func testResponse() *recommend.Response {
	return &recommend.Response{
		Query:          "Solaris",
		RequestedCount: 2,
		Recommendations: []recommend.Recommendation{
			{Rank: 1, ID: 7, Title: "Stalker", Year: 1979, Genres: []string{"Sci-Fi"}, Distance: 0.1},
			{Rank: 2, ID: 3, Title: "Mirror", Year: 1975, Distance: 0.3},
		},
		Metadata: recommend.Metadata{
			RequestID: "test-response",
			Metric:    "cosine",
			Elapsed:   5 * time.Millisecond,
		},
	}
}

func TestWriteResponseToFile(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "out.json")

	if err := writeResponse(testResponse(), "json", false, outputPath); err != nil {
		t.Fatalf("Failed to write response: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var decoded recommend.Response
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Query != "Solaris" {
		t.Errorf("Expected query Solaris, got %s", decoded.Query)
	}
	if len(decoded.Recommendations) != 2 {
		t.Errorf("Expected 2 recommendations, got %d", len(decoded.Recommendations))
	}
}

func TestWriteResponseUnknownFormat(t *testing.T) {
	err := writeResponse(testResponse(), "xml", false, "")
	if err == nil {
		t.Fatal("Expected error for unknown format, got none")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Expected unknown format error, got %v", err)
	}
}

func TestWriteOutputBytesToFile(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "report.txt")

	if err := writeOutputBytesToFile([]byte("hello\n"), outputPath); err != nil {
		t.Fatalf("Failed to write output: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("Expected file content %q, got %q", "hello\n", string(data))
	}
}

func TestWriteOutputBytesToFileEmptyPath(t *testing.T) {
	if err := writeOutputBytesToFile([]byte("x"), ""); err == nil {
		t.Error("Expected error for empty file path, got none")
	}
}
