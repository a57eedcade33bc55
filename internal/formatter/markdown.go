package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/CineSim/internal/recommend"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(response *recommend.Response) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Movie Recommendations\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, response)

	if len(response.Recommendations) == 0 {
		fmt.Fprintf(&b, "_No recommendations found for %q._\n", response.Query)
		return []byte(b.String()), nil
	}

	f.writeResultsTable(&b, response)
	f.writePosterSection(&b, response)

	b.WriteString("---\n")
	b.WriteString("*Generated by CineSim - Similarity-Driven Movie Recommendations*\n")

	return []byte(b.String()), nil
}

// writeSummaryTable writes the request summary
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, response *recommend.Response) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(b, "| Query | %s |\n", response.Query)
	fmt.Fprintf(b, "| Results | %d |\n", len(response.Recommendations))
	fmt.Fprintf(b, "| Metric | %s |\n", response.Metadata.Metric)
	fmt.Fprintf(b, "| Elapsed | %s |\n", formatElapsed(response.Metadata.Elapsed))
	fmt.Fprintf(b, "| Request ID | %s |\n\n", response.Metadata.RequestID)
}

// writeResultsTable writes the ranked recommendation table
func (f *markdownFormatter) writeResultsTable(b *strings.Builder, response *recommend.Response) {
	b.WriteString("## Results\n\n")
	b.WriteString("| # | Title | Year | Genres | Distance | Match |\n")
	b.WriteString("|---|-------|------|--------|----------|-------|\n")

	for _, rec := range response.Recommendations {
		year := ""
		if rec.Year != 0 {
			year = fmt.Sprintf("%d", rec.Year)
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %.0f%% |\n",
			rec.Rank,
			rec.Title,
			year,
			strings.Join(rec.Genres, ", "),
			formatDistance(rec.Distance),
			matchScore(rec.Distance, response.Metadata.Metric)*100)
	}
	b.WriteString("\n")
}

// writePosterSection writes poster links when any were resolved
func (f *markdownFormatter) writePosterSection(b *strings.Builder, response *recommend.Response) {
	hasPosters := false
	for _, rec := range response.Recommendations {
		if rec.Poster != "" {
			hasPosters = true
			break
		}
	}
	if !hasPosters {
		return
	}

	b.WriteString("## Posters\n\n")
	for _, rec := range response.Recommendations {
		if rec.Poster == "" {
			continue
		}
		if note := posterNote(rec.Poster); note != "" {
			fmt.Fprintf(b, "- %s: _%s_\n", rec.Title, note)
			continue
		}
		fmt.Fprintf(b, "- [%s](%s)\n", rec.Title, rec.Poster)
	}
	b.WriteString("\n")
}
