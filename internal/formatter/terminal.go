package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/CineSim/internal/emoji"
	"github.com/yildizm/CineSim/internal/recommend"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(response *recommend.Response) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeQuerySummary(&b, response)

	if len(response.Recommendations) == 0 {
		fmt.Fprintf(&b, "%s No recommendations found for %q.\n",
			emoji.GetEmoji("warning"), response.Query)
		return []byte(b.String()), nil
	}

	f.writeRecommendations(&b, response)

	return []byte(b.String()), nil
}

// writeHeader writes the box-drawn report title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Movie Recommendations"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeQuerySummary writes the request summary as a tree view
func (f *terminalFormatter) writeQuerySummary(b *strings.Builder, response *recommend.Response) {
	b.WriteString(emoji.GetEmoji("search") + " Query\n")

	items := []termfmt.TreeItem{
		{Label: "Title", Value: response.Query},
		{Label: "Results", Value: fmt.Sprintf("%d", len(response.Recommendations))},
		{Label: "Metric", Value: response.Metadata.Metric},
		{Label: "Elapsed", Value: formatElapsed(response.Metadata.Elapsed), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeRecommendations writes each ranked result with its match bar and
// poster outcome
func (f *terminalFormatter) writeRecommendations(b *strings.Builder, response *recommend.Response) {
	b.WriteString(emoji.GetEmoji("movie") + " Recommendations\n")

	items := make([]termfmt.TreeItem, 0, len(response.Recommendations))
	for i, rec := range response.Recommendations {
		score := matchScore(rec.Distance, response.Metadata.Metric)
		bar := termfmt.CreateConfidenceBar(score, f.opts)

		children := []termfmt.TreeItem{
			{Label: fmt.Sprintf("%s match, distance %s", bar, formatDistance(rec.Distance))},
		}
		if line := f.posterLine(rec.Poster); line != "" {
			children = append(children, termfmt.TreeItem{Label: line})
		}

		items = append(items, termfmt.TreeItem{
			Label:    fmt.Sprintf("%d. %s", rec.Rank, titleWithYear(rec)),
			Children: children,
			Last:     i == len(response.Recommendations)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n")
}

// posterLine renders a poster URL or its degraded placeholder note.
// Empty input (posters disabled) yields an empty line, which the caller
// drops.
func (f *terminalFormatter) posterLine(url string) string {
	if url == "" {
		return ""
	}
	if note := posterNote(url); note != "" {
		return fmt.Sprintf("%s %s", emoji.GetEmoji("no_poster"), note)
	}
	return fmt.Sprintf("%s %s", emoji.GetEmoji("poster"), url)
}

// titleWithYear appends the release year when the record has one
func titleWithYear(rec recommend.Recommendation) string {
	if rec.Year != 0 {
		return fmt.Sprintf("%s (%d)", rec.Title, rec.Year)
	}
	return rec.Title
}
