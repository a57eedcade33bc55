package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/yildizm/CineSim/internal/recommend"
)

// csvFormatter formats recommendations as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(response *recommend.Response) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Rank",
		"ID",
		"Title",
		"Year",
		"Genres",
		"Distance",
		"Poster",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, rec := range response.Recommendations {
		year := ""
		if rec.Year != 0 {
			year = strconv.Itoa(rec.Year)
		}

		record := []string{
			strconv.Itoa(rec.Rank),
			strconv.Itoa(rec.ID),
			rec.Title,
			year,
			strings.Join(rec.Genres, "|"),
			formatDistance(rec.Distance),
			rec.Poster,
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}
