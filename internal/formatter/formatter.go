package formatter

import "github.com/yildizm/CineSim/internal/recommend"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(response *recommend.Response) ([]byte, error)
}
