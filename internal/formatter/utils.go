package formatter

import (
	"fmt"
	"time"

	"github.com/yildizm/CineSim/internal/poster"
)

// formatDistance renders a distance with enough precision to separate
// close neighbors without drowning the output in digits.
func formatDistance(d float32) string {
	return fmt.Sprintf("%.4f", d)
}

// formatElapsed rounds elapsed time for display
func formatElapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

// matchScore maps a distance onto [0, 1] for display bars. Cosine
// distance inverts directly; euclidean distance has no upper bound, so it
// decays with 1/(1+d).
func matchScore(distance float32, metric string) float64 {
	switch metric {
	case "cosine":
		score := 1.0 - float64(distance)
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		return score
	default:
		return 1.0 / (1.0 + float64(distance))
	}
}

// posterNote translates a placeholder URL into a short human note. Real
// poster URLs yield an empty string.
func posterNote(url string) string {
	switch url {
	case poster.PlaceholderMissing:
		return "no poster available"
	case poster.PlaceholderError:
		return "poster lookup failed"
	default:
		return ""
	}
}
