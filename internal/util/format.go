// Package util contains small presentation helpers.
package util

import (
	"fmt"
	"math"
)

// FormatDistance renders a distance in meters as "850 m" or "1.2 km".
// Non-finite or negative distances yield an empty string.
func FormatDistance(meters float64) string {
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return ""
	}

	kilometers := meters / 1000
	if kilometers < 1 {
		return fmt.Sprintf("%.0f m", kilometers*1000)
	}

	return fmt.Sprintf("%.1f km", kilometers)
}

// FormatSubscribers renders a subscriber count with the right plural.
func FormatSubscribers(count int) string {
	if count == 1 {
		return "1 subscriber"
	}

	return fmt.Sprintf("%d subscribers", count)
}
