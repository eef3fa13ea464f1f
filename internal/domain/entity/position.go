// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// Position is a geographic coordinate captured from the host or a fallback.
// It is immutable once captured; re-acquisition replaces it wholesale.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the position to an orb.Point (lon/lat order).
func (p Position) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Provenance describes how the current position was obtained.
type Provenance string

const (
	// ProvenancePrecise means the host reported its real position.
	ProvenancePrecise Provenance = "precise"
	// ProvenanceFallbackUnsupported means the host has no location capability.
	ProvenanceFallbackUnsupported Provenance = "fallback_unsupported"
	// ProvenanceFallbackDenied means acquisition was denied or timed out.
	ProvenanceFallbackDenied Provenance = "fallback_denied"
	// ProvenanceNotSupported is reported by an explicit on-demand request on a
	// host without location capability.
	ProvenanceNotSupported Provenance = "not_supported"
	// ProvenanceRetryFailed is reported when an explicit on-demand request
	// fails; previously loaded results stay in place.
	ProvenanceRetryFailed Provenance = "retry_failed"
)

// Notice returns the human-readable provenance notice shown alongside results.
func (p Provenance) Notice() string {
	switch p {
	case ProvenancePrecise:
		return "Using your device location for precise shop results."
	case ProvenanceFallbackUnsupported:
		return "Location access is not available on this device. Showing results near central Chennai as a fallback."
	case ProvenanceFallbackDenied:
		return "Unable to access your location. Showing a curated list near central Chennai. Enable location for personalised results."
	case ProvenanceNotSupported:
		return "Location services are not supported on this device."
	case ProvenanceRetryFailed:
		return "Unable to use your location. Continuing with fallback results."
	default:
		return ""
	}
}

// Precise reports whether the fix came from the host rather than a fallback.
func (p Provenance) Precise() bool {
	return p == ProvenancePrecise
}

// PositionFix is the result of a position acquisition: a usable position plus
// the provenance explaining where it came from. Acquisition never fails; a
// failed acquisition yields the configured default position.
type PositionFix struct {
	Position   Position
	Provenance Provenance
}
