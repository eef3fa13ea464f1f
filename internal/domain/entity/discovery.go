package entity

import "slices"

// ViewMode selects how the discovered shops are presented. Switching modes is
// a pure presentation toggle; both modes read the same filtered shops.
type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeMap  ViewMode = "map"
)

// RadiusChoices are the supported query radii in meters.
var RadiusChoices = []int{1000, 2000, 5000, 10000, 20000}

// ValidRadius reports whether the radius is one of the supported choices.
func ValidRadius(radiusMeters int) bool {
	return slices.Contains(RadiusChoices, radiusMeters)
}

// DiscoveryState is a point-in-time snapshot of the discovery engine, safe for
// rendering: shops are deep copies and the pending set is detached.
type DiscoveryState struct {
	Position     *Position          // nil until the first acquisition resolves.
	Notice       string             // Provenance notice for the current position.
	RadiusMeters int                // Current query radius.
	SearchText   string             // Client-side filter, case-insensitive.
	ViewMode     ViewMode           // Current presentation mode.
	Shops        []EnrichedShop     // Server order, post-filter applied by VisibleShops.
	Pending      map[int64]struct{} // Shop ids with a subscription mutation in flight.
	Loading      bool               // A full load is in progress.
	LoadError    string             // Non-empty blocks list/map rendering until a retry succeeds.
}
