package entity

// ShopSummary is the minimal shop record returned by a radius query.
// It is read-only to everything downstream of the query client.
type ShopSummary struct {
	ID             int64   `json:"id"`       // Server-assigned unique identifier.
	Name           string  `json:"name"`     // Display name of the shop.
	Address        string  `json:"address"`  // Street address.
	Latitude       float64 `json:"latitude"` // Shop position.
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance"` // Distance from the query position, in meters.
}

// Position returns the shop's coordinates as a Position value.
func (s ShopSummary) Position() Position {
	return Position{Latitude: s.Latitude, Longitude: s.Longitude}
}

// ShopDetail is the authenticated-only supplementary data for one shop.
// Absence of a detail means "unknown", which is distinct from a detail with
// zero subscribers.
type ShopDetail struct {
	ShopID          int64 `json:"shop_id"`
	SubscriberCount int   `json:"subscriber_count"`
	IsSubscribed    bool  `json:"is_subscribed"`
}

// EnrichedShop joins a summary with its optional detail. This is the unit the
// presentation layer renders.
type EnrichedShop struct {
	ShopSummary
	Detail *ShopDetail `json:"detail,omitempty"`
}

// Clone returns a deep copy, detaching the caller from in-place detail
// mutation performed by the subscription coordinator.
func (s EnrichedShop) Clone() EnrichedShop {
	out := s
	if s.Detail != nil {
		detail := *s.Detail
		out.Detail = &detail
	}

	return out
}
