package entity

// Session is the auth context explicitly passed into the engine. A nil
// *Session means unauthenticated: enrichment is skipped and subscription
// mutations are rejected before any state change.
type Session struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"` // Bearer token for authenticated endpoints.
}
