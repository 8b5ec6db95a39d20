// Package entity contains the core business objects of the project.
package entity

const (
	// MinRadiusKm and MaxRadiusKm bound the radius a subscription may request.
	MinRadiusKm = 1
	MaxRadiusKm = 50
)

// Subscription represents a standing request to be notified about points near a location.
type Subscription struct {
	ID        int64   `json:"id"`        // The subscription identifier.
	OwnerRef  string  `json:"owner_ref"` // Opaque recipient reference, e.g. a Telegram chat id.
	Latitude  float64 `json:"latitude"`  // Center latitude in degrees.
	Longitude float64 `json:"longitude"` // Center longitude in degrees.
	RadiusKm  int     `json:"radius_km"` // Notification radius in kilometers.
}

// SubscriptionPage is one page of subscriptions returned by the store.
// NextCursor is nil when the store is exhausted.
type SubscriptionPage struct {
	Subscriptions []*Subscription
	NextCursor    *int64
}
