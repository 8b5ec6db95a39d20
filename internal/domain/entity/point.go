// Package entity contains the core business objects of the project.
package entity

import "time"

// PointType classifies a danger point.
type PointType string

const (
	PointTypeStaticDanger   PointType = "static_danger"
	PointTypeDynamicDanger  PointType = "dynamic_danger"
	PointTypeInfrastructure PointType = "infrastructure"
	PointTypeOther          PointType = "other"
)

// MaxDescriptionLength is the longest description a point may carry.
const MaxDescriptionLength = 1000

// Label returns a human readable name for the point type.
func (t PointType) Label() string {
	switch t {
	case PointTypeStaticDanger:
		return "Static Danger"
	case PointTypeDynamicDanger:
		return "Dynamic Danger"
	case PointTypeInfrastructure:
		return "Infrastructure"
	case PointTypeOther:
		return "Other"
	default:
		return ""
	}
}

// Point represents a newly created danger point whose creation triggers a fan-out.
// It is read-only to the notifier once a run starts.
type Point struct {
	ID          int64     `json:"id"`          // Identifier assigned by the point workflow.
	Latitude    float64   `json:"latitude"`    // Degrees, [-90, 90].
	Longitude   float64   `json:"longitude"`   // Degrees, [-180, 180].
	Description string    `json:"description"` // Free text shown in the notification.
	Type        PointType `json:"type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
