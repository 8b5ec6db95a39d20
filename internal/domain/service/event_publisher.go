package service

import (
	"context"
	"time"

	"geoalert/internal/domain/entity"
)

// PointCreatedEvent is raised by the point workflow after the point is committed.
type PointCreatedEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	PointID     int64     `json:"point_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	Type        string    `json:"type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPointCreatedEvent builds the event for a committed point.
func NewPointCreatedEvent(requestID string, point *entity.Point) *PointCreatedEvent {
	return &PointCreatedEvent{
		RequestID:   requestID,
		PointID:     point.ID,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		Description: point.Description,
		Type:        string(point.Type),
		CreatedAt:   point.CreatedAt,
	}
}

// Point converts the event back into the point it describes.
func (e *PointCreatedEvent) Point() *entity.Point {
	return &entity.Point{
		ID:          e.PointID,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Description: e.Description,
		Type:        entity.PointType(e.Type),
		CreatedAt:   e.CreatedAt,
	}
}

// EventPublisher defines the interface for handing point events to the fan-out worker
type EventPublisher interface {
	// PublishPointCreated publishes a point-created event for async processing
	PublishPointCreated(ctx context.Context, event *PointCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
