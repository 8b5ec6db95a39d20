package service

import (
	"context"
)

// ActionPayload is a structured action attached to a notification, rendered by the channel
// (an inline web-app button, a data field or a JSON object).
type ActionPayload struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// DeliveryChannel sends a single notification to one recipient.
// Implementations must be safe for concurrent use and should return
// errors.PermanentDeliveryError or errors.TransientDeliveryError.
type DeliveryChannel interface {
	Send(ctx context.Context, ownerRef, text string, action ActionPayload) error
}
