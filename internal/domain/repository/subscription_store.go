// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"geoalert/internal/domain/entity"
)

// SubscriptionStore gives cursor-based read access to every active subscription.
// Pages are ordered by ascending subscription id. A nil cursor requests the first page.
type SubscriptionStore interface {
	// FetchPage returns up to limit subscriptions with an id greater than cursor.
	// The returned page has a nil NextCursor once the store is exhausted.
	FetchPage(ctx context.Context, cursor *int64, limit int) (*entity.SubscriptionPage, error)
}
