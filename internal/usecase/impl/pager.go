package impl

import (
	"context"
	"iter"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
)

var errCursorStalled = errors.New("store returned a cursor that does not advance")

// subscriptionPages fetches pages sequentially until the store reports no next cursor.
// The next page is requested only after the consumer finished with the current one.
// A fetch failure is yielded once as a StoreUnavailableError and ends the sequence.
func subscriptionPages(ctx context.Context, store repository.SubscriptionStore, pageSize int) iter.Seq2[[]*entity.Subscription, error] {
	return func(yield func([]*entity.Subscription, error) bool) {
		var cursor *int64

		for {
			page, err := store.FetchPage(ctx, cursor, pageSize)
			if err != nil {
				if !domainerrors.IsStoreUnavailable(err) {
					err = domainerrors.NewStoreUnavailableError(err)
				}
				yield(nil, err)

				return
			}
			if page == nil {
				return
			}

			if !yield(page.Subscriptions, nil) {
				return
			}

			if page.NextCursor == nil {
				return
			}
			if cursor != nil && *page.NextCursor <= *cursor {
				yield(nil, domainerrors.NewStoreUnavailableError(errCursorStalled))

				return
			}
			cursor = page.NextCursor
		}
	}
}
