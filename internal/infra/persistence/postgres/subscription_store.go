package postgres

import (
	"context"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/repository"
	"geoalert/internal/errors"
	"geoalert/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type subscriptionStore struct {
	db *gorm.DB
}

// NewSubscriptionStore creates the GORM-backed subscription store.
func NewSubscriptionStore(db *gorm.DB) repository.SubscriptionStore {
	return &subscriptionStore{db: db}
}

// FetchPage reads one keyset page of subscriptions whose owner has a Telegram chat.
func (s *subscriptionStore) FetchPage(ctx context.Context, cursor *int64, limit int) (*entity.SubscriptionPage, error) {
	if limit <= 0 {
		return nil, domainerrors.NewStoreUnavailableError(errors.Errorf("invalid page size %d", limit))
	}

	var rows []model.SubscriptionRow
	if err := subscriptionPageQuery(s.db.WithContext(ctx), cursor, limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStoreUnavailableError(errors.Wrap(err, "failed to fetch subscription page"))
	}

	page := &entity.SubscriptionPage{
		Subscriptions: make([]*entity.Subscription, 0, len(rows)),
	}
	for i := range rows {
		page.Subscriptions = append(page.Subscriptions, toSubscriptionEntity(&rows[i]))
	}

	// A short page means the table is exhausted.
	if len(rows) == limit {
		next := rows[len(rows)-1].ID
		page.NextCursor = &next
	}

	return page, nil
}

func subscriptionPageQuery(db *gorm.DB, cursor *int64, limit int) *gorm.DB {
	query := db.Model(&model.SubscriptionModel{}).
		Select("subscriptions.id, CAST(users.telegram_id AS TEXT) AS owner_ref, " +
			"subscriptions.latitude, subscriptions.longitude, subscriptions.radius_km").
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Where("users.telegram_id IS NOT NULL")

	if cursor != nil {
		query = query.Where("subscriptions.id > ?", *cursor)
	}

	return query.Order("subscriptions.id ASC").Limit(limit)
}

func toSubscriptionEntity(row *model.SubscriptionRow) *entity.Subscription {
	return &entity.Subscription{
		ID:        row.ID,
		OwnerRef:  row.OwnerRef,
		Latitude:  row.Latitude,
		Longitude: row.Longitude,
		RadiusKm:  row.RadiusKm,
	}
}
