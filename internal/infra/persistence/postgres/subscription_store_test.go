package postgres

import (
	"testing"

	"geoalert/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestSubscriptionPageQuery_FirstPage(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.SubscriptionRow

		return subscriptionPageQuery(tx, nil, 100).Find(&rows)
	})

	assert.Contains(t, sql, "JOIN users ON users.id = subscriptions.user_id")
	assert.Contains(t, sql, "users.telegram_id IS NOT NULL")
	assert.Contains(t, sql, "ORDER BY subscriptions.id ASC")
	assert.Contains(t, sql, "LIMIT 100")
	assert.NotContains(t, sql, "subscriptions.id >")
}

func TestSubscriptionPageQuery_WithCursor(t *testing.T) {
	db := newDryRunDB(t)
	cursor := int64(4200)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.SubscriptionRow

		return subscriptionPageQuery(tx, &cursor, 50).Find(&rows)
	})

	assert.Contains(t, sql, "subscriptions.id > 4200")
	assert.Contains(t, sql, "LIMIT 50")
}

func TestToSubscriptionEntity(t *testing.T) {
	sub := toSubscriptionEntity(&model.SubscriptionRow{ID: 3, OwnerRef: "987654", Latitude: 48.46, Longitude: 35.04, RadiusKm: 5})

	assert.Equal(t, int64(3), sub.ID)
	assert.Equal(t, "987654", sub.OwnerRef)
	assert.Equal(t, 5, sub.RadiusKm)
}
