package impl

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"
	mockSvc "geoalert/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMatch(id int64, ownerRef string, distance float64) entity.MatchResult {
	return entity.MatchResult{
		SubscriptionID: id,
		DistanceKm:     distance,
		Subscription: &entity.Subscription{
			ID:        id,
			OwnerRef:  ownerRef,
			Latitude:  dniproCenter.lat,
			Longitude: dniproCenter.lon,
			RadiusKm:  5,
		},
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{0, "0.0"},
		{0.04, "0.0"},
		{0.05, "0.1"},
		{0.6557, "0.7"},
		{2.25, "2.3"},
		{4.94, "4.9"},
		{10, "10.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.distance), "distance %v", tt.distance)
	}
}

func TestFormatMessage(t *testing.T) {
	point := newTestPoint()
	point.Description = `Mine field <near> "bridge" & river`

	text := FormatMessage(point, 0.6557)

	assert.Equal(t,
		"⚠️ <b>New danger point nearby!</b>\n\n"+
			"Mine field &lt;near&gt; &#34;bridge&#34; &amp; river\n"+
			"📏 0.7 km from your location",
		text,
	)
}

func TestFormatMessage_WithType(t *testing.T) {
	point := newTestPoint()
	point.Type = entity.PointTypeInfrastructure

	text := FormatMessage(point, 3)

	assert.Contains(t, text, "\n🏷 Infrastructure\n")
	assert.Contains(t, text, "📏 3.0 km from your location")
}

func TestDispatcher_Deliver_Sent(t *testing.T) {
	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(4, time.Second), newTestLogger())
	point := newTestPoint()
	match := newTestMatch(11, "chat-11", 1.24)

	channel.EXPECT().
		Send(mock.Anything, "chat-11", FormatMessage(point, 1.24), service.ActionPayload{Text: ViewOnMapText, URL: testWebAppURL}).
		Return(nil).
		Once()

	outcome := dispatcher.Deliver(context.Background(), match, point)

	assert.Equal(t, entity.DeliveryStatusSent, outcome.Status)
	assert.Equal(t, int64(11), outcome.SubscriptionID)
	assert.InDelta(t, 1.24, outcome.DistanceKm, 1e-12)
	assert.NoError(t, outcome.Err)
	assert.False(t, outcome.Failed())
}

func TestDispatcher_Deliver_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus entity.DeliveryStatus
	}{
		{
			name:       "permanent",
			sendErr:    domainerrors.NewPermanentDeliveryError(errors.New("bot was blocked by the user")),
			wantStatus: entity.DeliveryStatusFailedPermanent,
		},
		{
			name:       "transient",
			sendErr:    domainerrors.NewTransientDeliveryError(errors.New("too many requests")),
			wantStatus: entity.DeliveryStatusFailedTransient,
		},
		{
			name:       "unclassified defaults to transient",
			sendErr:    errors.New("connection reset by peer"),
			wantStatus: entity.DeliveryStatusFailedTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel := mockSvc.NewMockDeliveryChannel(t)
			dispatcher := NewDispatcher(channel, newTestConfig(4, time.Second), newTestLogger())

			channel.EXPECT().Send(mock.Anything, "chat-1", mock.Anything, mock.Anything).Return(tt.sendErr).Once()

			outcome := dispatcher.Deliver(context.Background(), newTestMatch(1, "chat-1", 0.5), newTestPoint())

			assert.Equal(t, tt.wantStatus, outcome.Status)
			require.Error(t, outcome.Err)
			assert.ErrorIs(t, outcome.Err, tt.sendErr)
			assert.True(t, domainerrors.IsPermanentDelivery(outcome.Err) || domainerrors.IsTransientDelivery(outcome.Err))
		})
	}
}

func TestDispatcher_Deliver_TimeoutIsTransient(t *testing.T) {
	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(4, 20*time.Millisecond), newTestLogger())

	channel.EXPECT().
		Send(mock.Anything, "chat-1", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string, _ service.ActionPayload) error {
			<-ctx.Done()

			return ctx.Err()
		}).
		Once()

	started := time.Now()
	outcome := dispatcher.Deliver(context.Background(), newTestMatch(1, "chat-1", 0.5), newTestPoint())

	assert.Less(t, time.Since(started), 2*time.Second)
	assert.Equal(t, entity.DeliveryStatusFailedTransient, outcome.Status)
	assert.True(t, domainerrors.IsTransientDelivery(outcome.Err))
	assert.ErrorIs(t, outcome.Err, context.DeadlineExceeded)
}

func TestDispatcher_Deliver_MissingSubscription(t *testing.T) {
	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(4, time.Second), newTestLogger())

	outcome := dispatcher.Deliver(context.Background(), entity.MatchResult{SubscriptionID: 9}, newTestPoint())

	assert.Equal(t, entity.DeliveryStatusFailedPermanent, outcome.Status)
	channel.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_DispatchAll_IsolatesFailures(t *testing.T) {
	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(4, time.Second), newTestLogger())

	channel.EXPECT().Send(mock.Anything, "chat-1", mock.Anything, mock.Anything).Return(nil).Once()
	channel.EXPECT().Send(mock.Anything, "chat-2", mock.Anything, mock.Anything).
		Return(domainerrors.NewTransientDeliveryError(errors.New("429 Too Many Requests"))).Once()
	channel.EXPECT().Send(mock.Anything, "chat-3", mock.Anything, mock.Anything).Return(nil).Once()

	matches := []entity.MatchResult{
		newTestMatch(1, "chat-1", 0.1),
		newTestMatch(2, "chat-2", 0.2),
		newTestMatch(3, "chat-3", 0.3),
	}

	outcomes := dispatcher.DispatchAll(context.Background(), newTestPoint(), slices.Values(matches))
	require.Len(t, outcomes, 3)

	byID := make(map[int64]entity.DeliveryOutcome, len(outcomes))
	for _, outcome := range outcomes {
		byID[outcome.SubscriptionID] = outcome
	}

	assert.Equal(t, entity.DeliveryStatusSent, byID[1].Status)
	assert.Equal(t, entity.DeliveryStatusFailedTransient, byID[2].Status)
	assert.Equal(t, entity.DeliveryStatusSent, byID[3].Status)
}

func TestDispatcher_DispatchAll_BoundsInFlightCalls(t *testing.T) {
	const workers = 3

	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(workers, time.Second), newTestLogger())

	var (
		inFlight    atomic.Int32
		maxInFlight atomic.Int32
		mu          sync.Mutex
		delivered   []string
	)

	channel.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ownerRef, _ string, _ service.ActionPayload) error {
			current := inFlight.Add(1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			mu.Lock()
			delivered = append(delivered, ownerRef)
			mu.Unlock()

			return nil
		}).
		Times(20)

	matches := make([]entity.MatchResult, 0, 20)
	for i := range 20 {
		matches = append(matches, newTestMatch(int64(i+1), "chat", float64(i)/10))
	}

	outcomes := dispatcher.DispatchAll(context.Background(), newTestPoint(), slices.Values(matches))

	assert.Len(t, outcomes, 20)
	assert.Len(t, delivered, 20)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(workers))
	assert.GreaterOrEqual(t, maxInFlight.Load(), int32(1))
}

func TestDispatcher_DispatchAll_NoMatches(t *testing.T) {
	channel := mockSvc.NewMockDeliveryChannel(t)
	dispatcher := NewDispatcher(channel, newTestConfig(4, time.Second), newTestLogger())

	outcomes := dispatcher.DispatchAll(context.Background(), newTestPoint(), slices.Values([]entity.MatchResult(nil)))

	assert.Empty(t, outcomes)
}
