package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"
	mockUsecase "geoalert/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockFanoutUsecase) {
	t.Helper()

	fanout := mockUsecase.NewMockFanoutUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Fanout: fanout}), fanout
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	cfg.Env.Env = "develop"

	return cfg
}

func pushBody(t *testing.T, payload any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/point-created-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func performPush(handler *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func validEvent() *service.PointCreatedEvent {
	return &service.PointCreatedEvent{
		RequestID:   "req-from-event",
		PointID:     12,
		Latitude:    48.4647,
		Longitude:   35.0461,
		Description: "Debris on the road",
		Type:        string(entity.PointTypeDynamicDanger),
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_ValidEventSchedulesFanout(t *testing.T) {
	handler, fanout := newTestPushHandler(t, developConfig())

	fanout.EXPECT().
		OnPointCreated(mock.Anything, mock.MatchedBy(func(point *entity.Point) bool {
			return point.ID == 12 && point.Latitude == 48.4647 && point.Type == entity.PointTypeDynamicDanger
		})).
		Run(func(ctx context.Context, _ *entity.Point) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))
		}).
		Return().
		Once()

	rec := performPush(handler, pushBody(t, validEvent(), map[string]string{"request_id": "req-from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFallsBackToEvent(t *testing.T) {
	handler, fanout := newTestPushHandler(t, developConfig())

	fanout.EXPECT().
		OnPointCreated(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.Point) {
			assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return().
		Once()

	rec := performPush(handler, pushBody(t, validEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	outOfRange := validEvent()
	outOfRange.Latitude = 95

	missingID := validEvent()
	missingID.PointID = 0

	tooLong := validEvent()
	tooLong.Description = strings.Repeat("x", entity.MaxDescriptionLength+1)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"empty data", `{"message":{"data":""}}`},
		{"bad base64", `{"message":{"data":"!!!"}}`},
		{"payload not json", `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
		{"coordinate out of range", pushBody(t, outOfRange, nil)},
		{"missing point id", pushBody(t, missingID, nil)},
		{"description too long", pushBody(t, tooLong, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestPushHandler(t, developConfig())

			rec := performPush(handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_GoogleProviderRequiresToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	handler, _ := newTestPushHandler(t, cfg)
	require.True(t, handler.verifyPushAuth)

	rec := performPush(handler, pushBody(t, validEvent(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "develop"

	handler, _ := newTestPushHandler(t, cfg)

	assert.False(t, handler.verifyPushAuth)
}
