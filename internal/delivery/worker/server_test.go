package worker

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geoalert/config"
	"geoalert/internal/delivery/worker/handler"
	"geoalert/internal/domain/entity"
	mockUsecase "geoalert/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorkerConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	cfg.Env.Env = "develop"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func TestWorkerEcho_Routes(t *testing.T) {
	cfg := newTestWorkerConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fanout := mockUsecase.NewMockFanoutUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Fanout: fanout})
	e := newWorkerEcho(cfg, logger, pushHandler)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("push schedules fan-out", func(t *testing.T) {
		fanout.EXPECT().
			OnPointCreated(mock.Anything, mock.MatchedBy(func(p *entity.Point) bool { return p.ID == 3 })).
			Return().
			Once()

		data := base64.StdEncoding.EncodeToString([]byte(`{"point_id":3,"latitude":1,"longitude":2,"description":"x"}`))
		req := httptest.NewRequest(http.MethodPost, pushPath, strings.NewReader(`{"message":{"data":"`+data+`"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestWorkerServer_StopWaitsForFanout(t *testing.T) {
	cfg := newTestWorkerConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fanout := mockUsecase.NewMockFanoutUsecase(t)
	lc := fxtest.NewLifecycle(t)

	_, err := NewServer(ServerParams{
		Lc:          lc,
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Fanout: fanout}),
		Fanout:      fanout,
	})
	require.NoError(t, err)

	fanout.EXPECT().Wait(mock.Anything).Return(errors.New("deadline exceeded")).Once()

	// An unfinished drain is logged, not returned
	require.NoError(t, lc.Start(context.Background()))
	assert.NoError(t, lc.Stop(context.Background()))
}
