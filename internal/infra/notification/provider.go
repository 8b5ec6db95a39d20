package notification

import (
	"context"
	"log/slog"

	"geoalert/config"
	"geoalert/internal/domain/constants"
	"geoalert/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChannelParams holds dependencies for DeliveryChannel, injected by Fx
type ChannelParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryChannel creates the DeliveryChannel selected by delivery.provider.
// Telegram is the default.
func NewDeliveryChannel(params ChannelParams) (service.DeliveryChannel, error) {
	cfg := params.Config.Delivery
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("delivery configuration is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = constants.DeliveryProviderTelegram
	}

	switch provider {
	case constants.DeliveryProviderTelegram:
		logger.Info("Using Telegram delivery channel")

		return NewTelegramChannel(cfg.Telegram, nil, logger)

	case constants.DeliveryProviderFirebase:
		logger.Info("Using Firebase delivery channel")

		return NewFirebaseChannel(params.Ctx, cfg.Firebase, logger)

	case constants.DeliveryProviderWebhook:
		if cfg.Webhook != nil {
			logger.Info("Using webhook delivery channel", slog.String("url", cfg.Webhook.URL))
		}

		return NewWebhookChannel(cfg.Webhook, nil, logger)

	default:
		return nil, errors.Errorf("unknown delivery provider: %s", provider)
	}
}

// Module provides the delivery channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeliveryChannel),
)
