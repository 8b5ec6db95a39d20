package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	webhookClientTimeout     = 15 * time.Second
	webhookErrorSnippetBytes = 256
)

// webhookChannel posts every notification as JSON to a single configured receiver.
type webhookChannel struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// WebhookPayload is the JSON body sent to the receiver.
type WebhookPayload struct {
	OwnerRef string                `json:"owner_ref"`
	Text     string                `json:"text"`
	Action   service.ActionPayload `json:"action"`
}

// NewWebhookChannel creates a webhook delivery channel. httpClient may be nil.
func NewWebhookChannel(cfg *config.WebhookConfig, httpClient *http.Client, logger *slog.Logger) (service.DeliveryChannel, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("webhook url is required")
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: webhookClientTimeout}
	}

	return &webhookChannel{
		url:        cfg.URL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Send posts the notification. 4xx answers are permanent except 408 and 429.
func (c *webhookChannel) Send(ctx context.Context, ownerRef, text string, action service.ActionPayload) error {
	body, err := json.Marshal(WebhookPayload{OwnerRef: ownerRef, Text: text, Action: action})
	if err != nil {
		return domainerrors.NewPermanentDeliveryError(errors.WithStack(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domainerrors.NewPermanentDeliveryError(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewTransientDeliveryError(errors.Wrap(err, "webhook request failed"))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, webhookErrorSnippetBytes))
	reason := strings.TrimSpace(string(snippet))

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Warn("[Webhook] Receiver rejected notification",
		slog.Int("status", resp.StatusCode),
		slog.String("body", reason),
	)

	statusErr := fmt.Errorf("webhook returned status %d", resp.StatusCode)
	if reason != "" {
		statusErr = fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, reason)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		resp.StatusCode != http.StatusRequestTimeout && resp.StatusCode != http.StatusTooManyRequests {
		return domainerrors.NewPermanentDeliveryError(statusErr)
	}

	return domainerrors.NewTransientDeliveryError(statusErr)
}
