// Package notification implements the outbound delivery channels.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTelegramAPIBase = "https://api.telegram.org"
	telegramParseModeHTML  = "HTML"

	// Telegram answers quickly; the dispatcher deadline is the real bound.
	telegramClientTimeout = 15 * time.Second
	maxErrorBodyBytes     = 4 << 10
)

// telegramChannel delivers notifications through the Telegram Bot API sendMessage method.
type telegramChannel struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

type telegramWebApp struct {
	URL string `json:"url"`
}

type telegramInlineButton struct {
	Text   string          `json:"text"`
	WebApp *telegramWebApp `json:"web_app,omitempty"`
}

type telegramReplyMarkup struct {
	InlineKeyboard [][]telegramInlineButton `json:"inline_keyboard"`
}

type telegramSendMessageRequest struct {
	ChatID      string               `json:"chat_id"`
	Text        string               `json:"text"`
	ParseMode   string               `json:"parse_mode"`
	ReplyMarkup *telegramReplyMarkup `json:"reply_markup,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after,omitempty"`
	} `json:"parameters,omitempty"`
}

// NewTelegramChannel creates a Telegram delivery channel. httpClient may be nil.
func NewTelegramChannel(cfg *config.TelegramConfig, httpClient *http.Client, logger *slog.Logger) (service.DeliveryChannel, error) {
	if cfg == nil || cfg.BotToken == "" {
		return nil, errors.New("telegram bot token is required")
	}

	apiBase := strings.TrimRight(cfg.APIBase, "/")
	if apiBase == "" {
		apiBase = defaultTelegramAPIBase
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: telegramClientTimeout}
	}

	return &telegramChannel{
		endpoint:   apiBase + "/bot" + cfg.BotToken + "/sendMessage",
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Send posts one HTML message with an optional web-app button to chat ownerRef.
func (c *telegramChannel) Send(ctx context.Context, ownerRef, text string, action service.ActionPayload) error {
	if ownerRef == "" {
		return domainerrors.NewPermanentDeliveryError(errors.New("empty telegram chat id"))
	}

	payload := telegramSendMessageRequest{
		ChatID:    ownerRef,
		Text:      text,
		ParseMode: telegramParseModeHTML,
	}
	if action.URL != "" {
		payload.ReplyMarkup = &telegramReplyMarkup{
			InlineKeyboard: [][]telegramInlineButton{{
				{Text: action.Text, WebApp: &telegramWebApp{URL: action.URL}},
			}},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domainerrors.NewPermanentDeliveryError(errors.WithStack(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domainerrors.NewPermanentDeliveryError(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The endpoint embeds the bot token, never surface the raw url.Error.
		return domainerrors.NewTransientDeliveryError(errors.Wrap(unwrapURLError(err), "telegram request failed"))
	}
	defer resp.Body.Close()

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return domainerrors.NewTransientDeliveryError(errors.Wrapf(err, "telegram sendMessage: status %d: read response", resp.StatusCode))
	}

	var result telegramResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Warn("[Telegram] Undecodable sendMessage response",
			slog.Int("status", resp.StatusCode),
			slog.Int("body_bytes", len(raw)),
			slog.Any("error", err),
		)

		return classifyTelegramStatus(resp.StatusCode,
			fmt.Errorf("telegram sendMessage: status %d: undecodable response: %w", resp.StatusCode, err))
	}

	if resp.StatusCode == http.StatusOK && result.OK {
		return nil
	}

	apiErr := fmt.Errorf("telegram sendMessage: status %d: %s", resp.StatusCode, result.Description)
	if resp.StatusCode == http.StatusTooManyRequests && result.Parameters != nil && result.Parameters.RetryAfter > 0 {
		logger.Warn("[Telegram] Rate limited", slog.Int("retry_after_seconds", result.Parameters.RetryAfter))
		apiErr = fmt.Errorf("%w (retry after %ds)", apiErr, result.Parameters.RetryAfter)
	}

	return classifyTelegramStatus(resp.StatusCode, apiErr)
}

// classifyTelegramStatus maps a failed sendMessage answer to a delivery error.
func classifyTelegramStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return domainerrors.NewTransientDeliveryError(err)
	case status >= http.StatusBadRequest:
		// 400 chat not found, 403 bot blocked by the user.
		return domainerrors.NewPermanentDeliveryError(err)
	default:
		return domainerrors.NewTransientDeliveryError(err)
	}
}

// unwrapURLError drops the request URL from transport errors.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}

	return err
}
