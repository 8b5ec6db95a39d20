package notification

import (
	"context"
	"html"
	"log/slog"
	"regexp"
	"strings"

	"geoalert/config"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const firebaseTitle = "⚠️ New danger point nearby!"

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// messagingClient is the subset of *messaging.Client the channel needs.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseChannel delivers notifications as FCM pushes. ownerRef is a registration token.
type firebaseChannel struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseChannel creates an FCM delivery channel from a service account file.
func NewFirebaseChannel(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.DeliveryChannel, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseChannel(client, logger), nil
}

func newFirebaseChannel(client messagingClient, logger *slog.Logger) *firebaseChannel {
	return &firebaseChannel{client: client, logger: logger}
}

// Send pushes a plain-text rendering of text; the HTML original and the action travel as data.
func (c *firebaseChannel) Send(ctx context.Context, ownerRef, text string, action service.ActionPayload) error {
	if ownerRef == "" {
		return domainerrors.NewPermanentDeliveryError(errors.New("empty FCM registration token"))
	}

	message := &messaging.Message{
		Token: ownerRef,
		Notification: &messaging.Notification{
			Title: firebaseTitle,
			Body:  plainText(text),
		},
		Data: map[string]string{
			"text":        text,
			"action_text": action.Text,
			"action_url":  action.URL,
		},
	}

	messageID, err := c.client.Send(ctx, message)
	if err != nil {
		return classifyFirebaseError(err)
	}

	c.logger.Debug("[Firebase] Message accepted", slog.String("message_id", messageID))

	return nil
}

// classifyFirebaseError treats bad or unregistered tokens as permanent, everything else as transient.
func classifyFirebaseError(err error) error {
	wrapped := errors.Wrap(err, "failed to send notification")
	if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) {
		return domainerrors.NewPermanentDeliveryError(wrapped)
	}

	return domainerrors.NewTransientDeliveryError(wrapped)
}

// plainText strips the HTML markup used by chat channels.
func plainText(text string) string {
	stripped := htmlTagPattern.ReplaceAllString(text, "")

	return strings.TrimSpace(html.UnescapeString(stripped))
}
