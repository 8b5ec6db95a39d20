package notification

import (
	"context"
	"testing"

	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/demo/messages/1", nil
}

func TestFirebaseChannel_Send(t *testing.T) {
	client := &fakeMessagingClient{}
	channel := newFirebaseChannel(client, newTestLogger())

	text := "⚠️ <b>New danger point nearby!</b>\n\nRoad &amp; bridge\n📏 0.7 km from your location"
	err := channel.Send(context.Background(), "fcm-token", text, service.ActionPayload{Text: "📍 View on Map", URL: "https://map.example.com"})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	message := client.sent[0]
	assert.Equal(t, "fcm-token", message.Token)
	assert.Equal(t, firebaseTitle, message.Notification.Title)
	assert.Equal(t, "⚠️ New danger point nearby!\n\nRoad & bridge\n📏 0.7 km from your location", message.Notification.Body)
	assert.Equal(t, text, message.Data["text"])
	assert.Equal(t, "https://map.example.com", message.Data["action_url"])
}

func TestFirebaseChannel_Send_GenericErrorIsTransient(t *testing.T) {
	cause := errors.New("unavailable")
	channel := newFirebaseChannel(&fakeMessagingClient{err: cause}, newTestLogger())

	err := channel.Send(context.Background(), "fcm-token", "text", service.ActionPayload{})

	assert.True(t, domainerrors.IsTransientDelivery(err))
	assert.ErrorIs(t, err, cause)
}

func TestFirebaseChannel_Send_EmptyToken(t *testing.T) {
	client := &fakeMessagingClient{}
	channel := newFirebaseChannel(client, newTestLogger())

	err := channel.Send(context.Background(), "", "text", service.ActionPayload{})

	assert.True(t, domainerrors.IsPermanentDelivery(err))
	assert.Empty(t, client.sent)
}
