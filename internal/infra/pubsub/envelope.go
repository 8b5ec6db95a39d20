package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"geoalert/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	attrPointID   = "point_id"
	attrRequestID = "request_id"

	localSubscription = "projects/local/subscriptions/point-created-sub"
)

// PubSubPushMessage mirrors the body Google Pub/Sub posts to push endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent returns the JSON payload and the attributes used for filtering and tracing.
func encodeEvent(event *service.PointCreatedEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("nil point event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode point event")
	}

	attributes := map[string]string{
		attrPointID: strconv.FormatInt(event.PointID, 10),
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// newPushMessage wraps an encoded event the way a push subscription delivers it.
func newPushMessage(data []byte, attributes map[string]string, publishedAt time.Time) *PubSubPushMessage {
	msg := &PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "local-" + attributes[attrPointID]
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg
}
