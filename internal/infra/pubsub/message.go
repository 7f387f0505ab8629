package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Attribute keys set on every published message.
const (
	AttrEventID     = "event_id"
	AttrEventType   = "event_type"
	AttrAggregateID = "aggregate_id"
	AttrRequestID   = "request_id"
)

// PushMessage is the envelope Google Pub/Sub delivers to push endpoints.
// The local provider produces the same shape so the notifier has one decoder.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an event in a push envelope.
func NewPushMessage(event *entity.DomainEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent returns the domain event carried in the envelope.
func (m *PushMessage) DecodeEvent() (*entity.DomainEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse domain event")
	}
	if event.Type == "" {
		return nil, errors.New("domain event has no type")
	}

	return &event, nil
}

func eventAttributes(event *entity.DomainEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID:     event.ID.String(),
		AttrEventType:   string(event.Type),
		AttrAggregateID: event.AggregateID.String(),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
