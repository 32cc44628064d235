package pubsub

import (
	"encoding/json"

	"mescontacts/internal/domain/service"

	"github.com/pkg/errors"
)

// outboundMessage is the transport-neutral form of a lifecycle event.
type outboundMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// newOutboundMessage serializes event. Events for one listing share an
// ordering key so subscribers see its transitions in commit order.
func newOutboundMessage(event *service.LifecycleEvent) (*outboundMessage, error) {
	if event == nil {
		return nil, errors.New("nil lifecycle event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode lifecycle event")
	}

	return &outboundMessage{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.PostID,
	}, nil
}

// eventAttributes are attached to every message for subscription filtering.
func eventAttributes(event *service.LifecycleEvent) map[string]string {
	attributes := map[string]string{
		"post_id":    event.PostID,
		"new_status": event.NewStatus,
	}

	optional := []struct{ key, value string }{
		{"previous_status", event.PreviousStatus},
		{"payment_id", event.PaymentID},
		{"request_id", event.RequestID},
	}
	for _, kv := range optional {
		if kv.value != "" {
			attributes[kv.key] = kv.value
		}
	}

	return attributes
}
