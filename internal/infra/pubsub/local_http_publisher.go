package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/listing-lifecycle-sub"
	localPushTimeout  = 10 * time.Second
)

// PushMessage is the body Google Pub/Sub sends to push subscriptions. The
// local publisher produces the same shape so a subscriber can be developed
// without the emulator.
type PushMessage struct {
	Message      PushPayload `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushPayload is the message part of a push body. Data is base64 encoded.
type PushPayload struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
	logger   *slog.Logger
}

// NewLocalHTTPPublisher posts every event to endpoint in push format.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		now:      time.Now,
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	msg, err := newOutboundMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushMessage{
		Subscription: localSubscription,
		Message: PushPayload{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   uuid.NewString(),
			OrderingKey: msg.orderingKey,
			PublishTime: p.now().UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return errors.Wrap(err, "encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint %s answered %d", p.endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Lifecycle event published",
		slog.String("transport", ProviderLocal),
		slog.String("post_id", event.PostID),
		slog.String("new_status", event.NewStatus),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
