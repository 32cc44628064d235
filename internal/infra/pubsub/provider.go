// Package pubsub publishes committed listing lifecycle events to a message queue.
package pubsub

import (
	"context"
	"log/slog"

	"mescontacts/config"
	"mescontacts/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Providers accepted in pubsub.provider.
const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	p.logger.DebugContext(ctx, "Lifecycle event dropped",
		slog.String("transport", ProviderNoop),
		slog.String("post_id", event.PostID),
		slog.String("new_status", event.NewStatus),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport named by pubsub.provider. An empty
// or missing section disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil {
		cfg = &config.PubSubConfig{Provider: ProviderNoop}
	}

	if err := validatePubSub(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Lifecycle event publisher ready", slog.String("transport", transportName(cfg)))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func transportName(cfg *config.PubSubConfig) string {
	if cfg.Provider == "" {
		return ProviderNoop
	}

	return cfg.Provider
}

func validatePubSub(cfg *config.PubSubConfig) error {
	switch transportName(cfg) {
	case ProviderNoop:
		return nil
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case ProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch transportName(cfg) {
	case ProviderLocal:
		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case ProviderGoogle:
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return &noopPublisher{logger: logger}, nil
	}
}
