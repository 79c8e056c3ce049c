// Package worker processes catalog reload messages from Pub/Sub.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"

	"github.com/fitadvisor/fitadvisor/internal/catalog"
)

// Reloader rebuilds the catalog snapshot from its sources.
type Reloader interface {
	Reload(ctx context.Context) *catalog.Snapshot
	Snapshot() *catalog.Snapshot
}

// ReloadListener consumes catalog reload messages and triggers snapshot
// rebuilds. The dataset is republished upstream a few times a year, so a
// message beats restarting the service.
type ReloadListener struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	loader           Reloader
	logger           zerolog.Logger
}

// ReloadListenerConfig holds configuration for the reload listener.
type ReloadListenerConfig struct {
	ProjectID        string
	SubscriptionName string
	Loader           Reloader
	Logger           zerolog.Logger
}

// ReloadMessage represents a catalog maintenance job message.
type ReloadMessage struct {
	JobType string `json:"job_type"`
}

// Job types accepted on the reload subscription.
const (
	JobCatalogReload = "catalog_reload"
	JobHealthCheck   = "health_check"
)

// NewReloadListener creates a new reload listener.
func NewReloadListener(ctx context.Context, cfg ReloadListenerConfig) (*ReloadListener, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)

	// Configure receive settings.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 2
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &ReloadListener{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		loader:           cfg.Loader,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing Pub/Sub messages. Blocks until ctx is cancelled.
func (l *ReloadListener) Start(ctx context.Context) error {
	l.logger.Info().
		Str("subscription", l.subscriptionName).
		Msg("starting catalog reload listener")

	return l.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		l.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (l *ReloadListener) Close() error {
	return l.client.Close()
}

func (l *ReloadListener) handleMessage(ctx context.Context, msg *pubsub.Message) {
	startTime := time.Now()

	logger := l.logger.With().
		Str("message_id", msg.ID).
		Str("publish_time", msg.PublishTime.Format(time.RFC3339)).
		Logger()

	logger.Debug().Msg("received pubsub message")

	var reloadMsg ReloadMessage
	if err := json.Unmarshal(msg.Data, &reloadMsg); err != nil {
		logger.Error().Err(err).Msg("failed to parse message")
		msg.Nack()
		return
	}

	if err := l.runJob(ctx, reloadMsg.JobType, logger); err != nil {
		logger.Error().Err(err).Msg("job failed")
		msg.Nack()
		return
	}

	logger.Info().
		Str("job_type", reloadMsg.JobType).
		Dur("duration", time.Since(startTime)).
		Msg("job completed successfully")

	msg.Ack()
}

// runJob dispatches a single job. Unknown job types are treated as
// successful so the message is acked instead of redelivered forever.
func (l *ReloadListener) runJob(ctx context.Context, jobType string, logger zerolog.Logger) error {
	switch jobType {
	case JobCatalogReload:
		return l.handleCatalogReload(ctx)
	case JobHealthCheck:
		return l.handleHealthCheck()
	default:
		logger.Warn().Str("job_type", jobType).Msg("unknown job type")
		return nil
	}
}

func (l *ReloadListener) handleCatalogReload(ctx context.Context) error {
	snapshot := l.loader.Reload(ctx)

	l.logger.Info().
		Str("source", snapshot.Source).
		Int("exercises", snapshot.Len()).
		Bool("degraded", snapshot.Degraded).
		Msg("catalog reload completed")

	if snapshot.Degraded {
		return fmt.Errorf("catalog reload fell back to sample data")
	}
	return nil
}

func (l *ReloadListener) handleHealthCheck() error {
	snapshot := l.loader.Snapshot()
	if snapshot == nil || snapshot.Len() == 0 {
		return fmt.Errorf("catalog snapshot is empty")
	}

	l.logger.Debug().
		Int("exercises", snapshot.Len()).
		Msg("health check passed")
	return nil
}
