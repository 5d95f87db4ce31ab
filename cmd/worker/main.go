package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/pressroom/pkg/app"
	"github.com/ghuser/pressroom/pkg/cache"
	"github.com/ghuser/pressroom/pkg/config"
	"github.com/ghuser/pressroom/pkg/database"
	"github.com/ghuser/pressroom/pkg/events"
	"github.com/ghuser/pressroom/pkg/logger"
	"github.com/ghuser/pressroom/pkg/telemetry"
	orderEvents "github.com/ghuser/pressroom/services/orders/domain/events"
	"github.com/ghuser/pressroom/services/orders/infrastructure/merge"
	"github.com/ghuser/pressroom/services/orders/infrastructure/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Config:   cfg,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	merger, err := merge.NewMerger(a.Config.MergedDir)
	if err != nil {
		return err
	}
	notifier := notify.NewWebhookNotifier(a.Config.WebhookURL)

	subscriptions := map[string]func(context.Context, *message.Message) error{
		orderEvents.TopicOrderCreated:       handleOrderCreated(a),
		orderEvents.TopicMergeRequested:     handleMergeRequested(a, merger),
		orderEvents.TopicBatchClaimed:       handleBatchClaimed(a, notifier),
		orderEvents.TopicBatchStatusChanged: handleBatchStatusChanged(a, notifier),
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleOrderCreated returns a handler for order.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis order cache so subsequent lookups by source order id are
// served from cache.
func handleOrderCreated(a *app.Application) func(context.Context, *message.Message) error {
	orderCache := cache.NewOrderCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := orderCache.Set(ctx, &cache.CachedOrder{
			ID:            evt.OrderID,
			SourceOrderID: evt.SourceOrderID,
			AccountRef:    evt.AccountRef,
			CreatedAt:     evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for order.created",
				"order_id", evt.OrderID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"order_id", evt.OrderID, "source_order_id", evt.SourceOrderID)
		}

		return nil
	}
}

// handleMergeRequested runs the PDF merge. Merge failures are terminal: the
// requester got its acknowledgement long ago and nothing downstream waits on
// the artifact, so a failed job is logged and acked, not redelivered forever.
func handleMergeRequested(a *app.Application, merger *merge.Merger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.MergeRequestedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		path, err := merger.Merge(ctx, evt)
		if err != nil {
			a.Logger.ErrorContext(ctx, "pdf merge failed",
				"job_id", evt.EventID, "documents", len(evt.Documents), "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "pdf merge completed",
			"job_id", evt.EventID, "documents", len(evt.Documents), "path", path)
		return nil
	}
}

// handleBatchClaimed notifies the downstream consumer that a batch came into
// existence. Delivery is best-effort.
func handleBatchClaimed(a *app.Application, notifier *notify.WebhookNotifier) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.BatchClaimedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := notifier.Notify(ctx, evt); err != nil {
			a.Logger.WarnContext(ctx, "batch claimed notification failed",
				"batch_id", evt.BatchID, "error", err)
		}
		return nil
	}
}

// handleBatchStatusChanged notifies the downstream consumer of a batch-wide
// status change. Delivery is best-effort.
func handleBatchStatusChanged(a *app.Application, notifier *notify.WebhookNotifier) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.BatchStatusChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := notifier.Notify(ctx, evt); err != nil {
			a.Logger.WarnContext(ctx, "batch status notification failed",
				"batch_id", evt.BatchID, "item_status", evt.ItemStatus, "error", err)
		}
		return nil
	}
}
