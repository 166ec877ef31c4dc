package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"pushbridge/internal/agent/communication"
	"pushbridge/internal/agent/dto"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/display"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	_metricKeyDisplayed = "displayed"
	_metricKeyDropped   = "dropped"
)

// DeliveryWorker consumes push payloads from the internal broker and renders
// a system notification for each one. Payloads without a notification block
// are dropped, never fatal.
type DeliveryWorker struct {
	broker         async.InternalBroker
	subscription   async.Subscription
	notifier       display.Notifier
	metricCounters map[string]metric.Float64Counter
}

func NewDeliveryWorker(
	broker async.InternalBroker,
	notifier display.Notifier,
) (*DeliveryWorker, error) {
	worker := &DeliveryWorker{
		broker:         broker,
		notifier:       notifier,
		metricCounters: make(map[string]metric.Float64Counter),
	}

	if err := worker.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("initializing metrics: %w", err)
	}

	return worker, nil
}

var _ async.Worker = (*DeliveryWorker)(nil)

func (w *DeliveryWorker) Run(ctx context.Context, done func()) {
	defer done()

	slog.Info("starting delivery worker", slog.String("topic", string(communication.BrokerTopicPushPayload)))

	subscription, err := w.broker.Subscribe(communication.BrokerTopicPushPayload)
	if err != nil {
		slog.Error("failed to subscribe to topic",
			slog.String("topic", string(communication.BrokerTopicPushPayload)),
			slog.Any("error", err))
		return
	}

	w.subscription = subscription

	for {
		select {
		case <-ctx.Done():
			slog.Info("delivery worker cancelled")
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			w.handlePayload(ctx, msg)
		}
	}
}

func (w *DeliveryWorker) Shutdown() {
	slog.Info("delivery worker shutdown")
	if w.subscription.ID != "" {
		if err := w.broker.Unsubscribe(communication.BrokerTopicPushPayload, w.subscription); err != nil {
			slog.Error("failed to unsubscribe during shutdown", slog.Any("error", err))
		}
	}
}

func (w *DeliveryWorker) handlePayload(ctx context.Context, msg async.BrokerMessage) {
	ctx, span := otel.Tracer("delivery-worker").Start(ctx, "handle-payload")
	defer span.End()

	span.SetAttributes(attribute.String("event.type", msg.Event))

	raw, ok := msg.Value.([]byte)
	if !ok {
		slog.Warn("payload is not raw bytes", slog.Any("value", msg.Value))
		w.recordDeliveryMetric(ctx, _metricKeyDropped, "invalid_value")
		return
	}

	payload, err := dto.ParsePushPayload(raw)
	if err != nil {
		slog.Warn("parsing push payload", slog.Any("error", err))
		w.recordDeliveryMetric(ctx, _metricKeyDropped, "malformed")
		return
	}

	if payload.Notification == nil {
		slog.Warn("push payload has no notification block")
		w.recordDeliveryMetric(ctx, _metricKeyDropped, "no_notification")
		return
	}

	if err := w.notifier.Show(ctx, payload.Notification.Title, payload.Notification.Body); err != nil {
		slog.Error("showing notification",
			slog.String("title", payload.Notification.Title),
			slog.Any("error", err))
		w.recordDeliveryMetric(ctx, _metricKeyDropped, "display_error")
		return
	}

	w.recordDeliveryMetric(ctx, _metricKeyDisplayed, "success")
	slog.Info("notification displayed", slog.String("title", payload.Notification.Title))
}

func (w *DeliveryWorker) initializeMetrics() error {
	meter := otel.Meter("delivery-worker")

	displayedCounter, err := meter.Float64Counter(
		"pushbridge_notifications_displayed_total",
		metric.WithDescription("Total number of notifications displayed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating displayed counter: %w", err)
	}

	droppedCounter, err := meter.Float64Counter(
		"pushbridge_notifications_dropped_total",
		metric.WithDescription("Total number of push payloads dropped"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating dropped counter: %w", err)
	}

	w.metricCounters[_metricKeyDisplayed] = displayedCounter
	w.metricCounters[_metricKeyDropped] = droppedCounter
	return nil
}

func (w *DeliveryWorker) recordDeliveryMetric(ctx context.Context, key string, reason string) {
	if counter, exists := w.metricCounters[key]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("reason", reason),
			semconv.ServiceNameKey.String("pushbridge-agent"),
		))
	}
}
