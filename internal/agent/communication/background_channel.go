package communication

import (
	"context"
	"log/slog"

	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/mqtt"
)

const (
	// BrokerTopicPushPayload carries raw push payloads from the background
	// channel to the delivery worker.
	BrokerTopicPushPayload async.BrokerTopicName = "push_payloads"

	_qos byte = 0
)

var _ async.Worker = &BackgroundChannel{}

// BackgroundChannel bridges the push transport's background delivery topic
// onto the internal broker. It stays subscribed for the lifetime of the
// agent and forwards every inbound payload untouched.
type BackgroundChannel struct {
	mqttClient mqtt.Client
	broker     async.InternalBroker
	topic      string
}

func NewBackgroundChannel(
	mqttClient mqtt.Client,
	broker async.InternalBroker,
	topic string,
) *BackgroundChannel {
	return &BackgroundChannel{
		mqttClient: mqttClient,
		broker:     broker,
		topic:      topic,
	}
}

func (c *BackgroundChannel) Run(ctx context.Context, done func()) {
	defer done()

	if err := c.mqttClient.Subscribe(c.topic, _qos, c.messageHandler(ctx)); err != nil {
		slog.Error("subscribing to background channel", slog.Any("error", err))
		return
	}
	slog.Info("background channel subscribed", slog.String("topic", c.topic))

	<-ctx.Done()
	slog.Warn("background channel cancelled")
}

func (c *BackgroundChannel) messageHandler(ctx context.Context) mqtt.MessageHandler {
	return func(client mqtt.Client, msg mqtt.Message) {
		slog.Debug("push payload received",
			slog.String("topic", msg.Topic()),
			slog.Uint64("message_id", uint64(msg.MessageID())),
		)

		brokerMsg := async.BrokerMessage{
			Event: "push_payload",
			Value: msg.Payload(),
		}
		if err := c.broker.Publish(ctx, BrokerTopicPushPayload, brokerMsg); err != nil {
			slog.Error("publishing push payload", slog.Any("error", err))
		}
	}
}

func (c *BackgroundChannel) Shutdown() {
	c.mqttClient.Disconnect()
}
