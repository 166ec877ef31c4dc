package communication_test

import (
	"context"

	"pushbridge/internal/agent/communication"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/mqtt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeMQTTClient struct {
	subscribedTopic string
	callback        mqtt.MessageHandler
	disconnected    bool
}

func (c *fakeMQTTClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) error {
	c.subscribedTopic = topic
	c.callback = callback
	return nil
}

func (c *fakeMQTTClient) Publish(topic string, msg any) error { return nil }

func (c *fakeMQTTClient) Disconnect() { c.disconnected = true }

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

var _ = Describe("BackgroundChannel", func() {
	var (
		client  *fakeMQTTClient
		broker  *async.LocalBroker
		channel *communication.BackgroundChannel
		ctx     context.Context
		cancel  context.CancelFunc
	)

	BeforeEach(func() {
		client = &fakeMQTTClient{}
		broker = async.NewLocalBroker()
		channel = communication.NewBackgroundChannel(client, broker, "pushbridge/103953800507/messages")
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
		broker.Stop()
	})

	It("forwards inbound payloads to the internal broker", func() {
		subscription, err := broker.Subscribe(communication.BrokerTopicPushPayload)
		Expect(err).ToNot(HaveOccurred())

		running := make(chan struct{})
		go channel.Run(ctx, func() { close(running) })

		Eventually(func() string { return client.subscribedTopic }).Should(Equal("pushbridge/103953800507/messages"))

		payload := []byte(`{"notification":{"title":"T","body":"B"}}`)
		client.callback(client, &fakeMessage{topic: client.subscribedTopic, payload: payload})

		var received async.BrokerMessage
		Eventually(subscription.Receiver).Should(Receive(&received))
		Expect(received.Event).To(Equal("push_payload"))
		Expect(received.Value).To(Equal(payload))

		cancel()
		Eventually(running).Should(BeClosed())
	})

	It("disconnects the client on shutdown", func() {
		channel.Shutdown()

		Expect(client.disconnected).To(BeTrue())
	})
})
