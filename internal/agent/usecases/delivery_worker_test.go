package usecases_test

import (
	"context"

	"pushbridge/internal/agent/communication"
	"pushbridge/internal/agent/usecases"
	"pushbridge/internal/infra/async"
	display_mocks "pushbridge/test/unit/doubles/infra/display"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DeliveryWorker", func() {
	var (
		ctrl         *gomock.Controller
		mockNotifier *display_mocks.MockNotifier
		broker       *async.LocalBroker
		worker       *usecases.DeliveryWorker
		ctx          context.Context
		cancel       context.CancelFunc
		running      chan struct{}
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockNotifier = display_mocks.NewMockNotifier(ctrl)
		broker = async.NewLocalBroker()
		ctx, cancel = context.WithCancel(context.Background())

		var err error
		worker, err = usecases.NewDeliveryWorker(broker, mockNotifier)
		Expect(err).ToNot(HaveOccurred())

		running = make(chan struct{})
		go worker.Run(ctx, func() { close(running) })

		// The subscription must exist before the broker accepts publishes.
		Eventually(func() error {
			return broker.Publish(ctx, communication.BrokerTopicPushPayload, async.BrokerMessage{Event: "probe"})
		}).Should(Succeed())
	})

	AfterEach(func() {
		cancel()
		Eventually(running).Should(BeClosed())
		broker.Stop()
		ctrl.Finish()
	})

	publish := func(raw string) {
		msg := async.BrokerMessage{Event: "push_payload", Value: []byte(raw)}
		Expect(broker.Publish(ctx, communication.BrokerTopicPushPayload, msg)).To(Succeed())
	}

	When("a payload carries a notification block", func() {
		It("renders exactly one notification with its title and body", func() {
			shown := make(chan [2]string, 1)
			mockNotifier.EXPECT().
				Show(gomock.Any(), "T", "B").
				DoAndReturn(func(_ context.Context, title, body string) error {
					shown <- [2]string{title, body}
					return nil
				}).
				Times(1)

			publish(`{"notification":{"title":"T","body":"B"}}`)

			Eventually(shown).Should(Receive(Equal([2]string{"T", "B"})))
		})
	})

	When("a payload has no notification block", func() {
		It("drops it without rendering", func() {
			publish(`{"data":{"key":"value"}}`)

			Consistently(running).ShouldNot(BeClosed())
		})
	})

	When("a payload is not valid JSON", func() {
		It("drops it without rendering", func() {
			publish(`{broken`)

			Consistently(running).ShouldNot(BeClosed())
		})
	})
})
