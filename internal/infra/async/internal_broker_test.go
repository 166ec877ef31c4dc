package async_test

import (
	"context"
	"sync"

	"pushbridge/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var message async.BrokerMessage
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("a new subscriber is added to a topic", func() {
			BeforeEach(func() {
				topic = "push-payloads"
			})

			It("should deliver published messages to it", func() {
				subscription, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("multiple subscribers share a topic", func() {
			var subscription2 async.Subscription
			BeforeEach(func() {
				topic = "push-payloads"
			})

			It("should deliver the message to every subscriber", func() {
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{})

				Eventually(subscription.Receiver).Should(Receive(&async.BrokerMessage{}))
				Eventually(subscription2.Receiver).Should(Receive(&async.BrokerMessage{}))
			})
		})

		When("subscribers register concurrently", func() {
			BeforeEach(func() {
				topic = "push-payloads"
			})

			It("should keep every subscription", func() {
				const total = 16
				subscriptions := make(chan async.Subscription, total)

				var wg sync.WaitGroup
				for range total {
					wg.Add(1)
					go func() {
						defer wg.Done()
						s, err := broker.Subscribe(topic)
						Expect(err).NotTo(HaveOccurred())
						subscriptions <- s
					}()
				}
				wg.Wait()
				close(subscriptions)

				broker.Publish(ctx, topic, async.BrokerMessage{Event: "push_payload"})

				var received sync.WaitGroup
				for s := range subscriptions {
					received.Add(1)
					go func(s async.Subscription) {
						defer GinkgoRecover()
						defer received.Done()
						Eventually(s.Receiver).Should(Receive(HaveField("Event", "push_payload")))
					}(s)
				}
				received.Wait()
			})
		})

		When("a new message arrives", func() {
			BeforeEach(func() {
				topic = "token-registrations"
				subscription, _ = broker.Subscribe(topic)
				message = async.BrokerMessage{
					Event: "token_registered",
					Value: "delivery-token-1",
				}
			})

			It("should receive the message from the channel", func() {
				broker.Publish(context.TODO(), topic, message)

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "token_registered"),
					HaveField("Value", "delivery-token-1"),
				)))
			})
		})

		When("the broker stops", func() {
			BeforeEach(func() {
				topic = "token-registrations"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver channel", func() {
				broker.Stop()

				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})

	Context("Unsubscribe", func() {
		When("the topic does not exist", func() {
			It("should return an error", func() {
				err := broker.Unsubscribe("unknown-topic", async.Subscription{ID: "nope"})

				Expect(err).To(MatchError(async.ErrTopicNotFound))
			})
		})

		When("the subscription exists", func() {
			BeforeEach(func() {
				topic = "push-payloads"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should close the receiver channel", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).NotTo(HaveOccurred())
				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})

		When("messages are published while a subscriber leaves", func() {
			var subscription2 async.Subscription

			BeforeEach(func() {
				topic = "push-payloads"
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)
			})

			It("should keep delivering to the remaining subscriber", func() {
				for _, s := range []async.Subscription{subscription, subscription2} {
					go func(s async.Subscription) {
						for range s.Receiver {
						}
					}(s)
				}

				done := make(chan struct{})
				go func() {
					defer GinkgoRecover()
					defer close(done)
					for range 50 {
						broker.Publish(ctx, topic, async.BrokerMessage{Event: "push_payload"})
					}
				}()

				Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

				Eventually(done).Should(BeClosed())
				Eventually(subscription.Receiver).Should(BeClosed())
			})
		})
	})
})
