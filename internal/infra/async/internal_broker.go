package async

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

// InternalBroker is the in-process fan-out bus connecting event producers
// (the MQTT background channel, the token intake API) to their workers.
type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriberNotFound = errors.New("subscriber not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		subscribers: make(map[BrokerTopicName][]*subscriber),
	}
}

type LocalBroker struct {
	mu          sync.RWMutex
	subscribers map[BrokerTopicName][]*subscriber
}

// subscriber guards its channel with its own lock so a close never races a
// concurrent send.
type subscriber struct {
	mu           sync.RWMutex
	closed       bool
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	subscription := Subscription{ID: uuid.NewString(), Receiver: make(chan BrokerMessage)}

	b.mu.Lock()
	b.subscribers[topic] = append(b.subscribers[topic], &subscriber{subscription: subscription})
	b.mu.Unlock()

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	subscribers, ok := b.subscribers[topic]
	if !ok {
		b.mu.Unlock()
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscribers, func(s *subscriber) bool { return s.subscription.ID == subscription.ID })
	b.mu.Unlock()
	if index < 0 {
		return ErrSubscriberNotFound
	}

	subscribers[index].safeClose()

	return nil
}

func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	subscribers, ok := b.subscribers[topic]
	snapshot := slices.Clone(subscribers)
	b.mu.RUnlock()
	if !ok {
		return ErrTopicNotFound
	}

	go b.publish(snapshot, msg)

	return nil
}

func (b *LocalBroker) publish(topicSubscribers []*subscriber, msg BrokerMessage) {
	for _, s := range topicSubscribers {
		s.send(msg)
	}
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, subscribers := range b.subscribers {
		for _, s := range subscribers {
			s.safeClose()
		}
	}
}

func (s *subscriber) send(msg BrokerMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	s.subscription.Receiver <- msg
}

func (s *subscriber) safeClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.subscription.Receiver)
}
