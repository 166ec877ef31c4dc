package messaging

import (
	"context"
)

//go:generate mockgen -source=transport.go -destination=../../../test/unit/doubles/infra/messaging/transport_mock.go -package=messaging -mock_names=Transport=MockTransport

// Transport is the push-messaging boundary of the agent. Token registers
// this installation under the configured application identity, scoped to the
// given public verification (VAPID) key, and returns the delivery token the
// transport issued. An empty token with a nil error means the transport
// declined the registration (permission not granted); that is a valid
// outcome, not an error. Tokens are owned by the transport: a repeated call
// may return the same or a different value and nothing here caches them.
type Transport interface {
	Token(ctx context.Context, vapidKey string) (string, error)
}

// TransportError wraps a failure talking to the push-messaging transport.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
