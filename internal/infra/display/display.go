package display

import (
	"context"
)

//go:generate mockgen -source=display.go -destination=../../../test/unit/doubles/infra/display/display_mock.go -package=display -mock_names=Notifier=MockNotifier,Alerter=MockAlerter

// Notifier renders a system notification for an inbound push payload.
type Notifier interface {
	Show(ctx context.Context, title string, body string) error
}

// Alerter surfaces a registration outcome to the user. It is the blocking,
// foreground counterpart of Notifier.
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// DisplayError represents a failure to render a notification or alert.
type DisplayError struct {
	Message string
	Err     error
}

func (e *DisplayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}
