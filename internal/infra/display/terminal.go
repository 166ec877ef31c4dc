package display

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// TerminalAlerter writes registration outcomes to the given writer,
// typically stderr of the foreground agent invocation.
type TerminalAlerter struct {
	out io.Writer
}

func NewTerminalAlerter(out io.Writer) *TerminalAlerter {
	return &TerminalAlerter{out: out}
}

var _ Alerter = (*TerminalAlerter)(nil)

func (a *TerminalAlerter) Alert(_ context.Context, message string) error {
	if _, err := fmt.Fprintln(a.out, message); err != nil {
		return &DisplayError{Message: "writing alert", Err: err}
	}

	return nil
}

// LogAlerter reports outcomes to the log only. Used for scheduled
// re-registrations where there is no user to alert.
type LogAlerter struct{}

func NewLogAlerter() *LogAlerter {
	return &LogAlerter{}
}

var _ Alerter = (*LogAlerter)(nil)

func (a *LogAlerter) Alert(_ context.Context, message string) error {
	slog.Info("registration outcome", slog.String("message", message))
	return nil
}
