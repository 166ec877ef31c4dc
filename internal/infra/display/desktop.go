package display

import (
	"context"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier renders notifications through the host's notification
// facility (notify-send/D-Bus on Linux, toast on Windows, etc).
type DesktopNotifier struct {
	appName string
}

func NewDesktopNotifier(appName string) *DesktopNotifier {
	return &DesktopNotifier{appName: appName}
}

var _ Notifier = (*DesktopNotifier)(nil)

func (n *DesktopNotifier) Show(_ context.Context, title string, body string) error {
	beeep.AppName = n.appName
	if err := beeep.Notify(title, body, ""); err != nil {
		return &DisplayError{Message: "showing notification", Err: err}
	}

	return nil
}
