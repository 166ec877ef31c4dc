package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"pushbridge/internal/agent/communication"
	"pushbridge/internal/infra/display"
	"pushbridge/internal/infra/messaging"
)

const (
	_msgRegistrationRequested = "Token requested and dispatched to the admin backend."
	_msgPermissionDenied      = "Notification permission denied. No token was issued."
)

var _ RegistrationService = (*SimpleRegistrationService)(nil)

// SimpleRegistrationService performs a single registration attempt: request a
// delivery token from the transport and dispatch it to the admin backend.
// The dispatch is fire-and-forget; the success alert reports that the upload
// was started, not that it completed. Concurrent invocations run
// independently, each producing its own upload.
type SimpleRegistrationService struct {
	transport messaging.Transport
	uploader  communication.Uploader
	alerter   display.Alerter
	vapidKey  string
}

func NewSimpleRegistrationService(
	transport messaging.Transport,
	uploader communication.Uploader,
	alerter display.Alerter,
	vapidKey string,
) *SimpleRegistrationService {
	return &SimpleRegistrationService{
		transport: transport,
		uploader:  uploader,
		alerter:   alerter,
		vapidKey:  vapidKey,
	}
}

func (s *SimpleRegistrationService) RequestRegistration(ctx context.Context) error {
	token, err := s.transport.Token(ctx, s.vapidKey)
	if err != nil {
		s.alert(ctx, fmt.Sprintf("An error occurred while retrieving token: %v", err))
		return fmt.Errorf("retrieving token: %w", err)
	}

	if token == "" {
		s.alert(ctx, _msgPermissionDenied)
		return nil
	}

	// The upload must outlive the caller, so it runs detached from the
	// request context. Failures are logged, never surfaced.
	uploadCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.uploader.Upload(uploadCtx, token); err != nil {
			slog.Warn("uploading delivery token", slog.Any("error", err))
			return
		}
		slog.Info("delivery token uploaded")
	}()

	s.alert(ctx, _msgRegistrationRequested)
	return nil
}

func (s *SimpleRegistrationService) alert(ctx context.Context, message string) {
	if err := s.alerter.Alert(ctx, message); err != nil {
		slog.Error("displaying registration alert", slog.Any("error", err))
	}
}
