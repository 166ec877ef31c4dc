package usecases

import (
	"context"
	"log/slog"
	"time"

	"pushbridge/internal/infra/async"

	"github.com/robfig/cron/v3"
)

// RefreshWorker re-runs the registration flow on a cron schedule so the
// admin backend always holds a current delivery token. Transport tokens
// rotate server-side; a stale one silently stops receiving pushes.
type RefreshWorker struct {
	schedule   string
	service    RegistrationService
	cronParser cron.Parser
}

func NewRefreshWorker(schedule string, service RegistrationService) *RefreshWorker {
	return &RefreshWorker{
		schedule:   schedule,
		service:    service,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

var _ async.Worker = (*RefreshWorker)(nil)

func (w *RefreshWorker) Run(ctx context.Context, done func()) {
	defer done()

	sched, err := w.cronParser.Parse(w.schedule)
	if err != nil {
		slog.Error("parsing refresh schedule",
			slog.String("schedule", w.schedule),
			slog.Any("error", err))
		return
	}

	slog.Info("refresh worker started", slog.String("schedule", w.schedule))

	for {
		next := sched.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("refresh worker cancelled")
			return
		case <-timer.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	slog.Info("scheduled registration refresh", slog.Time("time", time.Now()))
	if err := w.service.RequestRegistration(ctx); err != nil {
		slog.Error("refreshing registration", slog.Any("error", err))
	}
}

func (w *RefreshWorker) Shutdown() {
	slog.Info("refresh worker shutdown")
}
