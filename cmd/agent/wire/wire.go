//go:build wireinject
// +build wireinject

package wire

import (
	"pushbridge/internal/agent/communication"
	"pushbridge/internal/agent/usecases"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/display"
	"pushbridge/internal/infra/messaging"

	"github.com/google/wire"
)

var RegistrationServiceSet = wire.NewSet(
	provideAppConfig,
	provideTransport,
	wire.Bind(new(messaging.Transport), new(*messaging.FCMTransport)),
	provideUploader,
	wire.Bind(new(communication.Uploader), new(*communication.TokenUploader)),
	provideVapidKey,
	usecases.NewSimpleRegistrationService,
)

func InitializeRegistrationService(alerter display.Alerter) (*usecases.SimpleRegistrationService, error) {
	wire.Build(
		RegistrationServiceSet,
	)
	return nil, nil
}

func InitializeDeliveryWorker(broker async.InternalBroker) (*usecases.DeliveryWorker, error) {
	wire.Build(
		provideNotifier,
		wire.Bind(new(display.Notifier), new(*display.DesktopNotifier)),
		usecases.NewDeliveryWorker,
	)
	return nil, nil
}
