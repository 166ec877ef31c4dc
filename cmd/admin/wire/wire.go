//go:build wireinject
// +build wireinject

package wire

import (
	"pushbridge/internal/admin/httpapi"
	"pushbridge/internal/admin/persistence"
	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/async"

	"github.com/google/wire"
)

var PushTokenServiceSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePubSubFactory,
	providePublisherFactory,
	provideCache,
	persistence.NewPushTokenRepository,
	wire.Bind(new(usecases.PushTokenRepository), new(*persistence.SimplePushTokenRepository)),
	usecases.NewPushTokenService,
	wire.Bind(new(usecases.PushTokenService), new(*usecases.SimplePushTokenService)),
)

func InitializeTokenUploadController(broker async.InternalBroker) (*httpapi.TokenUploadController, error) {
	wire.Build(
		PushTokenServiceSet,
		httpapi.NewTokenUploadController,
	)
	return nil, nil
}

func InitializePushTokenController(broker async.InternalBroker) (*httpapi.PushTokenController, error) {
	wire.Build(
		PushTokenServiceSet,
		httpapi.NewPushTokenController,
	)
	return nil, nil
}

func InitializeRegistrationFeedWebSocketController(broker async.InternalBroker) (*httpapi.RegistrationFeedWebSocketController, error) {
	wire.Build(
		httpapi.NewRegistrationFeedWebSocketController,
	)
	return nil, nil
}
