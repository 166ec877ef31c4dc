package usecases

import (
	"context"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/infra/async"
)

//go:generate mockgen -source=api.go -destination=../../../test/unit/doubles/admin/usecases/api_mock.go -package=usecases -mock_names=PushTokenService=MockPushTokenService

const (
	// BrokerTopicRegistrations feeds the websocket registration stream.
	BrokerTopicRegistrations async.BrokerTopicName = "token_registrations"

	EventTokenRegistered   = "token_registered"
	EventTokenUnregistered = "token_unregistered"
)

type PushTokenService interface {
	RegisterToken(ctx context.Context, token string, platform string) error
	AllTokens(ctx context.Context, pagination Pagination) ([]domain.PushToken, int, error)
	UnregisterToken(ctx context.Context, token string) error
}
