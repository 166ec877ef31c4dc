package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/infra/async"
	"pushbridge/internal/infra/cache"
)

const (
	_tokenCacheKeyPrefix  = "push_token:"
	_registrationDedupTTL = time.Minute
)

func NewPushTokenService(
	repository PushTokenRepository,
	tokenCache cache.Cache,
	broker async.InternalBroker,
) *SimplePushTokenService {
	return &SimplePushTokenService{
		repository: repository,
		tokenCache: tokenCache,
		broker:     broker,
	}
}

var _ PushTokenService = &SimplePushTokenService{}

type SimplePushTokenService struct {
	repository PushTokenRepository
	tokenCache cache.Cache
	broker     async.InternalBroker
}

func (s *SimplePushTokenService) RegisterToken(ctx context.Context, token string, platform string) error {
	if token == "" {
		return errors.New("token is required")
	}

	cacheKey := _tokenCacheKeyPrefix + token
	if cached, found := s.tokenCache.Get(ctx, cacheKey); found && cached == platform {
		slog.Debug("token registered recently, skipping upsert")
		return nil
	}

	builder := domain.NewPushTokenBuilder().WithToken(token)
	if platform != "" {
		builder = builder.WithPlatform(platform)
	}
	pushToken, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building push token: %w", err)
	}

	if err := s.repository.Upsert(ctx, pushToken); err != nil {
		slog.Error("registering push token", slog.Any("error", err))
		return fmt.Errorf("registering push token: %w", err)
	}

	s.tokenCache.Set(ctx, cacheKey, pushToken.Platform, _registrationDedupTTL)

	s.publishEvent(ctx, EventTokenRegistered, pushToken)

	slog.Info("push token registered",
		slog.String("token_id", pushToken.ID.String()),
		slog.String("platform", pushToken.Platform))

	return nil
}

func (s *SimplePushTokenService) AllTokens(ctx context.Context, pagination Pagination) ([]domain.PushToken, int, error) {
	tokens, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing push tokens", slog.Any("error", err))
		return nil, 0, fmt.Errorf("listing push tokens: %w", err)
	}

	return tokens, total, nil
}

func (s *SimplePushTokenService) UnregisterToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token is required")
	}

	err := s.repository.DeleteByToken(ctx, token)
	if errors.Is(err, ErrPushTokenNotFound) {
		slog.Warn("push token not found for unregistration")
		return ErrPushTokenNotFound
	}
	if err != nil {
		slog.Error("unregistering push token", slog.Any("error", err))
		return fmt.Errorf("unregistering push token: %w", err)
	}

	s.tokenCache.Delete(ctx, _tokenCacheKeyPrefix+token)

	s.publishEvent(ctx, EventTokenUnregistered, domain.PushToken{Token: token})

	slog.Info("push token unregistered")
	return nil
}

func (s *SimplePushTokenService) publishEvent(ctx context.Context, event string, pushToken domain.PushToken) {
	msg := async.BrokerMessage{
		Event: event,
		Value: pushToken,
	}
	if err := s.broker.Publish(ctx, BrokerTopicRegistrations, msg); err != nil {
		if !errors.Is(err, async.ErrTopicNotFound) {
			slog.Error("publishing registration event", slog.Any("error", err))
		}
	}
}
