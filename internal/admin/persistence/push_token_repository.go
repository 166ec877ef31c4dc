package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/admin/dto"
	"pushbridge/internal/admin/persistence/internal"
	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/pubsub"
	"pushbridge/internal/infra/sql"
)

const (
	// PubSubTopicRegistrations carries registration events to downstream
	// consumers outside this process.
	PubSubTopicRegistrations pubsub.Topic = "token_registrations"
)

func NewPushTokenRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimplePushTokenRepository, error) {
	publisher, err := publisherFactory.New(PubSubTopicRegistrations, &dto.TokenRegistered{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := orm.AutoMigrate(&internal.PushToken{}); err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePushTokenRepository{
		orm:       orm,
		publisher: publisher,
	}, nil
}

var _ usecases.PushTokenRepository = (*SimplePushTokenRepository)(nil)

type SimplePushTokenRepository struct {
	orm       sql.ORM
	publisher pubsub.Publisher
}

func (r *SimplePushTokenRepository) Upsert(ctx context.Context, pushToken domain.PushToken) error {
	entity := internal.FromPushToken(pushToken)

	var existing internal.PushToken
	err := r.orm.WithContext(ctx).
		Where("token = ?", entity.Token).
		First(&existing).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating push token: %w", err)
		}
		r.publishRegistration(ctx, pushToken)
		slog.Info("created push token",
			slog.String("token_id", pushToken.ID.String()),
			slog.String("platform", pushToken.Platform))
		return nil
	}

	if err != nil {
		return fmt.Errorf("checking existing push token: %w", err)
	}

	existing.Platform = entity.Platform
	existing.UpdatedAt = entity.UpdatedAt
	if err := r.orm.WithContext(ctx).Save(&existing).Error(); err != nil {
		return fmt.Errorf("updating push token: %w", err)
	}

	r.publishRegistration(ctx, existing.ToDomain())

	slog.Info("updated push token",
		slog.String("token_id", existing.ID),
		slog.String("platform", existing.Platform))

	return nil
}

func (r *SimplePushTokenRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.PushToken, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.PushToken{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.PushToken
	err = r.orm.
		WithContext(ctx).
		Order("created_at desc").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.PushToken, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimplePushTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	var existing internal.PushToken
	err := r.orm.WithContext(ctx).
		Where("token = ?", token).
		First(&existing).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrPushTokenNotFound
	}

	if err != nil {
		return fmt.Errorf("finding push token: %w", err)
	}

	if err := r.orm.WithContext(ctx).Delete(&existing).Error(); err != nil {
		return fmt.Errorf("deleting push token: %w", err)
	}

	slog.Info("deleted push token", slog.String("token_id", existing.ID))
	return nil
}

func (r *SimplePushTokenRepository) publishRegistration(ctx context.Context, pushToken domain.PushToken) {
	event := &dto.TokenRegistered{
		TokenID:  pushToken.ID.String(),
		Token:    pushToken.Token,
		Platform: pushToken.Platform,
		At:       pushToken.UpdatedAt,
	}
	if err := r.publisher.Publish(ctx, pubsub.Key(pushToken.ID), event); err != nil {
		slog.Error("publishing registration event", slog.Any("error", err))
	}
}
