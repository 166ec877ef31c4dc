package usecases

import (
	"context"
	"errors"

	"pushbridge/internal/admin/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/admin/usecases/repository_port_mock.go -package=usecases -mock_names=PushTokenRepository=MockPushTokenRepository

var ErrPushTokenNotFound = errors.New("push token not found")

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type PushTokenRepository interface {
	Upsert(context.Context, domain.PushToken) error
	FindAll(context.Context, Pagination) ([]domain.PushToken, int, error)
	DeleteByToken(context.Context, string) error
}
