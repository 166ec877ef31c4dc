package usecases_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/async"
	usecases_mocks "pushbridge/test/unit/doubles/admin/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type mapCache struct {
	mu    sync.Mutex
	store map[string]any
}

func newMapCache() *mapCache {
	return &mapCache{store: make(map[string]any)}
}

func (c *mapCache) Get(ctx context.Context, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.store[key]
	return value, ok
}

func (c *mapCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
	return true
}

func (c *mapCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
}

func (c *mapCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}
	value, err := loader()
	if err != nil {
		return nil, err
	}
	c.Set(ctx, key, value, ttl)
	return value, nil
}

var _ = Describe("SimplePushTokenService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *usecases_mocks.MockPushTokenRepository
		tokenCache     *mapCache
		broker         *async.LocalBroker
		service        *usecases.SimplePushTokenService
		ctx            context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = usecases_mocks.NewMockPushTokenRepository(ctrl)
		tokenCache = newMapCache()
		broker = async.NewLocalBroker()
		ctx = context.Background()

		service = usecases.NewPushTokenService(mockRepository, tokenCache, broker)
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	Context("RegisterToken", func() {
		It("upserts the token with the default platform", func() {
			var stored domain.PushToken
			mockRepository.EXPECT().
				Upsert(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, pushToken domain.PushToken) error {
					stored = pushToken
					return nil
				})

			err := service.RegisterToken(ctx, "delivery-token-123", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(stored.Token).To(Equal("delivery-token-123"))
			Expect(stored.Platform).To(Equal("web"))
			Expect(stored.ID).ToNot(BeEmpty())
		})

		It("rejects an empty token", func() {
			err := service.RegisterToken(ctx, "", "web")

			Expect(err).To(MatchError("token is required"))
		})

		It("skips the upsert when the token was registered recently", func() {
			mockRepository.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(1)

			Expect(service.RegisterToken(ctx, "delivery-token-123", "web")).To(Succeed())
			Expect(service.RegisterToken(ctx, "delivery-token-123", "web")).To(Succeed())
		})

		It("publishes a registration event to the broker", func() {
			subscription, err := broker.Subscribe(usecases.BrokerTopicRegistrations)
			Expect(err).ToNot(HaveOccurred())

			mockRepository.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

			Expect(service.RegisterToken(ctx, "delivery-token-123", "web")).To(Succeed())

			var msg async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&msg))
			Expect(msg.Event).To(Equal(usecases.EventTokenRegistered))
		})

		It("propagates repository failures", func() {
			mockRepository.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("connection refused"))

			err := service.RegisterToken(ctx, "delivery-token-123", "web")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("registering push token"))
		})
	})

	Context("AllTokens", func() {
		It("returns tokens and total from the repository", func() {
			tokens := []domain.PushToken{{ID: "id-1", Token: "token-1", Platform: "web"}}
			mockRepository.EXPECT().
				FindAll(ctx, usecases.Pagination{Limit: 10, Offset: 0}).
				Return(tokens, 1, nil)

			result, total, err := service.AllTokens(ctx, usecases.Pagination{Limit: 10})

			Expect(err).ToNot(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(result).To(HaveLen(1))
		})
	})

	Context("UnregisterToken", func() {
		It("deletes the token and clears the cache entry", func() {
			tokenCache.Set(ctx, "push_token:delivery-token-123", "web", time.Minute)
			mockRepository.EXPECT().DeleteByToken(ctx, "delivery-token-123").Return(nil)

			err := service.UnregisterToken(ctx, "delivery-token-123")

			Expect(err).ToNot(HaveOccurred())
			_, found := tokenCache.Get(ctx, "push_token:delivery-token-123")
			Expect(found).To(BeFalse())
		})

		It("returns not found for unknown tokens", func() {
			mockRepository.EXPECT().DeleteByToken(ctx, "token-missing").Return(usecases.ErrPushTokenNotFound)

			err := service.UnregisterToken(ctx, "token-missing")

			Expect(err).To(MatchError(usecases.ErrPushTokenNotFound))
		})
	})
})
