package usecases_test

import (
	"context"

	"pushbridge/internal/agent/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type stubRegistrationService struct{}

func (s *stubRegistrationService) RequestRegistration(ctx context.Context) error {
	return nil
}

var _ = Describe("RefreshWorker", func() {
	var (
		ctrl   *gomock.Controller
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
		ctrl.Finish()
	})

	When("the schedule is invalid", func() {
		It("stops immediately", func() {
			worker := usecases.NewRefreshWorker("not a cron expression", &stubRegistrationService{})

			running := make(chan struct{})
			go worker.Run(ctx, func() { close(running) })

			Eventually(running).Should(BeClosed())
		})
	})

	When("the schedule is valid", func() {
		It("keeps waiting until cancelled", func() {
			worker := usecases.NewRefreshWorker("0 3 * * *", &stubRegistrationService{})

			running := make(chan struct{})
			go worker.Run(ctx, func() { close(running) })

			Consistently(running).ShouldNot(BeClosed())
			cancel()
			Eventually(running).Should(BeClosed())
		})
	})
})
