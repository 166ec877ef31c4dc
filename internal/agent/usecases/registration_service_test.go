package usecases_test

import (
	"context"
	"errors"
	"fmt"

	"pushbridge/internal/agent/usecases"
	communication_mocks "pushbridge/test/unit/doubles/agent/communication"
	display_mocks "pushbridge/test/unit/doubles/infra/display"
	messaging_mocks "pushbridge/test/unit/doubles/infra/messaging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomegatypes "github.com/onsi/gomega/types"
	"go.uber.org/mock/gomock"
)

// matchGomega adapts a gomega matcher to the gomock.Matcher interface so it
// can be used as an argument matcher in EXPECT() calls.
type matchGomega struct{ m gomegatypes.GomegaMatcher }

func (g matchGomega) Matches(x any) bool {
	ok, err := g.m.Match(x)
	return err == nil && ok
}

func (g matchGomega) String() string {
	return fmt.Sprintf("matches gomega matcher %T", g.m)
}

var _ = Describe("SimpleRegistrationService", func() {
	var (
		ctrl          *gomock.Controller
		mockTransport *messaging_mocks.MockTransport
		mockUploader  *communication_mocks.MockUploader
		mockAlerter   *display_mocks.MockAlerter
		service       *usecases.SimpleRegistrationService
		ctx           context.Context
	)

	const vapidKey = "BIPUL3mKBPUDXaEFRYE-ZkdizPmqUAyqCFLwfoqmvRMZsuBcGm8Ubs"

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockTransport = messaging_mocks.NewMockTransport(ctrl)
		mockUploader = communication_mocks.NewMockUploader(ctrl)
		mockAlerter = display_mocks.NewMockAlerter(ctrl)
		ctx = context.Background()

		service = usecases.NewSimpleRegistrationService(mockTransport, mockUploader, mockAlerter, vapidKey)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	When("the transport grants a token", func() {
		It("uploads the literal token exactly once and alerts success", func() {
			uploaded := make(chan string, 1)

			mockTransport.EXPECT().Token(ctx, vapidKey).Return("delivery-token-123", nil)
			mockUploader.EXPECT().
				Upload(gomock.Any(), "delivery-token-123").
				DoAndReturn(func(_ context.Context, token string) error {
					uploaded <- token
					return nil
				}).
				Times(1)

			var alertMessage string
			mockAlerter.EXPECT().
				Alert(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, message string) error {
					alertMessage = message
					return nil
				})

			err := service.RequestRegistration(ctx)

			Expect(err).ToNot(HaveOccurred())
			Eventually(uploaded).Should(Receive(Equal("delivery-token-123")))
			Expect(alertMessage).To(ContainSubstring("dispatched"))
		})

		It("alerts success even when the upload later fails", func() {
			uploadAttempted := make(chan struct{}, 1)

			mockTransport.EXPECT().Token(ctx, vapidKey).Return("delivery-token-123", nil)
			mockUploader.EXPECT().
				Upload(gomock.Any(), "delivery-token-123").
				DoAndReturn(func(_ context.Context, _ string) error {
					uploadAttempted <- struct{}{}
					return errors.New("backend unavailable")
				})
			mockAlerter.EXPECT().Alert(ctx, matchGomega{ContainSubstring("dispatched")}).Return(nil)

			err := service.RequestRegistration(ctx)

			Expect(err).ToNot(HaveOccurred())
			Eventually(uploadAttempted).Should(Receive())
		})
	})

	When("permission is not granted", func() {
		It("alerts the denial and never uploads", func() {
			mockTransport.EXPECT().Token(ctx, vapidKey).Return("", nil)
			mockAlerter.EXPECT().Alert(ctx, matchGomega{ContainSubstring("denied")}).Return(nil)

			err := service.RequestRegistration(ctx)

			Expect(err).ToNot(HaveOccurred())
		})
	})

	When("the transport fails", func() {
		It("alerts with the error text and never uploads", func() {
			mockTransport.EXPECT().Token(ctx, vapidKey).Return("", errors.New("registration request failed"))
			mockAlerter.EXPECT().Alert(ctx, matchGomega{ContainSubstring("registration request failed")}).Return(nil)

			err := service.RequestRegistration(ctx)

			Expect(err).To(HaveOccurred())
		})
	})

	When("two registrations overlap", func() {
		It("produces one upload per invocation", func() {
			uploads := make(chan string, 2)

			mockTransport.EXPECT().Token(ctx, vapidKey).Return("token-a", nil)
			mockTransport.EXPECT().Token(ctx, vapidKey).Return("token-b", nil)
			mockUploader.EXPECT().
				Upload(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, token string) error {
					uploads <- token
					return nil
				}).
				Times(2)
			mockAlerter.EXPECT().Alert(ctx, gomock.Any()).Return(nil).Times(2)

			Expect(service.RequestRegistration(ctx)).To(Succeed())
			Expect(service.RequestRegistration(ctx)).To(Succeed())

			var first, second string
			Eventually(uploads).Should(Receive(&first))
			Eventually(uploads).Should(Receive(&second))
			Expect([]string{first, second}).To(ConsistOf("token-a", "token-b"))
		})
	})
})
