package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"pushbridge/internal/admin/httpapi"
	usecases_mocks "pushbridge/test/unit/doubles/admin/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TokenUploadController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *usecases_mocks.MockPushTokenService
		router      *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = usecases_mocks.NewMockPushTokenService(ctrl)

		router = http.NewServeMux()
		httpapi.NewTokenUploadController(mockService).AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	When("an agent uploads a token", func() {
		It("registers the raw body value and replies no content", func() {
			mockService.EXPECT().
				RegisterToken(gomock.Any(), "delivery-token-123", "web").
				Return(nil)

			req := httptest.NewRequest("POST", "/upload_admin_token", strings.NewReader("delivery-token-123"))
			req.Header.Set("Content-Type", "text/plain")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	When("the body is empty", func() {
		It("replies bad request without touching the service", func() {
			req := httptest.NewRequest("POST", "/upload_admin_token", strings.NewReader(""))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("token is required"))
		})
	})

	When("registration fails", func() {
		It("replies internal server error", func() {
			mockService.EXPECT().
				RegisterToken(gomock.Any(), "delivery-token-123", "web").
				Return(errors.New("database unavailable"))

			req := httptest.NewRequest("POST", "/upload_admin_token", strings.NewReader("delivery-token-123"))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
