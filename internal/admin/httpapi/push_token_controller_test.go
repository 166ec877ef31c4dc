package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"pushbridge/internal/admin/domain"
	"pushbridge/internal/admin/httpapi"
	"pushbridge/internal/admin/usecases"
	usecases_mocks "pushbridge/test/unit/doubles/admin/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("PushTokenController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *usecases_mocks.MockPushTokenService
		router      *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = usecases_mocks.NewMockPushTokenService(ctrl)

		router = http.NewServeMux()
		httpapi.NewPushTokenController(mockService).AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listing tokens", func() {
		It("returns a paginated response", func() {
			tokens := []domain.PushToken{
				{ID: "id-1", Token: "token-1", Platform: "web"},
				{ID: "id-2", Token: "token-2", Platform: "web"},
			}
			mockService.EXPECT().
				AllTokens(gomock.Any(), usecases.Pagination{Limit: 2, Offset: 2}).
				Return(tokens, 5, nil)

			req := httptest.NewRequest("GET", "/v1/push-tokens?page=2&limit=2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Data       []map[string]any `json:"data"`
				Pagination struct {
					Page       int `json:"page"`
					Limit      int `json:"limit"`
					Total      int `json:"total"`
					TotalPages int `json:"total_pages"`
				} `json:"pagination"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(2))
			Expect(response.Pagination.Page).To(Equal(2))
			Expect(response.Pagination.Total).To(Equal(5))
			Expect(response.Pagination.TotalPages).To(Equal(3))
		})
	})

	Context("unregistering a token", func() {
		It("replies ok when the token exists", func() {
			mockService.EXPECT().
				UnregisterToken(gomock.Any(), "token-1").
				Return(nil)

			req := httptest.NewRequest("DELETE", "/v1/push-tokens", strings.NewReader(`{"token":"token-1"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("replies not found for unknown tokens", func() {
			mockService.EXPECT().
				UnregisterToken(gomock.Any(), "token-missing").
				Return(usecases.ErrPushTokenNotFound)

			req := httptest.NewRequest("DELETE", "/v1/push-tokens", strings.NewReader(`{"token":"token-missing"}`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("replies bad request on malformed bodies", func() {
			req := httptest.NewRequest("DELETE", "/v1/push-tokens", strings.NewReader(`{broken`))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
