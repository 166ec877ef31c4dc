package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/httpserver"
)

const (
	_uploadErrMessage = "failed to register push token"
	_uploadPlatform   = "web"
)

func NewTokenUploadController(service usecases.PushTokenService) *TokenUploadController {
	return &TokenUploadController{
		service: service,
	}
}

var _ httpserver.Controller = &TokenUploadController{}

// TokenUploadController is the intake endpoint for agents. The request body
// is the bare token string, not a JSON document.
type TokenUploadController struct {
	service usecases.PushTokenService
}

func (c *TokenUploadController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /upload_admin_token", c.uploadToken())
}

func (c *TokenUploadController) uploadToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := httpserver.ReadRawBody(r)
		if err != nil {
			http.Error(w, _uploadErrMessage, http.StatusBadRequest)
			return
		}

		token := strings.TrimSpace(string(body))
		if token == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "token is required")
			return
		}

		if err := c.service.RegisterToken(r.Context(), token, _uploadPlatform); err != nil {
			slog.Error("registering uploaded token", slog.Any("error", err))
			http.Error(w, _uploadErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
