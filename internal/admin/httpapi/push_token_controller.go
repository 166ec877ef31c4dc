package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"pushbridge/internal/admin/httpapi/internal"
	"pushbridge/internal/admin/usecases"
	"pushbridge/internal/infra/httpserver"
)

const (
	_listTokensErrMessage      = "failed to list push tokens"
	_unregisterTokenErrMessage = "failed to unregister push token"
)

func NewPushTokenController(service usecases.PushTokenService) *PushTokenController {
	return &PushTokenController{
		service: service,
	}
}

var _ httpserver.Controller = &PushTokenController{}

type PushTokenController struct {
	service usecases.PushTokenService
}

func (c *PushTokenController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/push-tokens", c.listTokens())
	router.Handle("DELETE /v1/push-tokens", c.unregisterToken())
}

func (c *PushTokenController) listTokens() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)

		pagination := usecases.Pagination{
			Limit:  params.Limit,
			Offset: (params.Page - 1) * params.Limit,
		}

		tokens, total, err := c.service.AllTokens(r.Context(), pagination)
		if err != nil {
			slog.Error("listing push tokens", slog.Any("error", err))
			http.Error(w, _listTokensErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.FromPushTokens(tokens), total, params)
	}
}

func (c *PushTokenController) unregisterToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.PushTokenUnregistrationRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, _unregisterTokenErrMessage, http.StatusBadRequest)
			return
		}

		err := c.service.UnregisterToken(r.Context(), body.Token)
		if errors.Is(err, usecases.ErrPushTokenNotFound) {
			httpserver.ReplyJSONResponse(w, http.StatusNotFound, map[string]string{"error": "push token not found"})
			return
		}
		if err != nil {
			slog.Error("unregistering push token", slog.Any("error", err))
			http.Error(w, _unregisterTokenErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}
