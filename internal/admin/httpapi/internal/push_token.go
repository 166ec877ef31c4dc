package internal

import (
	"pushbridge/internal/admin/domain"
	"pushbridge/internal/infra/utils"
)

type PushTokenResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Platform  string     `json:"platform"`
	CreatedAt utils.Time `json:"created_at"`
	UpdatedAt utils.Time `json:"updated_at"`
}

func FromPushToken(value domain.PushToken) PushTokenResponse {
	return PushTokenResponse{
		ID:        value.ID.String(),
		Token:     value.Token,
		Platform:  value.Platform,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
	}
}

func FromPushTokens(values []domain.PushToken) []PushTokenResponse {
	result := make([]PushTokenResponse, len(values))
	for i, value := range values {
		result[i] = FromPushToken(value)
	}
	return result
}

type PushTokenUnregistrationRequest struct {
	Token string `json:"token"`
}
