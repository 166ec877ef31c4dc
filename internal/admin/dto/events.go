package dto

import (
	"pushbridge/internal/infra/utils"
)

// TokenRegistered is emitted on the registrations topic whenever an agent
// hands in a delivery token.
type TokenRegistered struct {
	TokenID  string     `json:"token_id"`
	Token    string     `json:"token"`
	Platform string     `json:"platform"`
	At       utils.Time `json:"at"`
}
