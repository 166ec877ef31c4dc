package dto

import (
	"encoding/json"
	"fmt"
)

// PushPayload is the JSON document delivered on the background channel.
// Only the notification block is consumed; data-only payloads arrive with
// Notification unset.
type PushPayload struct {
	Notification *NotificationContent `json:"notification"`
}

type NotificationContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func ParsePushPayload(raw []byte) (PushPayload, error) {
	var payload PushPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return PushPayload{}, fmt.Errorf("unmarshalling push payload: %w", err)
	}

	return payload, nil
}
