package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	_registrationEndpoint = "https://fcmregistrations.googleapis.com/v1/projects/%s/registrations"
	_requestTimeout       = 30 * time.Second
)

// FCMTransport registers web installations against the FCM registrations
// API and returns the delivery tokens it issues.
type FCMTransport struct {
	httpClient *http.Client
	baseURL    string
	config     FCMConfig
}

type FCMConfig struct {
	APIKey            string
	ProjectID         string
	MessagingSenderID string
	AppID             string
}

type registrationRequest struct {
	Web webRegistration `json:"web"`
}

type webRegistration struct {
	ApplicationPubKey string `json:"applicationPubKey"`
	AppID             string `json:"appId,omitempty"`
}

type registrationResponse struct {
	Token string `json:"token"`
}

type Option func(*FCMTransport)

// WithBaseURL overrides the registration endpoint, used by tests.
func WithBaseURL(url string) Option {
	return func(t *FCMTransport) {
		t.baseURL = url
	}
}

func NewFCMTransport(config FCMConfig, opts ...Option) *FCMTransport {
	transport := &FCMTransport{
		httpClient: &http.Client{
			Timeout: _requestTimeout,
		},
		baseURL: fmt.Sprintf(_registrationEndpoint, config.ProjectID),
		config:  config,
	}

	for _, opt := range opts {
		opt(transport)
	}

	return transport
}

var _ Transport = (*FCMTransport)(nil)

func (t *FCMTransport) Token(ctx context.Context, vapidKey string) (string, error) {
	request := registrationRequest{
		Web: webRegistration{
			ApplicationPubKey: vapidKey,
			AppID:             t.config.AppID,
		},
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", &TransportError{Message: "marshaling registration request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &TransportError{Message: "creating HTTP request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", t.config.APIKey)
	req.Header.Set("X-Goog-Firebase-Installations-Auth", t.config.MessagingSenderID)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Message: "sending registration request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Message: "reading registration response", Err: err}
	}

	// 403 is how the transport reports a declined registration. That is the
	// permission-not-granted outcome, not a failure.
	if resp.StatusCode == http.StatusForbidden {
		return "", nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{
			Message: fmt.Sprintf("registration API error: status %d, body: %s", resp.StatusCode, string(body)),
		}
	}

	var response registrationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &TransportError{Message: "unmarshaling registration response", Err: err}
	}

	return response.Token, nil
}
