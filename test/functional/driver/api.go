package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) UploadToken(token string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/upload_admin_token", d.baseURL), "text/plain", strings.NewReader(token))
}

func (d *APIDriver) ListPushTokens(page, limit int) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/push-tokens", d.baseURL)
	if page > 0 || limit > 0 {
		url += fmt.Sprintf("?page=%d&limit=%d", page, limit)
	}
	return d.client.Get(url)
}

func (d *APIDriver) UnregisterToken(token string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"token": token})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/push-tokens", d.baseURL), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}
