package communication

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	_uploadPath           = "/upload_admin_token"
	_defaultUploadTimeout = 10 * time.Second
)

//go:generate mockgen -source=token_uploader.go -destination=../../../test/unit/doubles/agent/communication/token_uploader.go -package=communication

// Uploader hands a freshly granted delivery token to the admin backend.
type Uploader interface {
	Upload(ctx context.Context, token string) error
}

var _ Uploader = (*TokenUploader)(nil)

// TokenUploader posts the raw token value to the admin intake endpoint. The
// body is the bare token string, not a JSON document.
type TokenUploader struct {
	baseURL    string
	httpClient *http.Client
}

func NewTokenUploader(baseURL string) *TokenUploader {
	return &TokenUploader{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: _defaultUploadTimeout,
		},
	}
}

func (u *TokenUploader) Upload(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+_uploadPath, bytes.NewBufferString(token))
	if err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}
