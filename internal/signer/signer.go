package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hrdocs/internal/config"
)

// Signer obtains a time-limited access URL for a stored object from a
// remote signing capability. It is the secondary signing path, used when
// the object store's own presign fails.
type Signer interface {
	Sign(ctx context.Context, key string) (string, error)
}

// HTTPSigner signs keys through a remote HTTP endpoint, bounded by a
// client-side timeout.
type HTTPSigner struct {
	client   *http.Client
	endpoint string
}

// NewHTTPSigner creates an HTTPSigner from config. The endpoint is required.
func NewHTTPSigner(cfg config.SignerConfig) (*HTTPSigner, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("signer endpoint is required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSigner{
		client:   &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
	}, nil
}

var _ Signer = (*HTTPSigner)(nil)

type signRequest struct {
	Key string `json:"key"`
}

type signResponse struct {
	URL string `json:"url"`
}

// Sign requests a signed URL for key. A non-200 response or an empty URL in
// the body is an error; timeouts surface as errors from the HTTP client.
func (s *HTTPSigner) Sign(ctx context.Context, key string) (string, error) {
	body, err := json.Marshal(signRequest{Key: key})
	if err != nil {
		return "", fmt.Errorf("encode sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build sign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sign request: unexpected status %d", resp.StatusCode)
	}

	var out signResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode sign response: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("sign response missing url")
	}
	return out.URL, nil
}
