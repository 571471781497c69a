// Package rest provides the JSON-over-HTTP plumbing shared by the sibling
// service clients (wardrobe, trait, currency, recipe).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/midgardgame/character-api/internal/errors"
)

// DefaultTimeout bounds every outbound call; partial grants are tolerated, a
// hung grant is not.
const DefaultTimeout = 10 * time.Second

// Caller posts JSON requests to a sibling service.
type Caller struct {
	baseURL    string
	httpClient *http.Client
}

// NewCaller creates a Caller for the service at baseURL. A zero timeout
// falls back to DefaultTimeout.
func NewCaller(baseURL string, timeout time.Duration) (*Caller, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.InvalidArgument("base URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Caller{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Post sends body as JSON to path and, when out is non-nil, decodes the
// response body into it. Non-2xx responses become Unavailable errors.
func (c *Caller) Post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "failed to encode request for %s", path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "failed to create request for %s", path)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "request to "+path+" failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.Unavailablef("%s returned status %d: %s", path, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "failed to decode response from %s", path)
		}
	}

	return nil
}
