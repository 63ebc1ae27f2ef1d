package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Transport handles the low-level HTTP exchange with the backend.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     *zap.Logger
}

// NewTransport creates a transport for baseURL. A nil httpClient means
// http.DefaultClient.
func NewTransport(baseURL string, httpClient *http.Client, logger *zap.Logger) *Transport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		logger:     logger,
	}
}

// buildURL joins path onto the base URL and encodes the query.
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range query {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get sends a GET and decodes the JSON body into out.
func (t *Transport) Get(ctx context.Context, path string, query map[string]string, out any) error {
	return t.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends data as JSON and decodes the response into out (may be nil).
func (t *Transport) Post(ctx context.Context, path string, data any, out any) error {
	return t.Do(ctx, http.MethodPost, path, nil, data, out)
}

// Delete sends a DELETE; any response body is discarded.
func (t *Transport) Delete(ctx context.Context, path string) error {
	return t.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do performs one request. Transport failures come back as *NetworkError,
// statuses >= 300 as *APIError.
func (t *Transport) Do(ctx context.Context, method, path string, query map[string]string, data any, out any) error {
	op := method + " " + path

	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return fmt.Errorf("build url for %s: %w", op, err)
	}

	var body io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("create request %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		t.logger.Warn("backend unreachable", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	resBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Warn("backend response truncated", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}

	t.logger.Debug("backend call",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Detail:     parseDetail(resBody),
		}
		t.logger.Warn("backend rejected request",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(resBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
