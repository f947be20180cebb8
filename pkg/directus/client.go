package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Marco22874/lares-frontend/pkg/cache"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

// DefaultBaseURL is the CMS address used when none is configured.
const DefaultBaseURL = "http://localhost:8055"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 * 1024

// Client reads translated content from a Directus instance.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	cache   *cache.LRUCache[string, []byte]
	breaker *CircuitBreaker
	logger  *slog.Logger
}

// NewClient creates a Client for the Directus instance at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the CMS address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string, query url.Values) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	u.RawQuery = query.Encode()
	return &u
}

// AssetURL returns the address of a stored file with optional image
// transforms such as width or quality. An empty fileID yields "".
func (c *Client) AssetURL(fileID string, transforms url.Values) string {
	if fileID == "" {
		return ""
	}
	return c.endpoint("/assets/"+url.PathEscape(fileID), transforms).String()
}

// items fetches /items/{name} and returns the raw "data" member of the envelope.
func (c *Client) items(ctx context.Context, name string, query url.Values) (json.RawMessage, error) {
	if name == "" {
		return nil, ErrEmptyCollection
	}

	u := c.endpoint("/items/"+url.PathEscape(name), query)
	key := u.String()
	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			return data, nil
		}
	}

	resp, err := c.do(ctx, http.MethodGet, u, nil, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}

	if c.cache != nil {
		c.cache.Put(key, envelope.Data)
	}
	return envelope.Data, nil
}

// SubmitContactForm posts data to the custom contact endpoint and returns the
// decoded response. A failure carries the server's message, or a generic one.
func (c *Client) SubmitContactForm(ctx context.Context, data any) (map[string]any, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Join(ErrEncodeRequest, err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint("/contact-form", nil), body, "contact-form")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message == "" {
			apiErr.Message = submitFallbackMessage
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	result := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Join(ErrDecodeResponse, err)
	}
	return result, nil
}

// Asset is a downloaded file. The caller must close Body.
type Asset struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// DownloadAsset streams a stored file, applying optional transforms.
func (c *Client) DownloadAsset(ctx context.Context, fileID string, transforms url.Values) (*Asset, error) {
	if fileID == "" {
		return nil, ErrEmptyFileID
	}
	u := c.endpoint("/assets/"+url.PathEscape(fileID), transforms)
	resp, err := c.do(ctx, http.MethodGet, u, nil, "assets/"+fileID)
	if err != nil {
		return nil, err
	}
	return &Asset{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}, nil
}

// Ping checks that the CMS answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, c.endpoint("/server/ping", nil), nil, "server/ping")
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// Invalidate drops every cached read.
func (c *Client) Invalidate() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// do sends one request. Non-2xx responses are closed and returned as *APIError.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body []byte, endpoint string) (*http.Response, error) {
	if c.breaker != nil && !c.breaker.Allow() {
		return nil, ErrUnavailable
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure()
		c.logger.ErrorContext(ctx, "directus request failed",
			logger.Component("directus"),
			slog.String("endpoint", endpoint),
			logger.Error(err),
		)
		return nil, errors.Join(ErrRequestFailed, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.recordSuccess()
		return resp, nil
	}

	apiErr := newAPIError(resp, endpoint)
	if apiErr.Temporary() {
		c.recordFailure()
	} else {
		c.recordSuccess()
	}
	c.logger.WarnContext(ctx, "directus api error",
		logger.Component("directus"),
		slog.String("endpoint", endpoint),
		slog.Int("status", apiErr.StatusCode),
		slog.String("message", apiErr.Message),
	)
	return nil, apiErr
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

// newAPIError reads and closes the body of a failed response. A body that is
// not JSON leaves Message empty.
func newAPIError(resp *http.Response, endpoint string) *APIError {
	defer func() { _ = resp.Body.Close() }()

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Endpoint:   endpoint,
	}

	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(raw, &payload); err != nil {
		return apiErr
	}
	switch {
	case payload.Message != "":
		apiErr.Message = payload.Message
	case len(payload.Errors) > 0:
		apiErr.Message = payload.Errors[0].Message
	}
	return apiErr
}

// statusText strips the numeric code from resp.Status.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
