// Package findexd implements the index-service port against the findexd
// file-index daemon's localhost HTTP session protocol.
package findexd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IndexService = (*Client)(nil)

// DefaultBaseURL is where findexd listens unless configured otherwise.
const DefaultBaseURL = "http://127.0.0.1:7319"

// Client talks to a findexd daemon. All methods classify failures into
// the domain sentinel errors so callers never inspect HTTP details.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a findexd client for the given base URL. An empty baseURL
// falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createSessionRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
	PageSize   int    `json:"page_size"`
}

type sessionResponse struct {
	SessionID  string `json:"session_id"`
	TotalCount *int   `json:"total_count,omitempty"`
	PageSize   int    `json:"page_size"`
	MaxResults int    `json:"max_results"`
}

type wireItem struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Modified time.Time `json:"modified"`
}

type itemsResponse struct {
	Items []wireItem `json:"items"`
}

type statusResponse struct {
	Version      string `json:"version"`
	IndexedFiles int    `json:"indexed_files"`
}

// CreateSession opens a ranked result session for query on the daemon.
func (c *Client) CreateSession(ctx context.Context, query string, opts domain.SessionOptions) (domain.IndexSession, error) {
	body, err := json.Marshal(createSessionRequest{
		Query:      query,
		MaxResults: opts.MaxResults,
		PageSize:   opts.PageSize,
	})
	if err != nil {
		return domain.IndexSession{}, fmt.Errorf("encode session request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/sessions", bytes.NewReader(body))
	if err != nil {
		return domain.IndexSession{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return domain.IndexSession{}, classifyStatus(resp.StatusCode, "create session")
	}

	var sr sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return domain.IndexSession{}, fmt.Errorf("decode session response: %w", domain.ErrServiceUnavailable)
	}

	total := domain.TotalCountUnknown
	if sr.TotalCount != nil {
		total = *sr.TotalCount
	}
	pageSize := sr.PageSize
	if pageSize <= 0 {
		pageSize = opts.PageSize
	}

	logger.Debug("findexd session %s created (total=%d)", sr.SessionID, total)
	return domain.IndexSession{
		ID:         sr.SessionID,
		Query:      query,
		TotalCount: total,
		PageSize:   pageSize,
		MaxResults: opts.MaxResults,
		CreatedAt:  time.Now(),
	}, nil
}

// FetchRange retrieves [offset, offset+count) ranked hits of a session.
func (c *Client) FetchRange(ctx context.Context, sessionID string, offset, count int) ([]domain.IndexHit, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("count", strconv.Itoa(count))
	path := "/sessions/" + url.PathEscape(sessionID) + "/items?" + q.Encode()

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, "fetch range")
	}

	var ir itemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("decode items response: %w", domain.ErrServiceUnavailable)
	}

	hits := make([]domain.IndexHit, len(ir.Items))
	for i, it := range ir.Items {
		hits[i] = domain.IndexHit{
			Path:     it.Path,
			Name:     it.Name,
			Modified: it.Modified,
		}
	}
	return hits, nil
}

// CloseSession releases a session on the daemon. Closing an unknown
// session is not an error; the daemon expires them on its own anyway.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound, http.StatusGone:
		return nil
	default:
		return classifyStatus(resp.StatusCode, "close session")
	}
}

// Status asks the daemon whether it is up and serving.
func (c *Client) Status(ctx context.Context) (domain.ServiceStatus, error) {
	resp, err := c.do(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return domain.ServiceStatus{Available: false, Error: err.Error()}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := classifyStatus(resp.StatusCode, "status")
		return domain.ServiceStatus{Available: false, Error: err.Error()}, err
	}

	var st statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return domain.ServiceStatus{Available: false, Error: "malformed status response"}, domain.ErrServiceUnavailable
	}
	return domain.ServiceStatus{Available: true}, nil
}

// do issues a request and classifies transport-level failures.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	return resp, nil
}

// classifyTransport maps connection-level failures onto the domain
// sentinels: deadline overruns become ErrTimeout, everything else
// (refused connection, DNS, daemon not running) ErrServiceUnavailable.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("findexd request: %w", domain.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("findexd request: %w", domain.ErrTimeout)
	}
	return fmt.Errorf("findexd unreachable: %w", domain.ErrServiceUnavailable)
}

// classifyStatus maps HTTP status codes onto the domain sentinels.
func classifyStatus(code int, op string) error {
	switch code {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("findexd %s: %w", op, domain.ErrSessionInvalid)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("findexd %s: %w", op, domain.ErrInvalidInput)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("findexd %s: %w", op, domain.ErrTimeout)
	default:
		return fmt.Errorf("findexd %s: status %d: %w", op, code, domain.ErrServiceUnavailable)
	}
}
