// Package remote implements domain.TaskService over the task HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/runoshun/todomaster/internal/domain"
)

// tasksPath is the collection endpoint relative to the base URL.
const tasksPath = "tasks"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// Client implements domain.TaskService.
// Fields are ordered to minimize memory padding.
type Client struct {
	http    *http.Client
	logger  domain.Logger
	baseURL *url.URL
}

// Ensure Client implements domain.TaskService.
var _ domain.TaskService = (*Client)(nil)

// New creates a client for the service at baseURL.
// A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration, logger domain.Logger) (*Client, error) {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, hc *http.Client, logger domain.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		http:    hc,
		logger:  logger,
		baseURL: u,
	}, nil
}

// List returns every task in server order.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	body, err := c.do(ctx, http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	if err := validateTaskList(body); err != nil {
		return nil, c.fail(http.MethodGet, c.collectionURL(), err)
	}
	tasks, err := decodeTasks(body)
	if err != nil {
		return nil, c.fail(http.MethodGet, c.collectionURL(), fmt.Errorf("decode tasks: %w", err))
	}
	return tasks, nil
}

// Create creates a task and returns the stored record.
func (c *Client) Create(ctx context.Context, text string) (*domain.Task, error) {
	payload := struct {
		Text string `json:"text"`
	}{Text: text}
	return c.sendTask(ctx, http.MethodPost, c.collectionURL(), payload)
}

// Update applies a partial update and returns the stored record.
func (c *Client) Update(ctx context.Context, id domain.TaskID, patch domain.TaskPatch) (*domain.Task, error) {
	return c.sendTask(ctx, http.MethodPut, c.taskURL(id), patch)
}

// Delete removes a task. Only the status code is checked.
func (c *Client) Delete(ctx context.Context, id domain.TaskID) error {
	_, err := c.do(ctx, http.MethodDelete, c.taskURL(id), nil)
	return err
}

func (c *Client) sendTask(ctx context.Context, method, target string, payload any) (*domain.Task, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	body, err := c.do(ctx, method, target, reqBody)
	if err != nil {
		return nil, err
	}
	if err := validateTask(body); err != nil {
		return nil, c.fail(method, target, err)
	}
	task, err := decodeTask(body)
	if err != nil {
		return nil, c.fail(method, target, fmt.Errorf("decode task: %w", err))
	}
	return &task, nil
}

// do performs one request and returns the body of a 2xx response.
// Every other outcome is an ErrUnavailable.
func (c *Client) do(ctx context.Context, method, target string, reqBody []byte) ([]byte, error) {
	var r io.Reader
	if reqBody != nil {
		r = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("remote", method+" "+target)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(method, target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.fail(method, target, fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(method, target, fmt.Errorf("status %d", resp.StatusCode))
	}
	return body, nil
}

func (c *Client) fail(method, target string, cause error) error {
	c.logger.Warn("remote", fmt.Sprintf("%s %s failed: %v", method, target, cause))
	return fmt.Errorf("%w: %s %s: %w", domain.ErrUnavailable, method, target, cause)
}

func (c *Client) collectionURL() string {
	return c.baseURL.JoinPath(tasksPath).String()
}

func (c *Client) taskURL(id domain.TaskID) string {
	return c.collectionURL() + "/" + url.PathEscape(id.String())
}
