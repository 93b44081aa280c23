// Package client consumes the dashboard read endpoint: a thin HTTP client and
// an interval poller that keeps an in-memory snapshot of the task list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/taskhive/task-dashboard-api/internal/dto"
	"github.com/taskhive/task-dashboard-api/internal/view"
)

// StatusError is returned for non-success responses and carries the response
// body text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the dashboard API. Session cookies are kept in a jar so a
// login survives across calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
}

// GetAllTasks fetches the full cross-workspace task list.
func (c *Client) GetAllTasks(ctx context.Context) ([]dto.DashboardTask, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/dashboard/tasks", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tasks []dto.DashboardTask
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskStatus dispatches a status-change intent. The caller treats this
// as fire-and-forget; success handling belongs to the mutation subsystem.
func (c *Client) UpdateTaskStatus(ctx context.Context, intent view.StatusChangeIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/tasks/%s/status", c.baseURL, intent.TaskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}
