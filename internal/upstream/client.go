// Package upstream is the HTTP client for the fest API that owns all
// business data. Requests carry an explicit timeout and are never retried;
// callers surface failures to the user and let them retry the action.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"festfront/internal/config"
	"festfront/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid credentials")
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(cfg config.Upstream) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, nil, &events); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, nil, &event); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// RegisterStudent creates a new identity. The fest API echoes the stored
// record under a "student" key.
func (c *Client) RegisterStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	var resp struct {
		Student models.Student `json:"student"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/students", nil, student, &resp); err != nil {
		return nil, fmt.Errorf("failed to register student: %w", err)
	}

	return &resp.Student, nil
}

// LookupStudent resolves a roll number to an identity, ErrNotFound when the
// student is not registered.
func (c *Client) LookupStudent(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	if err := c.do(ctx, http.MethodGet, "/api/students/rollNo/"+url.PathEscape(rollNumber), nil, nil, &student); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	return &student, nil
}

func (c *Client) Login(ctx context.Context, rollNumber, password string) (*models.Student, error) {
	body := map[string]string{
		"rollNumber": rollNumber,
		"password":   password,
	}

	var student models.Student
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, body, &student); err != nil {
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return &student, nil
}

// GetTransactions lists enrollments, optionally filtered by roll number.
func (c *Client) GetTransactions(ctx context.Context, rollNumber string) ([]models.Enrollment, error) {
	var query url.Values
	if rollNumber != "" {
		query = url.Values{"rollNumber": []string{rollNumber}}
	}

	var enrollments []models.Enrollment
	if err := c.do(ctx, http.MethodGet, "/api/transactions", query, nil, &enrollments); err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return enrollments, nil
}

func (c *Client) CreateTransaction(ctx context.Context, enrollment models.Enrollment) (*models.Enrollment, error) {
	var created models.Enrollment
	if err := c.do(ctx, http.MethodPost, "/api/transactions", nil, enrollment, &created); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &created, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), nil, nil, nil); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
