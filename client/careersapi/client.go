// Package careersapi is the HTTP client for the careers backend: interview
// slot listing and booking, application intake and job postings.
package careersapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cpicareers/models"

	"go.uber.org/zap"
)

// APIError is a non-2xx response. Message holds the service-provided error
// text when the body carried one; Fields holds per-field reasons of a
// rejected application, keyed by form field name.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("careers api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("careers api: status %d: %s", e.StatusCode, e.Message)
}

// ServiceMessage returns the text the service asked to show.
func (e *APIError) ServiceMessage() string {
	return e.Message
}

// FieldErrors returns the per-field reasons the service reported, if any.
func (e *APIError) FieldErrors() map[string]string {
	return e.Fields
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client for baseURL. A nil httpClient uses one with a 30s
// timeout; a nil logger discards logs.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// FetchMonth returns the slots of one month keyed by ISO date.
func (c *Client) FetchMonth(ctx context.Context, year int, month time.Month) (models.MonthSlots, error) {
	q := url.Values{}
	q.Set("month", strconv.Itoa(int(month)))
	q.Set("year", strconv.Itoa(year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/interview-slots?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create slots request: %w", err)
	}
	var out models.MonthSlots
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = models.MonthSlots{}
	}
	return out, nil
}

// SubmitApplication posts a multipart application body.
func (c *Client) SubmitApplication(ctx context.Context, body io.Reader, contentType string) (*models.IntakeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/applications", body)
	if err != nil {
		return nil, fmt.Errorf("create application request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	var out models.IntakeResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookSlot reserves a slot for the applicant.
func (c *Client) BookSlot(ctx context.Context, booking models.BookSlotRequest) error {
	body, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("encode booking request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/interview-slots/book", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// JobPostings lists the published positions.
func (c *Client) JobPostings(ctx context.Context) ([]models.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/job-postings", nil)
	if err != nil {
		return nil, fmt.Errorf("create job postings request: %w", err)
	}
	var out []models.JobPosting
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	c.logger.Debug("careers api call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func mapError(status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return &APIError{StatusCode: status}
	}
	msg := strings.TrimSpace(parsed.Error)
	if msg == "" {
		msg = strings.TrimSpace(parsed.Message)
	}
	return &APIError{StatusCode: status, Message: msg, Fields: parsed.Fields}
}
