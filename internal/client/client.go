package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahilkr24/jobtrackr/internal/config"
	"github.com/sahilkr24/jobtrackr/internal/dtos"
	"github.com/sahilkr24/jobtrackr/internal/models"
)

const (
	basePath = "/jobapplications"

	// Fixed transport deadline; a request that outlives it surfaces
	// as a NetworkError.
	requestTimeout = 10 * time.Second
)

// Client talks to the job applications API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// List fetches every record. The API has no pagination; paging happens
// client-side.
func (c *Client) List(ctx context.Context) ([]models.JobApplication, error) {
	var records []models.JobApplication
	if err := c.do(ctx, http.MethodGet, basePath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, id uint) (models.JobApplication, error) {
	var record models.JobApplication
	if err := c.do(ctx, http.MethodGet, recordPath(id), nil, &record); err != nil {
		return models.JobApplication{}, err
	}
	return record, nil
}

func (c *Client) Create(ctx context.Context, req dtos.CreateApplicationRequest) (models.JobApplication, error) {
	var record models.JobApplication
	if err := c.do(ctx, http.MethodPost, basePath, req, &record); err != nil {
		return models.JobApplication{}, err
	}
	return record, nil
}

// Update is a full replacement, not a patch.
func (c *Client) Update(ctx context.Context, id uint, req dtos.UpdateApplicationRequest) (models.JobApplication, error) {
	var record models.JobApplication
	if err := c.do(ctx, http.MethodPut, recordPath(id), req, &record); err != nil {
		return models.JobApplication{}, err
	}
	return record, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, recordPath(id), nil, nil)
}

// UpdateStatus changes just the status of a record. It is a
// read-modify-write, NOT atomic: anything written between the Get and the
// Update below gets silently overwritten. Known limitation, kept on purpose.
func (c *Client) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (models.JobApplication, error) {
	current, err := c.Get(ctx, id)
	if err != nil {
		return models.JobApplication{}, err
	}
	return c.Update(ctx, id, dtos.UpdateApplicationRequest{
		Company:     current.Company,
		Position:    current.Position,
		Status:      status,
		DateApplied: current.DateApplied,
	})
}

func recordPath(id uint) string {
	return basePath + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &ClientError{Message: "encode request: " + err.Error()}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &ClientError{Message: "create request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ClientError{Message: "decode response: " + err.Error()}
	}
	return nil
}

// errorMessage pulls a human message out of an error body, falling back to
// a generic per-status string when the body carries none.
func errorMessage(status int, body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if m := strings.TrimSpace(parsed.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(parsed.Error); m != "" {
			return m
		}
	}
	if text := http.StatusText(status); text != "" {
		return "request failed: " + text
	}
	return "request failed with status " + strconv.Itoa(status)
}
