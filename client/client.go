// Package client is a small API client for the StudyShare backend. It
// mirrors the presentation layer's data flow: one in-memory snapshot
// of all resources, refreshed wholesale after every mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"studyshare-backend/identity"
)

// Resource is a resource record as returned by the listing endpoint.
// UploadedBy tolerates every historical owner-reference shape and is
// normalized to canonical form on decode.
type Resource struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	FileType     string            `json:"fileType"`
	FileURL      string            `json:"fileUrl"`
	UploadedBy   identity.OwnerRef `json:"uploadedBy"`
	UploaderName string            `json:"uploaderName"`
	Downloads    int               `json:"downloads"`
	Rating       float64           `json:"rating"`
	Tags         []string          `json:"tags"`
	UploadedAt   time.Time         `json:"uploadedAt"`
}

// CreateResourceRequest is the body for creating a resource record.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	FileType    string   `json:"fileType"`
	FileURL     string   `json:"fileUrl"`
	Tags        []string `json:"tags"`
}

// Client talks to the StudyShare API and caches the last successfully
// fetched resource listing. A failed fetch leaves the previous
// snapshot untouched.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string

	mu        sync.RWMutex
	resources []Resource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer credential sent on authenticated requests.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the API at baseURL (e.g.
// "http://localhost:4000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resources returns the current snapshot.
func (c *Client) Resources() []Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// Refresh re-fetches the full resource listing and replaces the
// snapshot. On failure the previous snapshot is kept.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/resources", nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	var body struct {
		Resources []Resource `json:"resources"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode listing: %w", err)
	}

	c.mu.Lock()
	c.resources = body.Resources
	c.mu.Unlock()
	return nil
}

// CreateResource creates a resource record and refreshes the snapshot.
func (c *Client) CreateResource(ctx context.Context, reqBody CreateResourceRequest) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/resources", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return c.Refresh(ctx)
}

// DeleteResource deletes a resource record and refreshes the snapshot.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/resources/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return c.Refresh(ctx)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
