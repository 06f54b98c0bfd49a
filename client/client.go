// Package client talks to the remote posts collection endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"postfeed/models"
)

// DefaultEndpoint is the public collection used when nothing else is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// ErrRequestFailed wraps every failure: transport, status or decoding.
var ErrRequestFailed = errors.New("request failed")

type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{Endpoint: endpoint, HTTP: &http.Client{}}
}

// List reads the whole collection.
func (c *Client) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create sends a new post and returns the server's echo of it, id included.
func (c *Client) Create(ctx context.Context, p models.Post) (models.Post, error) {
	payload, err := json.Marshal(struct {
		Title  string `json:"title"`
		Body   string `json:"body"`
		UserID int    `json:"userId"`
	}{p.Title, p.Body, p.UserID})
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: encoding post: %v", ErrRequestFailed, err)
	}

	var created models.Post
	if err := c.do(ctx, http.MethodPost, payload, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

func (c *Client) do(ctx context.Context, method string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	req.Header.Set("Accept", "application/json")
	if id, err := uuid.NewV4(); err == nil {
		req.Header.Set("X-Request-Id", id.String())
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, c.Endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrRequestFailed, method, err)
	}
	return nil
}
