// Package client talks to a remote About Us API. It satisfies editor.Store
// and display.Fetcher so the form and page can run against another server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kedai/internal/domain"
	"kedai/internal/models"

	"github.com/charmbracelet/log"
)

type Client struct {
	BaseURL string
	Token   string
	client  *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken returns a copy that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

type envelope struct {
	AboutUs *models.AboutUs `json:"aboutUs"`
	Error   string          `json:"error"`
}

// Fetch returns the stored record, or nil when the server has none.
func (c *Client) Fetch(ctx context.Context) (*models.AboutUs, error) {
	return c.do(ctx, http.MethodGet, nil)
}

// Replace sends the full document. A non-2xx answer becomes an error whose
// message is the server's "error" field, or a generic message without one.
func (c *Client) Replace(ctx context.Context, a *models.AboutUs) (*models.AboutUs, error) {
	body, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	saved, err := c.do(ctx, http.MethodPut, body)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, errors.New(domain.MsgAPIFailure)
	}
	return saved, nil
}

func (c *Client) do(ctx context.Context, method string, body []byte) (*models.AboutUs, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/api/about-us", rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("about us %s: %w", method, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	var out envelope
	decodeErr := json.Unmarshal(respBody, &out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("about us api error", "method", method, "status", resp.StatusCode)
		if decodeErr == nil && out.Error != "" {
			return nil, errors.New(out.Error)
		}
		return nil, errors.New(domain.MsgAPIFailure)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode about us: %w", decodeErr)
	}
	if out.AboutUs != nil {
		out.AboutUs.Images.Normalize()
	}
	return out.AboutUs, nil
}
