package supabase

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
	"time"
)

// ErrNotFound is returned when a filtered read/write matches no row.
var ErrNotFound = errors.New("record not found")

// Client talks to a Supabase project over its auto-generated REST layer
// (PostgREST), its auth endpoints (GoTrue) and its storage service.
// Rows travel as raw JSON; entity packages own the (de)serialization.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(anonKey) == "" {
		return nil
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Select returns every row of a table, newest first.
func (c *Client) Select(ctx context.Context, table string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*&order=created_at.desc", c.baseURL, table)
	return c.do(ctx, http.MethodGet, endpoint, nil, nil)
}

// Get returns the single row with the given id, or ErrNotFound.
func (c *Client) Get(ctx context.Context, table, id string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*&id=eq.%s", c.baseURL, table, url.QueryEscape(id))
	return c.do(ctx, http.MethodGet, endpoint, nil, singleObjectHeaders())
}

// Insert creates one row and returns the server representation, which
// carries the generated id and created_at.
func (c *Client) Insert(ctx context.Context, table string, row interface{}) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	headers := singleObjectHeaders()
	headers["Prefer"] = "return=representation"
	return c.do(ctx, http.MethodPost, endpoint, row, headers)
}

// Patch applies a partial column update to the row with the given id and
// returns the updated representation, or ErrNotFound.
func (c *Client) Patch(ctx context.Context, table, id string, set map[string]interface{}) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s", c.baseURL, table, url.QueryEscape(id))
	headers := singleObjectHeaders()
	headers["Prefer"] = "return=representation"
	return c.do(ctx, http.MethodPatch, endpoint, set, headers)
}

// Delete removes the row with the given id. PostgREST reports a delete of
// nothing as an empty representation, which maps to ErrNotFound.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?id=eq.%s", c.baseURL, table, url.QueryEscape(id))
	raw, err := c.do(ctx, http.MethodDelete, endpoint, nil, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	var deleted []json.RawMessage
	if err := json.Unmarshal(raw, &deleted); err != nil {
		return fmt.Errorf("supabase decode delete response: %w", err)
	}
	if len(deleted) == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}, headers map[string]string) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("supabase marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("supabase create request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	// PostgREST answers 406 when a single-object read matches no row. A 404
	// means the table itself is missing and stays a generic error.
	if resp.StatusCode == http.StatusNotAcceptable {
		return nil, ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("supabase %s %s: status=%d body=%s", method, endpoint, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase read response: %w", err)
	}
	return raw, nil
}

func singleObjectHeaders() map[string]string {
	return map[string]string{
		"Accept": "application/vnd.pgrst.object+json",
	}
}
