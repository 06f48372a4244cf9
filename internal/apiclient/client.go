package apiclient

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

	"github.com/tungtase04539/ai-news/internal/articles"
	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/tools"
)

// Client is the typed consumer of the /api surface. The data store's remote
// strategy sits on top of it; external Go consumers can use it directly.
// No retries and no idempotency keys: a retried create makes a duplicate.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListCourses(ctx context.Context) ([]courses.Course, error) {
	var out []courses.Course
	err := c.doJSON(ctx, http.MethodGet, "/api/courses", nil, &out)
	return out, err
}

func (c *Client) CreateCourse(ctx context.Context, req courses.CreateRequest) (courses.Course, error) {
	var out courses.Course
	err := c.doJSON(ctx, http.MethodPost, "/api/courses", req, &out)
	return out, err
}

func (c *Client) UpdateCourse(ctx context.Context, id string, req courses.UpdateRequest) (courses.Course, error) {
	var out courses.Course
	err := c.doJSON(ctx, http.MethodPut, "/api/courses/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/courses/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListArticles(ctx context.Context) ([]articles.Article, error) {
	var out []articles.Article
	err := c.doJSON(ctx, http.MethodGet, "/api/articles", nil, &out)
	return out, err
}

func (c *Client) CreateArticle(ctx context.Context, req articles.CreateRequest) (articles.Article, error) {
	var out articles.Article
	err := c.doJSON(ctx, http.MethodPost, "/api/articles", req, &out)
	return out, err
}

func (c *Client) UpdateArticle(ctx context.Context, id string, req articles.UpdateRequest) (articles.Article, error) {
	var out articles.Article
	err := c.doJSON(ctx, http.MethodPut, "/api/articles/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/articles/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListTools(ctx context.Context) ([]tools.Tool, error) {
	var out []tools.Tool
	err := c.doJSON(ctx, http.MethodGet, "/api/tools", nil, &out)
	return out, err
}

func (c *Client) CreateTool(ctx context.Context, req tools.CreateRequest) (tools.Tool, error) {
	var out tools.Tool
	err := c.doJSON(ctx, http.MethodPost, "/api/tools", req, &out)
	return out, err
}

func (c *Client) UpdateTool(ctx context.Context, id string, req tools.UpdateRequest) (tools.Tool, error) {
	var out tools.Tool
	err := c.doJSON(ctx, http.MethodPut, "/api/tools/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) DeleteTool(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/tools/"+url.PathEscape(id), nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr)
		return fmt.Errorf("api %s %s: status=%d message=%s", method, path, resp.StatusCode, apiErr.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api decode response: %w", err)
	}
	return nil
}
