package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Upload stores a binary object under bucket/key and returns its public URL.
// Size and MIME checks happen at the HTTP boundary before this call; the
// storage service applies its own constraints on top.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("supabase create upload request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	req.Header.Set("x-upsert", "false")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("supabase upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("supabase upload: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return c.PublicURL(bucket, key), nil
}

// PublicURL is the unauthenticated read URL of a stored object.
func (c *Client) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, key)
}
