package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungtase04539/ai-news/internal/courses"
	"github.com/tungtase04539/ai-news/internal/tools"
)

func TestListToolsDecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tools", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Claude"},{"id":"2","name":"Sora"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	list, err := client.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Claude", list[0].Name)
}

func TestCreateToolRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tools", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req tools.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Claude", req.Name)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"generated","name":"Claude","url":"https://claude.ai"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	created, err := client.CreateTool(context.Background(), tools.CreateRequest{
		Name:        "Claude",
		Description: "Trợ lý AI",
		Category:    tools.CategoryText,
		URL:         "https://claude.ai",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", created.ID)
}

func TestUpdateCoursePutsPartialBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/courses/42", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(50000), body["price"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","price":50000,"isVip":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	price := 50000
	updated, err := client.UpdateCourse(context.Background(), "42", courses.UpdateRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 50000, updated.Price)
	assert.True(t, updated.IsVip)
}

func TestDeleteArticleSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"article not found"}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	err := client.DeleteArticle(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=404")
	assert.Contains(t, err.Error(), "article not found")
}
