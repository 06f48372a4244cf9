package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresConfig(t *testing.T) {
	assert.Nil(t, NewClient("", "key"))
	assert.Nil(t, NewClient("https://example.supabase.co", ""))
	assert.NotNil(t, NewClient("https://example.supabase.co", "key"))
}

func TestSelectOrdersNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/courses", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	raw, err := client.Select(context.Background(), "courses")
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Len(t, rows, 2)
}

func TestGetMapsNotAcceptableToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNotAcceptable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	_, err := client.Get(context.Background(), "courses", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetKeepsMissingTableAsGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"relation \"public.corses\" does not exist"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	_, err := client.Get(context.Background(), "corses", "42")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "status=404")
}

func TestInsertAsksForRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"generated","title":"New"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	raw, err := client.Insert(context.Background(), "courses", map[string]string{"title": "New"})
	require.NoError(t, err)

	var row map[string]string
	require.NoError(t, json.Unmarshal(raw, &row))
	assert.Equal(t, "generated", row["id"])
}

func TestPatchSendsPartialUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"price": float64(99)}, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","price":99}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	_, err := client.Patch(context.Background(), "courses", "42", map[string]interface{}{"price": 99})
	require.NoError(t, err)
}

func TestDeleteReportsMissingRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	err := client.Delete(context.Background(), "courses", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSucceedsWhenRowExisted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"42"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "anon")
	assert.NoError(t, client.Delete(context.Background(), "courses", "42"))
}
