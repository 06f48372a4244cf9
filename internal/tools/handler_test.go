package tools

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tungtase04539/ai-news/internal/cache"
	"github.com/tungtase04539/ai-news/internal/validation"
)

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/tools", h.List)
	r.Get("/api/tools/{id}", h.Get)
	r.Post("/api/tools", h.Create)
	r.Put("/api/tools/{id}", h.Update)
	r.Delete("/api/tools/{id}", h.Delete)
	return r
}

func newTestHandler() *Handler {
	svc := NewService(NewMemoryRepository(nil))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, validation.New(), log, cache.NewNoop(), time.Minute)
}

func TestCreateFillsDefaultsAndReturns200(t *testing.T) {
	router := newTestRouter(newTestHandler())
	body := `{"name":"Test AI","description":"A test","category":"text","url":"https://test.ai"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created Tool
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Logo != defaultLogo {
		t.Fatalf("expected default logo, got %q", created.Logo)
	}
	if created.IsFeatured {
		t.Fatal("isFeatured should default to false")
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Fatalf("expected empty tags, got %#v", created.Tags)
	}
}

func TestCreateAcceptsCommaSeparatedTags(t *testing.T) {
	router := newTestRouter(newTestHandler())
	body := `{"name":"Tagger","description":"d","category":"text","url":"https://tagger.ai","tags":"  A, B ,,C  "}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created Tool
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := []string{"A", "B", "C"}
	if len(created.Tags) != 3 || created.Tags[0] != want[0] || created.Tags[1] != want[1] || created.Tags[2] != want[2] {
		t.Fatalf("expected %v, got %v", want, created.Tags)
	}
}

func TestCreateRejectsInvalidURL(t *testing.T) {
	router := newTestRouter(newTestHandler())
	body := `{"name":"Broken","description":"d","category":"text","url":"not a url"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(newTestHandler())
	body := `{"name":"x","description":"d","category":"text","url":"https://x.ai","surprise":true}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestGetMissingTool(t *testing.T) {
	router := newTestRouter(newTestHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools/doesnotexist", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tool not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDeleteAnswersSuccessFlag(t *testing.T) {
	h := newTestHandler()
	router := newTestRouter(h)

	body := `{"name":"Doomed","description":"d","category":"text","url":"https://doomed.ai"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tools", strings.NewReader(body)))
	var created Tool
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tools/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if !resp["success"] {
		t.Fatalf("expected success flag, got %v", resp)
	}
}

func TestRoutesUnavailableWithoutBackend(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(nil, validation.New(), log, cache.NewNoop(), time.Minute)
	router := newTestRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "supabase not configured") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
