package articles

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tungtase04539/ai-news/internal/cache"
	"github.com/tungtase04539/ai-news/internal/httpx"
	"github.com/tungtase04539/ai-news/internal/middleware"
	"github.com/tungtase04539/ai-news/internal/transport"
	"github.com/tungtase04539/ai-news/internal/validation"
)

const cacheKey = "articles:all"

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, store cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    store,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if !h.available(w, log) {
		return
	}

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("articles list: cache hit")
			transport.WriteRaw(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("articles list: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch articles", nil)
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		log.Error("articles list: encode error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch articles", nil)
		return
	}
	if h.cache != nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info("articles list: ok", slog.Int("count", len(items)))
	transport.WriteRaw(w, http.StatusOK, payload)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if !h.available(w, log) {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("articles get: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "article not found", nil)
			return
		}
		log.Error("articles get: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to fetch article", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if !h.available(w, log) {
		return
	}

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("articles create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("articles create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("articles create: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create article", nil)
		return
	}
	h.invalidate(r)

	log.Info("articles create: ok", slog.String("article_id", item.ID))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if !h.available(w, log) {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("articles update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("articles update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("articles update: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "article not found", nil)
			return
		}
		log.Error("articles update: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to update article", nil)
		return
	}
	h.invalidate(r)

	log.Info("articles update: ok", slog.String("article_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if !h.available(w, log) {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("articles delete: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "article not found", nil)
			return
		}
		log.Error("articles delete: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to delete article", nil)
		return
	}
	h.invalidate(r)

	log.Info("articles delete: ok", slog.String("article_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) available(w http.ResponseWriter, log *slog.Logger) bool {
	if h.service == nil {
		log.Warn("articles: supabase not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "supabase not configured", nil)
		return false
	}
	return true
}

func (h *Handler) invalidate(r *http.Request) {
	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), cacheKey)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
