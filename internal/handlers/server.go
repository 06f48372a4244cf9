package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tungtase04539/ai-news/internal/config"
	"github.com/tungtase04539/ai-news/internal/middleware"
	"github.com/tungtase04539/ai-news/internal/supabase"
)

// Server carries the cross-cutting pieces the standalone handlers need.
// Entity routes live in their own packages; only upload and health stay
// here. A nil Supabase client means demo mode.
type Server struct {
	Cfg      *config.Config
	Log      *slog.Logger
	Supabase *supabase.Client
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
