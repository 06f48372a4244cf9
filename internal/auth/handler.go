package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tungtase04539/ai-news/internal/httpx"
	"github.com/tungtase04539/ai-news/internal/middleware"
	"github.com/tungtase04539/ai-news/internal/transport"
	"github.com/tungtase04539/ai-news/internal/validation"
)

const sessionCookie = "ainews_session"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type Handler struct {
	auth         Authenticator
	manager      *Manager
	val          *validation.Validator
	log          *slog.Logger
	redirectTo   string
	cookieSecure bool
}

func NewHandler(authenticator Authenticator, manager *Manager, val *validation.Validator, log *slog.Logger, redirectTo string, cookieSecure bool) *Handler {
	return &Handler{
		auth:         authenticator,
		manager:      manager,
		val:          val,
		log:          log,
		redirectTo:   redirectTo,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("auth login: invalid credentials", slog.String("email", req.Email))
			transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		log.Error("auth login: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "login failed", nil)
		return
	}

	if !h.issueSession(w, log, *user) {
		return
	}
	log.Info("auth login: ok", slog.String("user_id", user.ID))
	transport.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req RegisterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth register: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidCredentials) {
			log.Warn("auth register: rejected")
			transport.WriteError(w, http.StatusBadRequest, "invalid registration", nil)
			return
		}
		log.Error("auth register: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	if !h.issueSession(w, log, *user) {
		return
	}
	log.Info("auth register: ok", slog.String("user_id", user.ID))
	transport.WriteJSON(w, http.StatusOK, user)
}

// Session restores the signed-in user from the cookie alone; no backend
// round trip, so a revoked remote session stays valid until the token
// expires.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	claims, err := h.manager.Parse(cookie.Value)
	if err != nil {
		log.Warn("auth session: invalid token")
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, claims.User)
}

func (h *Handler) Google(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	authURL, err := h.auth.GoogleLoginURL(h.redirectTo)
	if err != nil {
		if errors.Is(err, ErrGoogleNotConfigured) {
			log.Warn("auth google: supabase not configured")
			transport.WriteError(w, http.StatusServiceUnavailable, "supabase not configured", nil)
			return
		}
		log.Error("auth google: backend error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "google login failed", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]string{"url": authURL})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	if err := h.auth.Logout(r.Context()); err != nil {
		log.Warn("auth logout: backend error", slog.String("error", err.Error()))
	}
	clearSessionCookie(w, h.cookieSecure)
	log.Info("auth logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) issueSession(w http.ResponseWriter, log *slog.Logger, user User) bool {
	token, err := h.manager.NewSessionToken(user)
	if err != nil {
		log.Error("auth: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return false
	}
	setSessionCookie(w, token, h.manager.TTL, h.cookieSecure)
	return true
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
		MaxAge:   -1,
	})
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
