package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tungtase04539/ai-news/internal/transport"
	"github.com/tungtase04539/ai-news/internal/utils"
)

// maxUploadBytes mirrors the editor-side ceiling of 5 MB per image.
const maxUploadBytes = 5 << 20

// Upload accepts one multipart image and forwards it to the storage
// bucket under <folder>/<millis>-<uuid><ext>. The folder comes from the
// form and is slugified, so callers cannot climb out of the bucket.
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Supabase == nil {
		log.Warn("upload: supabase not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "supabase not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+4096)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Warn("upload: bad multipart body", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("upload: missing file field")
		transport.WriteError(w, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		log.Warn("upload: file too large", slog.Int64("size", header.Size))
		transport.WriteError(w, http.StatusBadRequest, "file exceeds 5MB limit", nil)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		log.Warn("upload: rejected content type", slog.String("content_type", contentType))
		transport.WriteError(w, http.StatusBadRequest, "only image uploads are allowed", nil)
		return
	}

	folder := utils.Slugify(r.FormValue("folder"))
	if folder == "" {
		folder = "uploads"
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := folder + "/" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + uuid.NewString() + ext

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	publicURL, err := s.Supabase.Upload(ctx, s.Cfg.SupabaseBucket, key, contentType, file)
	if err != nil {
		log.Error("upload: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to upload file", nil)
		return
	}

	log.Info("upload: ok", slog.String("key", key), slog.Int64("size", header.Size))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"url": publicURL})
}
