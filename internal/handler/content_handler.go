package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/store"
)

const maxUploadBytes = 32 << 20
const maxGalleryFiles = 10

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListNews(r.Context())
	if err != nil {
		h.log.Error("list news", "error", err)
		writeJSON(w, http.StatusInternalServerError, []model.NewsItem{})
		return
	}
	if items == nil {
		items = []model.NewsItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateNews accepts a multipart form with title, content and an optional
// image file handed to the storage collaborator.
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		message(w, http.StatusBadRequest, "invalid form data")
		return
	}
	title := r.FormValue("title")
	content := r.FormValue("content")
	if title == "" || content == "" {
		message(w, http.StatusBadRequest, "title and content required")
		return
	}

	var image *string
	if f, fh, err := r.FormFile("image"); err == nil {
		defer f.Close()
		path, err := h.files.Save(fh.Filename, f)
		if err != nil {
			h.log.Error("save news image", "error", err)
			message(w, http.StatusInternalServerError, "Error adding news")
			return
		}
		image = &path
		h.metrics.ObserveUpload("news")
	}

	item := &model.NewsItem{
		ID:      uuid.New().String(),
		Title:   title,
		Content: content,
		Image:   image,
	}
	if err := h.store.CreateNews(r.Context(), item); err != nil {
		h.log.Error("create news", "error", err)
		message(w, http.StatusInternalServerError, "Error adding news")
		return
	}
	message(w, http.StatusOK, "News added successfully")
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteNews(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(w, http.StatusNotFound, "News not found")
			return
		}
		h.log.Error("delete news", "error", err)
		message(w, http.StatusInternalServerError, "Error deleting news")
		return
	}
	message(w, http.StatusOK, "News deleted successfully")
}

func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	photos, err := h.store.ListGallery(r.Context())
	if err != nil {
		h.log.Error("list gallery", "error", err)
		writeJSON(w, http.StatusInternalServerError, []model.GalleryPhoto{})
		return
	}
	if photos == nil {
		photos = []model.GalleryPhoto{}
	}
	writeJSON(w, http.StatusOK, photos)
}

// UploadGalleryPhotos stores up to maxGalleryFiles photos sharing one caption.
func (h *Handler) UploadGalleryPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		message(w, http.StatusBadRequest, "invalid form data")
		return
	}
	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		message(w, http.StatusBadRequest, "No files uploaded.")
		return
	}
	if len(files) > maxGalleryFiles {
		message(w, http.StatusBadRequest, "at most 10 photos per upload")
		return
	}
	caption := r.FormValue("caption")

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			message(w, http.StatusBadRequest, "invalid form data")
			return
		}
		path, err := h.files.Save(fh.Filename, f)
		f.Close()
		if err != nil {
			h.log.Error("save gallery photo", "error", err)
			message(w, http.StatusInternalServerError, "Database error during upload.")
			return
		}
		photo := &model.GalleryPhoto{
			ID:      uuid.New().String(),
			Path:    path,
			Caption: caption,
		}
		if err := h.store.AddGalleryPhoto(r.Context(), photo); err != nil {
			h.log.Error("insert gallery photo", "error", err)
			message(w, http.StatusInternalServerError, "Database error during upload.")
			return
		}
		h.metrics.ObserveUpload("gallery")
	}
	message(w, http.StatusOK, "Photos uploaded successfully!")
}

func (h *Handler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteGalleryPhoto(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(w, http.StatusNotFound, "Photo not found")
			return
		}
		h.log.Error("delete gallery photo", "error", err)
		message(w, http.StatusInternalServerError, "Error deleting photo")
		return
	}
	message(w, http.StatusOK, "Photo deleted")
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	content, err := h.store.AboutContent(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]string{"content": "Content not found."})
			return
		}
		h.log.Error("about content", "error", err)
		writeJSON(w, http.StatusOK, map[string]string{"content": "Error loading content."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "content required"})
		return
	}
	if err := h.store.UpdateAboutContent(r.Context(), req.Content); err != nil {
		h.log.Error("update about", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Failed to update content."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "About content updated successfully!"})
}
