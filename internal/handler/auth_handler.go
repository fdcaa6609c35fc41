package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"aviation-institute-api/internal/auth"
	"aviation-institute-api/internal/middleware"
	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/store"
)

const minPasswordLen = 8

// Login verifies credentials and establishes a session. Unknown-username and
// wrong-password responses are identical so the endpoint leaks nothing about
// which usernames exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}

	admin, err := h.store.AdminByUsername(r.Context(), req.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Error("login lookup", "error", err)
		}
		h.metrics.ObserveLogin(false)
		writeJSON(w, http.StatusOK, map[string]bool{"success": false})
		return
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		h.metrics.ObserveLogin(false)
		writeJSON(w, http.StatusOK, map[string]bool{"success": false})
		return
	}

	if err := h.store.TouchLastLogin(r.Context(), admin.ID); err != nil {
		h.log.Error("touch last_login", "error", err)
	}

	token, err := h.sessions.Create(r.Context(), admin.Username)
	if err != nil {
		h.log.Error("create session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}
	if err := h.cookies.SetToken(w, token); err != nil {
		h.log.Error("set session cookie", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}

	h.metrics.ObserveLogin(true)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout destroys the server-side session. Destroying an already-absent
// session is fine.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := h.cookies.Token(r); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.log.Error("destroy session", "error", err)
		}
	}
	h.cookies.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdmins(r.Context())
	if err != nil {
		h.log.Error("list admins", "error", err)
		writeJSON(w, http.StatusInternalServerError, []model.Admin{})
		return
	}
	if admins == nil {
		admins = []model.Admin{}
	}
	writeJSON(w, http.StatusOK, admins)
}

func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Username == "" || req.Password == "" {
		message(w, http.StatusBadRequest, "username and password required")
		return
	}
	if len(req.Password) < minPasswordLen {
		message(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("hash password", "error", err)
		message(w, http.StatusInternalServerError, "Error creating admin")
		return
	}

	admin := &model.Admin{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.store.CreateAdmin(r.Context(), admin); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			message(w, http.StatusOK, "Username already exists")
			return
		}
		h.log.Error("create admin", "error", err)
		message(w, http.StatusInternalServerError, "Error creating admin")
		return
	}
	message(w, http.StatusOK, "Admin created successfully")
}

// ChangePassword re-verifies the current password before replacing the hash,
// so a hijacked session alone cannot rotate the credential.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "oldPassword and newPassword required"})
		return
	}
	if len(req.NewPassword) < minPasswordLen {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Password must be at least 8 characters."})
		return
	}

	username := middleware.SessionUsername(r.Context())
	admin, err := h.store.AdminByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Could not find user."})
			return
		}
		h.log.Error("change password lookup", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error updating password."})
		return
	}

	if !auth.CheckPassword(admin.PasswordHash, req.OldPassword) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "Incorrect current password."})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		h.log.Error("hash password", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error updating password."})
		return
	}
	if err := h.store.UpdateAdminPassword(r.Context(), admin.ID, hash); err != nil {
		h.log.Error("update password", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Error updating password."})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Password changed successfully!"})
}
