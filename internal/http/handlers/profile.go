package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finsight/server/internal/auth"
	"github.com/finsight/server/internal/middleware"
	"github.com/finsight/server/internal/repo"
)

// ProfileHandler serves the authenticated user's profile and password updates
type ProfileHandler struct {
	users repo.UserRepo
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(users repo.UserRepo) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// profileResponse is the JSON response for GET /profile
type profileResponse struct {
	User userResponse `json:"user"`
}

// HandleProfile handles GET /profile. The session only carries the identity;
// the user row is looked up fresh so a deleted account reads as not found.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_logged_in")
		return
	}

	user, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user_not_found")
			return
		}
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, profileResponse{User: toUserResponse(user)})
}

// updatePasswordRequest is the request body for POST /update-password.
// CurrentPassword is accepted but not checked: the caller is already
// session-authenticated, a deliberately relaxed policy.
type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// updatePasswordResponse is the JSON response for update-password
type updatePasswordResponse struct {
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

// HandleUpdatePassword handles POST /update-password
func (h *ProfileHandler) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_logged_in")
		return
	}

	var req updatePasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		respondErrorDetail(w, http.StatusBadRequest, passwordErrorCode(err), err.Error())
		return
	}

	if _, err := h.users.GetByID(r.Context(), identity.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user_not_found")
			return
		}
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	if err := h.users.UpdatePassword(r.Context(), identity.UserID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			respondError(w, http.StatusNotFound, "user_not_found")
			return
		}
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, updatePasswordResponse{Updated: true, Message: "Password updated successfully"})
}

// passwordErrorCode maps a policy violation to its wire error code.
func passwordErrorCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "password_too_short"
	case errors.Is(err, auth.ErrPasswordNoUppercase):
		return "password_no_uppercase"
	case errors.Is(err, auth.ErrPasswordNoLowercase):
		return "password_no_lowercase"
	case errors.Is(err, auth.ErrPasswordNoDigit):
		return "password_no_digit"
	case errors.Is(err, auth.ErrPasswordNoSpecial):
		return "password_no_special"
	default:
		return "invalid_password"
	}
}
