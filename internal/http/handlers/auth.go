package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/finsight/server/internal/auth"
	"github.com/finsight/server/internal/mail"
	"github.com/finsight/server/internal/middleware"
	"github.com/finsight/server/internal/model"
	"github.com/finsight/server/internal/repo"
)

// AuthHandler handles OTP, registration, login and logout endpoints
type AuthHandler struct {
	ledger   *auth.Ledger
	sender   mail.Sender
	users    repo.UserRepo
	sessions *auth.Sessions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(ledger *auth.Ledger, sender mail.Sender, users repo.UserRepo, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{
		ledger:   ledger,
		sender:   sender,
		users:    users,
		sessions: sessions,
	}
}

// userResponse is the user object in API responses
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Location: user.Location,
		Phone:    user.Phone,
	}
}

// sendOTPRequest is the request body for POST /send-otp
type sendOTPRequest struct {
	Email string `json:"email"`
}

// HandleSendOTP handles POST /send-otp. The code is stored before the mail
// configuration check, so an unconfigured relay still leaves an issued record.
func (h *AuthHandler) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		respondError(w, http.StatusBadRequest, "missing_email")
		return
	}

	code, err := h.ledger.Issue(r.Context(), email)
	if err != nil {
		logMaskedEmail(email, "failed to issue OTP: %v", err)
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	if !h.sender.Configured() {
		respondError(w, http.StatusInternalServerError, "email_not_configured")
		return
	}

	if err := h.sender.SendOTP(email, code); err != nil {
		logMaskedEmail(email, "failed to deliver OTP: %v", err)
		respondErrorDetail(w, http.StatusInternalServerError, "email_failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

// verifyOTPRequest is the request body for POST /verify-otp
type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// verifyOTPResponse is the JSON response for verify-otp
type verifyOTPResponse struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason"`
}

// HandleVerifyOTP handles POST /verify-otp
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	email := strings.ToLower(req.Email)

	ok, reason, err := h.ledger.Verify(r.Context(), email, req.OTP)
	if err != nil {
		logMaskedEmail(email, "OTP verification failed: %v", err)
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}
	respondJSON(w, status, verifyOTPResponse{Verified: ok, Reason: string(reason)})
}

// createAccountRequest is the request body for POST /create-account
type createAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// createAccountResponse is the JSON response for create-account
type createAccountResponse struct {
	Created bool         `json:"created"`
	User    userResponse `json:"user"`
}

// HandleCreateAccount handles POST /create-account
func (h *AuthHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	req.Name = strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "missing_name")
		return
	}
	if email == "" {
		respondError(w, http.StatusBadRequest, "missing_email")
		return
	}
	if req.Password == "" {
		respondError(w, http.StatusBadRequest, "missing_password")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, email, hash, req.Location, req.Phone)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "email_exists")
			return
		}
		logMaskedEmail(email, "failed to create user: %v", err)
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	h.establishSession(w, user)
	respondJSON(w, http.StatusOK, createAccountResponse{Created: true, User: toUserResponse(user)})
}

// loginRequest is the request body for POST /login
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the JSON response for login
type loginResponse struct {
	LoggedIn bool         `json:"logged_in"`
	User     userResponse `json:"user"`
}

// HandleLogin handles POST /login. Unknown email and wrong password fail
// identically so the response leaks nothing about which one it was.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		logMaskedEmail(email, "failed to load user: %v", err)
		respondErrorDetail(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	h.establishSession(w, user)
	respondJSON(w, http.StatusOK, loginResponse{LoggedIn: true, User: toUserResponse(user)})
}

// HandleLogout handles POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// establishSession signs a token for the user and sets the session cookie.
// A signing failure leaves the response unauthenticated but does not fail the
// request; the client can still log in afterwards.
func (h *AuthHandler) establishSession(w http.ResponseWriter, user model.User) {
	token, err := h.sessions.Sign(user.ID, user.Email)
	if err != nil {
		logMaskedEmail(user.Email, "failed to sign session token: %v", err)
		return
	}
	setSessionCookie(w, token)
}

// setSessionCookie sets the HttpOnly session cookie. No Expires is set: the
// token itself carries no expiry and the cookie lives for the browser session.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// logMaskedEmail logs a message with the email partially masked
func logMaskedEmail(email, format string, args ...interface{}) {
	log.Printf("email "+maskEmail(email)+": "+format, args...)
}

// maskEmail partially masks an email address for logging (e.g. jo***@example.com)
func maskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		return "****"
	}
	name := parts[0]
	if len(name) <= 2 {
		return name[:1] + "***@" + parts[1]
	}
	return name[:2] + strings.Repeat("*", len(name)-2) + "@" + parts[1]
}
