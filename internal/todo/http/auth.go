package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lakefield/tasklist/internal/todo/service"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/httpx"
	"github.com/lakefield/tasklist/pkg/slogx"
)

type AuthHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and immediately issues a token, so the
// client is logged in straight after signup.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrUserAlreadyExists):
			httpx.WriteError(w, http.StatusBadRequest, "Username or email already exists")
		default:
			log.Error("register failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Error creating user")
		}
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("token issue failed", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authResponse{
		Message: "User created successfully",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// HandleLogin exchanges an email/password pair for a fresh token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("token issue failed", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// HandleProfile returns the authenticated user's record, sans password.
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error("profile load failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
