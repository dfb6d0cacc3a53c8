package transport

import (
	"errors"
	"net/http"

	"pharmacart-be/internal/middleware"
	"pharmacart-be/internal/user"
	"pharmacart-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile represents user profile data
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

// UserHandler handles HTTP requests for the session/auth stub
type UserHandler struct {
	userSvc user.Service
	logger  *zap.Logger
}

func NewUserHandler(userSvc user.Service, logger *zap.Logger) *UserHandler {
	return &UserHandler{userSvc: userSvc, logger: logger}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/profile", h.GetProfile)
		})
	})
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.userSvc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			middleware.RespondWithError(w, http.StatusConflict, "email already registered")
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, u, err := h.userSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        UserProfile{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.userSvc.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, Response{
		Success: true,
		Message: utils.StrPtr("Logged out"),
	})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	u, err := h.userSvc.GetByID(userID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	})
}
