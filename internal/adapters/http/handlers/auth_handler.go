package handlers

import (
	"errors"
	"strings"
	"time"

	"waqf-task-tracker/internal/adapters/http/middleware"
	"waqf-task-tracker/internal/config"
	"waqf-task-tracker/internal/core/services"
	"waqf-task-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles user registration, login and profile endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} response.ErrorBody
// @Router /api/users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Please provide all required fields")
	}

	input := &services.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			// duplicate unique field maps to 400, matching the original API
			return response.BadRequest(c, "User already exists")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	h.setSessionCookie(c, result.Token)

	return response.Created(c, result.User)
}

// Login handles user login
// @Summary Login user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} response.ErrorBody
// @Router /api/users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setSessionCookie(c, result.Token)

	return response.JSON(c, result.User)
}

// Logout handles user logout. Clearing an absent cookie is not an error.
// @Summary Logout user
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/users/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	return response.JSON(c, fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetProfile returns the authenticated user's public profile
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/users/profile [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Not authorized")
	}

	profile, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.JSON(c, profile)
}

// setSessionCookie sets the HTTP-only session cookie
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.JWT.SessionDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie clears the session cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
