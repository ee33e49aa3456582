package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/service"
)

// AuthHandler handles registration and session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token plus everything the dashboard needs to
// set up its route guards without another round trip.
type LoginResponse struct {
	Token     string      `json:"token"`
	User      interface{} `json:"user"`
	LGAAccess interface{} `json:"lgaAccess"`
}

// RenewResponse carries a freshly issued token.
type RenewResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register godoc
// @Summary Register a new dashboard user
// @Description Creates a pending account. An admin must assign LGA access and activate it before login works.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

// Login godoc
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err.Error())
	}

	token, user, scope, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user, LGAAccess: scope})
}

// Renew godoc
// @Summary Renew the session token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RenewResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/renew [post]
func (h *AuthHandler) Renew(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return errorJSON(c, apperrors.ErrUnauthenticated)
	}

	token, user, err := h.authService.Renew(c.Request().Context(), claims.UserID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, RenewResponse{Token: token, User: user})
}
