package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/service"
)

// UserHandler handles the admin-facing user lifecycle endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest patches a user's name and/or role.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
}

// UpdatePasswordRequest sets a new password.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ListActive godoc
// @Summary List activated users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/active [get]
func (h *UserHandler) ListActive(c echo.Context) error {
	users, err := h.userService.ListActive(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// ListPending godoc
// @Summary List users awaiting activation
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/pending [get]
func (h *UserHandler) ListPending(c echo.Context) error {
	users, err := h.userService.ListPending(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// Activate godoc
// @Summary Activate a pending user
// @Description Fails with code LGA_REQUIRED while the user has no LGA grants.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id}/activate [patch]
func (h *UserHandler) Activate(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	user, err := h.userService.Activate(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Deactivate godoc
// @Summary Deactivate a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	user, err := h.userService.Deactivate(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Update godoc
// @Summary Update a user's name or role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/update [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, "invalid request body")
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.FullName, req.Role)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// UpdatePassword godoc
// @Summary Set a user's password
// @Description A user may change their own password; admins may change anyone's.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdatePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/password [patch]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}

	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return errorJSON(c, apperrors.ErrUnauthenticated)
	}
	if claims.UserID != id && claims.Role != model.RoleAdmin {
		return errorJSON(c, apperrors.ErrForbidden)
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationJSON(c, err.Error())
	}

	if err := h.userService.UpdatePassword(c.Request().Context(), id, req.Password); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}

// ClearPassword godoc
// @Summary Clear a user's password
// @Description Blanks the stored hash so the account cannot log in until a new password is set.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/password [delete]
func (h *UserHandler) ClearPassword(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	if err := h.userService.ClearPassword(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password cleared"})
}

// Delete godoc
// @Summary Delete a user
// @Description Removes the user and all their LGA grants in one transaction.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
