package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourboard/internal/service"
)

// AccessHandler handles the per-user LGA grant endpoints.
type AccessHandler struct {
	accessService service.AccessService
}

// NewAccessHandler creates a new access handler.
func NewAccessHandler(accessService service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// ReplaceGrantsRequest carries the full replacement grant set.
type ReplaceGrantsRequest struct {
	LGAs []string `json:"lgas"`
}

// GetGrants godoc
// @Summary List a user's LGA grants
// @Tags access
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/lgas [get]
func (h *AccessHandler) GetGrants(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	lgas, err := h.accessService.GetGrants(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"lgas": lgas})
}

// ReplaceGrants godoc
// @Summary Replace a user's LGA grants
// @Description Full replace. Names absent from the live LGA list and duplicates are dropped silently; the count actually assigned is returned.
// @Tags access
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body ReplaceGrantsRequest true "Replacement grant set"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/lgas [put]
func (h *AccessHandler) ReplaceGrants(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return validationJSON(c, "invalid user id")
	}
	var req ReplaceGrantsRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, "lgas must be an array of strings")
	}
	if req.LGAs == nil {
		return validationJSON(c, "lgas must be an array of strings")
	}

	assigned, err := h.accessService.ReplaceGrants(c.Request().Context(), id, req.LGAs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"assignedCount": assigned})
}
