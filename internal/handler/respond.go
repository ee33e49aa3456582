package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tourboard/internal/errors"
)

// errorJSON writes the standardized error body for a domain error.
func errorJSON(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

// validationJSON writes a 400 for malformed or missing input.
func validationJSON(c echo.Context, message string) error {
	he := apperrors.NewHTTPError(http.StatusBadRequest, message, "VALIDATION_ERROR")
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}

// userIDParam parses the :id path parameter.
func userIDParam(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
