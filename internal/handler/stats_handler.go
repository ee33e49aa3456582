package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/service"
)

// StatsHandler serves the dashboard's chart data.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func statsQuery(c echo.Context) service.StatsQuery {
	return service.StatsQuery{
		LGA:   c.QueryParam("lga"),
		Start: c.QueryParam("start"),
		End:   c.QueryParam("end"),
	}
}

// ListLGAs godoc
// @Summary List all known LGAs
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /lgas [get]
func (h *StatsHandler) ListLGAs(c echo.Context) error {
	lgas, err := h.statsService.ListLGAs(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"lgas": lgas})
}

// Spend godoc
// @Summary Monthly visitor spend per LGA
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param lga query string false "Restrict to one LGA"
// @Param start query string false "Inclusive start month (YYYY-MM)"
// @Param end query string false "Inclusive end month (YYYY-MM)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stats/spend [get]
func (h *StatsHandler) Spend(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return errorJSON(c, apperrors.ErrUnauthenticated)
	}
	points, err := h.statsService.Spend(c.Request().Context(), claims, statsQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": points})
}

// Occupancy godoc
// @Summary Monthly occupancy rate per LGA
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param lga query string false "Restrict to one LGA"
// @Param start query string false "Inclusive start month (YYYY-MM)"
// @Param end query string false "Inclusive end month (YYYY-MM)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stats/occupancy [get]
func (h *StatsHandler) Occupancy(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return errorJSON(c, apperrors.ErrUnauthenticated)
	}
	points, err := h.statsService.Occupancy(c.Request().Context(), claims, statsQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": points})
}

// Stay godoc
// @Summary Monthly average length of stay per LGA
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param lga query string false "Restrict to one LGA"
// @Param start query string false "Inclusive start month (YYYY-MM)"
// @Param end query string false "Inclusive end month (YYYY-MM)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /stats/stay [get]
func (h *StatsHandler) Stay(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return errorJSON(c, apperrors.ErrUnauthenticated)
	}
	points, err := h.statsService.Stay(c.Request().Context(), claims, statsQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": points})
}
