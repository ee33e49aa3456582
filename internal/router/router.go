package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tourboard/internal/auth"
	apperrors "tourboard/internal/errors"
	"tourboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	accessHandler *handler.AccessHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	// Authenticated routes. Missing, malformed and expired tokens are all
	// rejected identically before any handler runs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup:    "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: jwtService.ParseTokenFunc,
		ErrorHandler: func(c echo.Context, err error) error {
			he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthenticated)
			return c.JSON(he.StatusCode, he.ToErrorResponse())
		},
	}))

	secured.POST("/users/renew", authHandler.Renew)
	secured.PATCH("/users/:id/password", userHandler.UpdatePassword)

	// Dashboard data routes
	secured.GET("/lgas", statsHandler.ListLGAs)
	secured.GET("/stats/spend", statsHandler.Spend)
	secured.GET("/stats/occupancy", statsHandler.Occupancy)
	secured.GET("/stats/stay", statsHandler.Stay)

	// Admin-only routes
	admin := secured.Group("", auth.RequireAdmin)
	admin.GET("/users/active", userHandler.ListActive)
	admin.GET("/users/pending", userHandler.ListPending)
	admin.PATCH("/users/:id/activate", userHandler.Activate)
	admin.PATCH("/users/:id/deactivate", userHandler.Deactivate)
	admin.PATCH("/users/:id/update", userHandler.Update)
	admin.DELETE("/users/:id/password", userHandler.ClearPassword)
	admin.GET("/users/:id/lgas", accessHandler.GetGrants)
	admin.PUT("/users/:id/lgas", accessHandler.ReplaceGrants)
	admin.DELETE("/users/:id", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
