package handler

import (
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(h *LicenseHandler, adminKey string, log logger.ZapLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))

	api := e.Group("/api/license")
	api.GET("/health", h.Health)
	api.POST("/validate", h.Validate)

	admin := e.Group("/api/admin", APIKeyAuth(adminKey))
	admin.GET("/licenses", h.ListLicenses)
	admin.POST("/licenses", h.CreateLicense)
	admin.GET("/licenses/by-email/:email", h.LicensesByEmail)
	admin.POST("/licenses/:id/revoke", h.Revoke)
	admin.POST("/licenses/:id/reactivate", h.Reactivate)
	admin.GET("/licenses/:id/validations", h.ValidationHistory)

	return e
}
