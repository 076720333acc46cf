// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/designs"
	"github.com/keypad-studio/backend/internal/export"
	"github.com/keypad-studio/backend/internal/geometry"
	"github.com/keypad-studio/backend/internal/models"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Registry      *geometry.Registry
	CatalogClient *catalog.Client
	DesignStore   *designs.Store
	ExportService *export.Service
	Swatches      []models.RingGlowOption
	Version       string

	// AllowDesignDeletion gates the DELETE route, mirroring the security
	// section of the XML config.
	AllowDesignDeletion bool
}

// Handlers holds all handler instances
type Handlers struct {
	Health        HealthHandler
	Geometry      GeometryHandler
	Configuration ConfigurationHandler
	Catalog       CatalogHandler
	Design        DesignHandler
	Export        ExportHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(deps.Version),
		Geometry:      NewGeometryHandler(deps.Registry),
		Configuration: NewConfigurationHandler(deps.Registry),
		Catalog:       NewCatalogHandler(deps.CatalogClient, deps.Swatches),
		Design:        NewDesignHandler(deps.DesignStore, deps.Registry, deps.CatalogClient),
		Export:        NewExportHandler(deps.ExportService),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers, deps *Dependencies) {
	e.HTTPErrorHandler = ErrorHandler

	apiGroup := e.Group("/api")

	// Health check
	apiGroup.GET("/health", handlers.Health.HandleHealth)

	// Keypad model geometry
	modelGroup := apiGroup.Group("/models")
	modelGroup.GET("", handlers.Geometry.HandleListModels)
	modelGroup.GET("/:code", handlers.Geometry.HandleGetModel)
	modelGroup.GET("/:code/slots", handlers.Geometry.HandleGetModelSlots)

	// Configuration validation
	apiGroup.POST("/configurations/validate", handlers.Configuration.HandleValidateConfiguration)

	// Icon catalog
	catalogGroup := apiGroup.Group("/configurator")
	catalogGroup.GET("/icon-catalog", handlers.Catalog.HandleGetIconCatalog)
	catalogGroup.GET("/icon-catalog/msgpack", handlers.Catalog.HandleGetIconCatalogMsgpack)

	// Saved designs
	designGroup := apiGroup.Group("/designs")
	designGroup.GET("", handlers.Design.HandleListDesigns)
	designGroup.POST("", handlers.Design.HandleCreateDesign)
	designGroup.GET("/:id", handlers.Design.HandleGetDesign)
	designGroup.PUT("/:id", handlers.Design.HandleUpdateDesign)
	if deps.AllowDesignDeletion {
		designGroup.DELETE("/:id", handlers.Design.HandleDeleteDesign)
	}

	// Order export
	apiGroup.GET("/orders/:code/export", handlers.Export.HandleOrderExport)
}
