// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import "github.com/labstack/echo/v4"

// HealthHandler handles liveness checks
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// GeometryHandler serves keypad model geometry lookups
type GeometryHandler interface {
	HandleListModels(c echo.Context) error
	HandleGetModel(c echo.Context) error
	HandleGetModelSlots(c echo.Context) error
}

// ConfigurationHandler validates shopper configurations
type ConfigurationHandler interface {
	HandleValidateConfiguration(c echo.Context) error
}

// CatalogHandler serves the resolved icon catalog
type CatalogHandler interface {
	HandleGetIconCatalog(c echo.Context) error
	HandleGetIconCatalogMsgpack(c echo.Context) error
}

// DesignHandler handles saved-design CRUD
type DesignHandler interface {
	HandleListDesigns(c echo.Context) error
	HandleCreateDesign(c echo.Context) error
	HandleGetDesign(c echo.Context) error
	HandleUpdateDesign(c echo.Context) error
	HandleDeleteDesign(c echo.Context) error
}

// ExportHandler builds order export payloads
type ExportHandler interface {
	HandleOrderExport(c echo.Context) error
}
