// handlers_catalog.go - Icon catalog endpoints
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/models"
)

// CatalogHandlerImpl implements the CatalogHandler interface
type CatalogHandlerImpl struct {
	client   *catalog.Client
	swatches []models.RingGlowOption
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(client *catalog.Client, swatches []models.RingGlowOption) CatalogHandler {
	return &CatalogHandlerImpl{client: client, swatches: swatches}
}

// HandleGetIconCatalog returns the resolved icon catalog plus the ring glow
// palette. The catalog is rebuilt per request; callers wanting caching layer
// it externally.
func (h *CatalogHandlerImpl) HandleGetIconCatalog(c echo.Context) error {
	icons, err := h.client.FetchIconCatalog(c.Request().Context())
	if err != nil {
		return NewCatalogUnavailableError(err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"icons":    icons,
		"swatches": h.swatches,
	})
}

// HandleGetIconCatalogMsgpack serves the same payload msgpack-encoded for
// bulk consumers.
func (h *CatalogHandlerImpl) HandleGetIconCatalogMsgpack(c echo.Context) error {
	icons, err := h.client.FetchIconCatalog(c.Request().Context())
	if err != nil {
		return NewCatalogUnavailableError(err)
	}

	data, err := msgpack.Marshal(map[string]interface{}{
		"icons":    icons,
		"swatches": h.swatches,
	})
	if err != nil {
		return NewInternalError("encoding catalog as msgpack", err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "application/msgpack", data)
}
