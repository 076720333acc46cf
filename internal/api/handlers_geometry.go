// handlers_geometry.go - Keypad model geometry lookups
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/geometry"
)

// GeometryHandlerImpl implements the GeometryHandler interface
type GeometryHandlerImpl struct {
	registry *geometry.Registry
}

// NewGeometryHandler creates a new geometry handler
func NewGeometryHandler(registry *geometry.Registry) GeometryHandler {
	return &GeometryHandlerImpl{registry: registry}
}

// modelSummary is the listing shape: layout metadata without the full slot table.
type modelSummary struct {
	ModelCode   string `json:"modelCode"`
	LayoutLabel string `json:"layoutLabel"`
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
	SlotCount   int    `json:"slotCount"`
}

// HandleListModels returns every published model's layout metadata.
func (h *GeometryHandlerImpl) HandleListModels(c echo.Context) error {
	codes := h.registry.Codes()
	summaries := make([]modelSummary, 0, len(codes))
	for _, code := range codes {
		model, err := h.registry.Get(code)
		if err != nil {
			return NewInternalError("loading model geometry", err)
		}
		summaries = append(summaries, modelSummary{
			ModelCode:   model.ModelCode,
			LayoutLabel: model.LayoutLabel,
			Columns:     model.Columns,
			Rows:        model.Rows,
			SlotCount:   model.SlotCount(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"models": summaries,
	})
}

// HandleGetModel returns the full geometry for one model code.
func (h *GeometryHandlerImpl) HandleGetModel(c echo.Context) error {
	modelCode := c.Param("code")
	model, err := h.registry.Get(modelCode)
	if err != nil {
		return NewModelNotFoundError(modelCode)
	}
	return c.JSON(http.StatusOK, model)
}

// HandleGetModelSlots returns the canonical ordered slot id set for a model.
func (h *GeometryHandlerImpl) HandleGetModelSlots(c echo.Context) error {
	modelCode := c.Param("code")
	slotIDs, err := h.registry.SlotIDs(modelCode)
	if err != nil {
		return NewModelNotFoundError(modelCode)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"modelCode": modelCode,
		"slotIds":   slotIDs,
	})
}
