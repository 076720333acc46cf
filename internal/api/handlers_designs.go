// handlers_designs.go - Saved design CRUD handlers
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/configuration"
	"github.com/keypad-studio/backend/internal/designs"
	"github.com/keypad-studio/backend/internal/geometry"
	"github.com/keypad-studio/backend/internal/models"
)

// DesignHandlerImpl implements the DesignHandler interface
type DesignHandlerImpl struct {
	store    *designs.Store
	registry *geometry.Registry
	catalog  *catalog.Client
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(store *designs.Store, registry *geometry.Registry, catalogClient *catalog.Client) DesignHandler {
	return &DesignHandlerImpl{store: store, registry: registry, catalog: catalogClient}
}

type designRequest struct {
	CustomerID    string `json:"customerId"`
	Name          string `json:"name"`
	ModelCode     string `json:"modelCode"`
	Configuration string `json:"configuration"`
}

// validateDesignPayload re-validates the configuration against the model's
// slot set and returns the validated form with its canonical serialization.
// Designs are only ever persisted in validated, normalized form.
func (h *DesignHandlerImpl) validateDesignPayload(req *designRequest) (models.StrictConfiguration, string, *APIError) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, "", NewBadRequestError("design name is required", nil)
	}

	slotIDs, err := h.registry.SlotIDs(req.ModelCode)
	if err != nil {
		return nil, "", NewModelNotFoundError(req.ModelCode)
	}

	strict, err := configuration.ParseAndValidate(req.Configuration, slotIDs)
	if err != nil {
		return nil, "", mapDomainError(err, "validating design configuration")
	}
	serialized, err := configuration.Serialize(strict)
	if err != nil {
		return nil, "", NewInternalError("serializing design configuration", err)
	}
	return strict, serialized, nil
}

// checkIconAvailability rejects a configuration referencing icons the live
// catalog no longer carries. A design that cannot be verified is not saved.
func (h *DesignHandlerImpl) checkIconAvailability(ctx context.Context, strict models.StrictConfiguration) *APIError {
	items, err := h.catalog.FetchIconCatalog(ctx)
	if err != nil {
		return NewCatalogUnavailableError(err)
	}
	if missing := catalog.FindMissingIconIDs(strict, items); len(missing) > 0 {
		return NewMissingIconsError(missing)
	}
	return nil
}

// HandleListDesigns returns a customer's saved designs.
func (h *DesignHandlerImpl) HandleListDesigns(c echo.Context) error {
	customerID := strings.TrimSpace(c.QueryParam("customerId"))
	if customerID == "" {
		return NewBadRequestError("customerId query parameter is required", nil)
	}

	list, err := h.store.ListByCustomer(c.Request().Context(), customerID, 0)
	if err != nil {
		return NewInternalError("listing designs", err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"designs": list,
	})
}

// HandleCreateDesign validates and persists a new design.
func (h *DesignHandlerImpl) HandleCreateDesign(c echo.Context) error {
	var req designRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if strings.TrimSpace(req.CustomerID) == "" {
		return NewBadRequestError("customerId is required", nil)
	}

	strict, serialized, apiErr := h.validateDesignPayload(&req)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := h.checkIconAvailability(c.Request().Context(), strict); apiErr != nil {
		return apiErr
	}

	design, err := h.store.Create(c.Request().Context(), strings.TrimSpace(req.CustomerID), req.Name, req.ModelCode, serialized)
	if err != nil {
		return NewInternalError("saving design", err)
	}
	return c.JSON(http.StatusCreated, design)
}

// HandleGetDesign returns one design by id.
func (h *DesignHandlerImpl) HandleGetDesign(c echo.Context) error {
	design, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapDomainError(err, "loading design")
	}
	return c.JSON(http.StatusOK, design)
}

// HandleUpdateDesign re-validates and replaces an existing design.
func (h *DesignHandlerImpl) HandleUpdateDesign(c echo.Context) error {
	var req designRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	strict, serialized, apiErr := h.validateDesignPayload(&req)
	if apiErr != nil {
		return apiErr
	}
	if apiErr := h.checkIconAvailability(c.Request().Context(), strict); apiErr != nil {
		return apiErr
	}

	design, err := h.store.Update(c.Request().Context(), c.Param("id"), req.Name, req.ModelCode, serialized)
	if err != nil {
		return mapDomainError(err, "updating design")
	}
	return c.JSON(http.StatusOK, design)
}

// HandleDeleteDesign removes a design.
func (h *DesignHandlerImpl) HandleDeleteDesign(c echo.Context) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err, "deleting design")
	}
	return c.NoContent(http.StatusNoContent)
}
