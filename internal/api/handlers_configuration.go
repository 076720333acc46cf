// handlers_configuration.go - Configuration validation endpoint
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/configuration"
	"github.com/keypad-studio/backend/internal/geometry"
)

// ConfigurationHandlerImpl implements the ConfigurationHandler interface
type ConfigurationHandlerImpl struct {
	registry *geometry.Registry
}

// NewConfigurationHandler creates a new configuration handler
func NewConfigurationHandler(registry *geometry.Registry) ConfigurationHandler {
	return &ConfigurationHandlerImpl{registry: registry}
}

type validateConfigurationRequest struct {
	ModelCode     string `json:"modelCode"`
	Configuration string `json:"configuration"`
}

// HandleValidateConfiguration runs a raw configuration string through the
// strict codec against the model's canonical slot set. On success it returns
// the normalized configuration and its canonical serialization; on failure a
// 400 naming the failing slot.
func (h *ConfigurationHandlerImpl) HandleValidateConfiguration(c echo.Context) error {
	var req validateConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if req.ModelCode == "" {
		return NewBadRequestError("modelCode is required", nil)
	}

	slotIDs, err := h.registry.SlotIDs(req.ModelCode)
	if err != nil {
		return NewModelNotFoundError(req.ModelCode)
	}

	strict, err := configuration.ParseAndValidate(req.Configuration, slotIDs)
	if err != nil {
		return mapDomainError(err, "validating configuration")
	}

	serialized, err := configuration.Serialize(strict)
	if err != nil {
		return NewInternalError("serializing configuration", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"modelCode":     req.ModelCode,
		"configuration": strict,
		"serialized":    serialized,
	})
}
