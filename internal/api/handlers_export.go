// handlers_export.go - Order export payload endpoint
package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/export"
)

// ExportHandlerImpl implements the ExportHandler interface
type ExportHandlerImpl struct {
	service *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *export.Service) ExportHandler {
	return &ExportHandlerImpl{service: service}
}

// HandleOrderExport builds the PDF export payload for one order code.
// Every stored line configuration is re-validated before it is handed on.
func (h *ExportHandlerImpl) HandleOrderExport(c echo.Context) error {
	orderCode := strings.TrimSpace(c.Param("code"))
	if orderCode == "" {
		return NewBadRequestError("order code is required", nil)
	}

	payload, err := h.service.BuildOrderPayload(c.Request().Context(), orderCode)
	if err != nil {
		return mapDomainError(err, "building order export payload")
	}
	return c.JSON(http.StatusOK, payload)
}
