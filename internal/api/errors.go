// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/configuration"
	"github.com/keypad-studio/backend/internal/designs"
	"github.com/keypad-studio/backend/internal/export"
	"github.com/keypad-studio/backend/internal/geometry"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	SlotID  string `json:"slotId,omitempty"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewModelNotFoundError creates a 404 for an unknown keypad model code.
// Unknown models are never silently defaulted to another model.
func NewModelNotFoundError(modelCode string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Code:    "MODEL_NOT_FOUND",
		Message: fmt.Sprintf("keypad model not found: %s", modelCode),
	}
}

// NewValidationError maps a configuration validation failure to a 400
// response carrying the offending slot id, so the configurator UI can point
// at the slot that broke.
func NewValidationError(err *configuration.ValidationError) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    string(err.Kind),
		Message: err.Message,
		SlotID:  err.SlotID,
	}
}

// NewMissingIconsError maps a configuration referencing icons absent from
// the live catalog to a 400 naming every missing icon id.
func NewMissingIconsError(iconIDs []string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "ICON_NOT_AVAILABLE",
		Message: fmt.Sprintf("configured icons are no longer available: %s", strings.Join(iconIDs, ", ")),
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewCatalogUnavailableError creates a 503 for a failed catalog fetch.
// The catalog is all-or-nothing: a failed page never yields a partial list.
func NewCatalogUnavailableError(cause error) *APIError {
	err := &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    "CATALOG_UNAVAILABLE",
		Message: "icon catalog is currently unavailable",
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// mapDomainError converts known domain errors to APIErrors; anything else
// becomes a 500.
func mapDomainError(err error, fallbackMessage string) *APIError {
	var validationErr *configuration.ValidationError
	if errors.As(err, &validationErr) {
		return NewValidationError(validationErr)
	}
	var modelErr *geometry.ModelNotFoundError
	if errors.As(err, &modelErr) {
		return NewModelNotFoundError(modelErr.ModelCode)
	}
	var missingIcons *catalog.MissingIconsError
	if errors.As(err, &missingIcons) {
		apiErr := NewMissingIconsError(missingIcons.IconIDs)
		apiErr.Details = err.Error()
		return apiErr
	}
	if errors.Is(err, designs.ErrNotFound) {
		return &APIError{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "design not found"}
	}
	if errors.Is(err, export.ErrOrderNotFound) {
		return &APIError{Status: http.StatusNotFound, Code: "ORDER_NOT_FOUND", Message: err.Error()}
	}
	if errors.Is(err, export.ErrNoConfiguredLines) {
		return &APIError{Status: http.StatusUnprocessableEntity, Code: "NO_CONFIGURED_LINES", Message: err.Error()}
	}
	return NewInternalError(fallbackMessage, err)
}

// ErrorHandler middleware for Echo
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "UNKNOWN_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		}
	}

	if !c.Response().Committed {
		c.JSON(apiErr.Status, apiErr)
	}
}

// RespondWithError is a helper to respond with an APIError
func RespondWithError(c echo.Context, err *APIError) error {
	return c.JSON(err.Status, err)
}
