// errors.go - Typed validation failures for configuration parsing
package configuration

import "fmt"

// ErrorKind identifies which validation stage rejected the input.
type ErrorKind string

const (
	ErrInvalidFormat ErrorKind = "INVALID_CONFIGURATION_FORMAT"
	ErrMissingSlot   ErrorKind = "MISSING_SLOT"
	ErrInvalidIconID ErrorKind = "INVALID_ICON_ID"
	ErrInvalidColor  ErrorKind = "INVALID_COLOR"
	ErrIncomplete    ErrorKind = "INCOMPLETE_CONFIGURATION"
)

// ValidationError carries the failing slot id (where applicable) so callers
// can tell the shopper exactly which slot broke. Validation failures always
// surface to the caller; there is no best-effort partial acceptance.
type ValidationError struct {
	Kind    ErrorKind
	SlotID  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newFormatError(message string) *ValidationError {
	return &ValidationError{Kind: ErrInvalidFormat, Message: message}
}

func newSlotError(kind ErrorKind, slotID, message string) *ValidationError {
	return &ValidationError{Kind: kind, SlotID: slotID, Message: message}
}

func newMissingSlotError(slotID string) *ValidationError {
	return newSlotError(ErrMissingSlot, slotID, fmt.Sprintf("missing required slot %q in configuration", slotID))
}

func newInvalidIconIDError(slotID string) *ValidationError {
	return newSlotError(ErrInvalidIconID, slotID, fmt.Sprintf("slot %q has an invalid iconId", slotID))
}

func newInvalidColorError(slotID string) *ValidationError {
	return newSlotError(ErrInvalidColor, slotID, fmt.Sprintf("slot %q has an invalid color, use #RRGGBB", slotID))
}
