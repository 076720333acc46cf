// Package configuration is the single authority for turning an untrusted
// configuration string into a validated slot->icon assignment and back.
//
// The codec runs at two trust boundaries: accepting configurator input before
// an order line is committed, and re-validating previously stored
// configuration JSON before it feeds a preview or PDF export. The stored
// value is never trusted blindly; it may have been written by an older schema
// version or tampered with client-side.
package configuration

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/keypad-studio/backend/internal/models"
)

var (
	iconIDPattern   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)
)

// IsValidIconID reports whether a trimmed icon id matches the external-key pattern.
func IsValidIconID(value string) bool {
	return iconIDPattern.MatchString(value)
}

// NormalizeRingColor canonicalizes a color value to uppercase #RRGGBB.
// Empty or whitespace-only input normalizes to nil (no glow).
func NormalizeRingColor(value string) (*string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, true
	}
	normalized := strings.ToUpper(trimmed)
	if !hexColorPattern.MatchString(normalized) {
		return nil, false
	}
	return &normalized, true
}

// ParseAndValidate parses raw JSON against the canonical slot set of the
// target model and returns the strict, normalized mapping. Keys beyond the
// required slot set are silently ignored so configurations written by newer
// schema versions still parse, but they are never emitted on serialization.
func ParseAndValidate(raw string, requiredSlotIDs []string) (models.StrictConfiguration, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, newFormatError("configuration must be valid JSON keyed by slot ids")
	}
	if payload == nil {
		return nil, newFormatError("configuration must be an object keyed by slot ids")
	}

	strict := make(models.StrictConfiguration, len(requiredSlotIDs))
	for _, slotID := range requiredSlotIDs {
		rawSlot, ok := payload[slotID]
		if !ok {
			return nil, newMissingSlotError(slotID)
		}

		var slotPayload map[string]json.RawMessage
		if err := json.Unmarshal(rawSlot, &slotPayload); err != nil || slotPayload == nil {
			return nil, newSlotError(ErrInvalidFormat, slotID,
				fmt.Sprintf("slot %q must be an object with iconId and color", slotID))
		}

		slot, err := parseSlot(slotID, slotPayload)
		if err != nil {
			return nil, err
		}
		strict[slotID] = slot
	}

	return strict, nil
}

func parseSlot(slotID string, payload map[string]json.RawMessage) (models.SlotConfiguration, error) {
	var slot models.SlotConfiguration

	rawIconID, ok := payload["iconId"]
	if !ok {
		return slot, newInvalidIconIDError(slotID)
	}
	var iconID string
	if err := json.Unmarshal(rawIconID, &iconID); err != nil {
		return slot, newInvalidIconIDError(slotID)
	}
	iconID = strings.TrimSpace(iconID)
	if iconID == "" || !IsValidIconID(iconID) {
		return slot, newInvalidIconIDError(slotID)
	}
	slot.IconID = iconID

	if rawColor, ok := payload["color"]; ok {
		color, err := parseColor(slotID, rawColor)
		if err != nil {
			return slot, err
		}
		slot.Color = color
	}

	return slot, nil
}

func parseColor(slotID string, raw json.RawMessage) (*string, error) {
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, newInvalidColorError(slotID)
	}
	if value == nil {
		return nil, nil
	}
	normalized, ok := NormalizeRingColor(*value)
	if !ok {
		return nil, newInvalidColorError(slotID)
	}
	return normalized, nil
}

// Serialize produces the canonical JSON form of a validated configuration.
// Output is deterministic (keys sorted) and stable under round-trip through
// ParseAndValidate. This exact shape is what order lines persist.
func Serialize(config models.StrictConfiguration) (string, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("serializing configuration: %w", err)
	}
	return string(data), nil
}

// TopLevelSlotKeys parses raw JSON just far enough to report which slot-shaped
// keys it carries, in slot order. Used to infer a model for historical
// configurations stored without a model code.
func TopLevelSlotKeys(raw string) ([]string, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload == nil {
		return nil, newFormatError("configuration must be valid JSON keyed by slot ids")
	}

	var keys []string
	for key := range payload {
		if slotKeyPattern.MatchString(key) {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return slotKeyIndex(keys[i]) < slotKeyIndex(keys[j])
	})
	return keys, nil
}

var slotKeyPattern = regexp.MustCompile(`(?i)^slot_(\d+)$`)

func slotKeyIndex(key string) int {
	match := slotKeyPattern.FindStringSubmatch(key)
	if match == nil {
		return math.MaxInt
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return math.MaxInt
	}
	return index
}

// NewEmptyDraft returns a working draft with every slot present and empty.
// Drafts hold in-progress edits; only a complete draft converts to the strict
// form at submission time.
func NewEmptyDraft(slotIDs []string) models.ConfigurationDraft {
	draft := make(models.ConfigurationDraft, len(slotIDs))
	for _, slotID := range slotIDs {
		draft[slotID] = models.SlotDraft{}
	}
	return draft
}

// IsDraftComplete reports whether every required slot carries a valid icon id.
func IsDraftComplete(draft models.ConfigurationDraft, requiredSlotIDs []string) bool {
	for _, slotID := range requiredSlotIDs {
		slot, ok := draft[slotID]
		if !ok || slot.IconID == nil {
			return false
		}
		if !IsValidIconID(strings.TrimSpace(*slot.IconID)) {
			return false
		}
	}
	return true
}

// DraftToStrict converts a complete draft into a strict configuration,
// normalizing icon ids and colors. An incomplete draft is an error.
func DraftToStrict(draft models.ConfigurationDraft, requiredSlotIDs []string) (models.StrictConfiguration, error) {
	strict := make(models.StrictConfiguration, len(requiredSlotIDs))
	for _, slotID := range requiredSlotIDs {
		slot, ok := draft[slotID]
		if !ok || slot.IconID == nil {
			return nil, newSlotError(ErrIncomplete, slotID,
				fmt.Sprintf("slot %q has no icon assigned", slotID))
		}
		iconID := strings.TrimSpace(*slot.IconID)
		if iconID == "" || !IsValidIconID(iconID) {
			return nil, newInvalidIconIDError(slotID)
		}

		var color *string
		if slot.Color != nil {
			normalized, ok := NormalizeRingColor(*slot.Color)
			if !ok {
				return nil, newInvalidColorError(slotID)
			}
			color = normalized
		}

		strict[slotID] = models.SlotConfiguration{IconID: iconID, Color: color}
	}
	return strict, nil
}
