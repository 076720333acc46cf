package configuration

import (
	"errors"
	"strings"
	"testing"

	"github.com/keypad-studio/backend/internal/models"
)

var fourSlots = []string{"slot_1", "slot_2", "slot_3", "slot_4"}

func strptr(value string) *string {
	return &value
}

func assertValidationError(t *testing.T, err error, kind ErrorKind, slotID string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected a validation error, got nil")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
	if validationErr.Kind != kind {
		t.Errorf("Expected kind %s, got %s", kind, validationErr.Kind)
	}
	if validationErr.SlotID != slotID {
		t.Errorf("Expected slot id %q, got %q", slotID, validationErr.SlotID)
	}
}

func TestParseAndValidate(t *testing.T) {
	t.Run("accepts a complete configuration", func(t *testing.T) {
		raw := `{
			"slot_1": {"iconId": "A01", "color": "#1EA7FF"},
			"slot_2": {"iconId": "B02", "color": null},
			"slot_3": {"iconId": "C03"},
			"slot_4": {"iconId": "D04", "color": "#ff3b30"}
		}`

		strict, err := ParseAndValidate(raw, fourSlots)
		if err != nil {
			t.Fatalf("Expected valid configuration, got %v", err)
		}
		if len(strict) != 4 {
			t.Fatalf("Expected 4 slots, got %d", len(strict))
		}
		if strict["slot_1"].IconID != "A01" {
			t.Errorf("Expected iconId A01, got %s", strict["slot_1"].IconID)
		}
		if strict["slot_1"].Color == nil || *strict["slot_1"].Color != "#1EA7FF" {
			t.Errorf("Expected color #1EA7FF, got %v", strict["slot_1"].Color)
		}
		if strict["slot_2"].Color != nil {
			t.Errorf("Expected null color to stay nil, got %v", *strict["slot_2"].Color)
		}
		if strict["slot_3"].Color != nil {
			t.Errorf("Expected absent color to stay nil, got %v", *strict["slot_3"].Color)
		}
		// Lowercase hex is normalized to the canonical uppercase form.
		if strict["slot_4"].Color == nil || *strict["slot_4"].Color != "#FF3B30" {
			t.Errorf("Expected normalized #FF3B30, got %v", strict["slot_4"].Color)
		}
	})

	t.Run("trims icon id whitespace", func(t *testing.T) {
		raw := `{"slot_1": {"iconId": "  A01  "}, "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
		strict, err := ParseAndValidate(raw, fourSlots)
		if err != nil {
			t.Fatalf("Expected valid configuration, got %v", err)
		}
		if strict["slot_1"].IconID != "A01" {
			t.Errorf("Expected trimmed iconId A01, got %q", strict["slot_1"].IconID)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := ParseAndValidate(`{not json`, fourSlots)
		assertValidationError(t, err, ErrInvalidFormat, "")
	})

	t.Run("rejects non-object payloads", func(t *testing.T) {
		for _, raw := range []string{`null`, `[]`, `"text"`, `42`} {
			_, err := ParseAndValidate(raw, fourSlots)
			assertValidationError(t, err, ErrInvalidFormat, "")
		}
	})

	t.Run("rejects a missing slot", func(t *testing.T) {
		raw := `{"slot_1": {"iconId": "A01"}, "slot_2": {"iconId": "B02"}, "slot_4": {"iconId": "D04"}}`
		_, err := ParseAndValidate(raw, fourSlots)
		assertValidationError(t, err, ErrMissingSlot, "slot_3")
	})

	t.Run("rejects a non-object slot value", func(t *testing.T) {
		raw := `{"slot_1": "A01", "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
		_, err := ParseAndValidate(raw, fourSlots)
		assertValidationError(t, err, ErrInvalidFormat, "slot_1")
	})

	t.Run("rejects invalid icon ids", func(t *testing.T) {
		for _, iconID := range []string{"A01!", "A-01", "A 01", "", "  ", "ä01"} {
			raw := `{"slot_1": {"iconId": "` + iconID + `"}, "slot_2": {"iconId": "B02"},
				"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
			_, err := ParseAndValidate(raw, fourSlots)
			assertValidationError(t, err, ErrInvalidIconID, "slot_1")
		}
	})

	t.Run("rejects a slot without an iconId", func(t *testing.T) {
		raw := `{"slot_1": {"color": "#FFFFFF"}, "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
		_, err := ParseAndValidate(raw, fourSlots)
		assertValidationError(t, err, ErrInvalidIconID, "slot_1")
	})

	t.Run("rejects invalid colors", func(t *testing.T) {
		for _, color := range []string{`"#ZZZZZZ"`, `"#FFF"`, `"FF3B30"`, `"#FF3B301"`, `42`} {
			raw := `{"slot_1": {"iconId": "A01", "color": ` + color + `}, "slot_2": {"iconId": "B02"},
				"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
			_, err := ParseAndValidate(raw, fourSlots)
			assertValidationError(t, err, ErrInvalidColor, "slot_1")
		}
	})

	t.Run("empty color string means no glow", func(t *testing.T) {
		raw := `{"slot_1": {"iconId": "A01", "color": ""}, "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"}}`
		strict, err := ParseAndValidate(raw, fourSlots)
		if err != nil {
			t.Fatalf("Expected valid configuration, got %v", err)
		}
		if strict["slot_1"].Color != nil {
			t.Errorf("Expected empty color to normalize to nil, got %v", *strict["slot_1"].Color)
		}
	})

	t.Run("ignores keys beyond the required slot set", func(t *testing.T) {
		raw := `{"slot_1": {"iconId": "A01"}, "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03"}, "slot_4": {"iconId": "D04"},
			"slot_5": {"iconId": "!!invalid!!"}, "metadata": {"schema": 2}}`
		strict, err := ParseAndValidate(raw, fourSlots)
		if err != nil {
			t.Fatalf("Expected extra keys to be ignored, got %v", err)
		}
		if len(strict) != 4 {
			t.Errorf("Expected only the 4 required slots, got %d", len(strict))
		}
		if _, ok := strict["slot_5"]; ok {
			t.Error("Expected slot_5 to be dropped")
		}
	})
}

func TestNormalizeRingColor(t *testing.T) {
	cases := []struct {
		input    string
		expected *string
		ok       bool
	}{
		{"", nil, true},
		{"   ", nil, true},
		{"#FF3B30", strptr("#FF3B30"), true},
		{"#ff3b30", strptr("#FF3B30"), true},
		{"#abc123", strptr("#ABC123"), true},
		{" #1ea7ff ", strptr("#1EA7FF"), true},
		{"#FFF", nil, false},
		{"FF3B30", nil, false},
		{"#GG0000", nil, false},
		{"#FF3B30FF", nil, false},
	}

	for _, tc := range cases {
		got, ok := NormalizeRingColor(tc.input)
		if ok != tc.ok {
			t.Errorf("%q: expected ok=%v, got %v", tc.input, tc.ok, ok)
			continue
		}
		if (got == nil) != (tc.expected == nil) {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.expected, got)
			continue
		}
		if got != nil && *got != *tc.expected {
			t.Errorf("%q: expected %s, got %s", tc.input, *tc.expected, *got)
		}
	}
}

func TestSerialize(t *testing.T) {
	t.Run("round trips through the parser", func(t *testing.T) {
		raw := `{"slot_1": {"iconId": "A01", "color": "#ff3b30"}, "slot_2": {"iconId": "B02"},
			"slot_3": {"iconId": "C03", "color": null}, "slot_4": {"iconId": "D04"}}`

		strict, err := ParseAndValidate(raw, fourSlots)
		if err != nil {
			t.Fatalf("Failed to parse: %v", err)
		}
		serialized, err := Serialize(strict)
		if err != nil {
			t.Fatalf("Failed to serialize: %v", err)
		}

		reparsed, err := ParseAndValidate(serialized, fourSlots)
		if err != nil {
			t.Fatalf("Canonical form failed to reparse: %v", err)
		}
		reserialized, err := Serialize(reparsed)
		if err != nil {
			t.Fatalf("Failed to reserialize: %v", err)
		}
		if serialized != reserialized {
			t.Errorf("Expected stable canonical form, got\n%s\nvs\n%s", serialized, reserialized)
		}
	})

	t.Run("emits sorted keys", func(t *testing.T) {
		strict := models.StrictConfiguration{
			"slot_2": {IconID: "B02"},
			"slot_1": {IconID: "A01"},
		}
		serialized, err := Serialize(strict)
		if err != nil {
			t.Fatalf("Failed to serialize: %v", err)
		}
		if strings.Index(serialized, "slot_1") > strings.Index(serialized, "slot_2") {
			t.Errorf("Expected slot_1 before slot_2 in %s", serialized)
		}
	})
}

func TestTopLevelSlotKeys(t *testing.T) {
	t.Run("returns slot keys in slot order", func(t *testing.T) {
		raw := `{"slot_10": {}, "slot_2": {}, "slot_1": {}, "metadata": true}`
		keys, err := TopLevelSlotKeys(raw)
		if err != nil {
			t.Fatalf("Failed to list keys: %v", err)
		}
		expected := []string{"slot_1", "slot_2", "slot_10"}
		if len(keys) != len(expected) {
			t.Fatalf("Expected %d keys, got %d: %v", len(expected), len(keys), keys)
		}
		for i, key := range expected {
			if keys[i] != key {
				t.Errorf("Expected %s at position %d, got %s", key, i, keys[i])
			}
		}
	})

	t.Run("rejects non-object payloads", func(t *testing.T) {
		for _, raw := range []string{`[]`, `null`, `broken`} {
			if _, err := TopLevelSlotKeys(raw); err == nil {
				t.Errorf("Expected %q to be rejected", raw)
			}
		}
	})
}

func TestDrafts(t *testing.T) {
	t.Run("empty draft carries every slot", func(t *testing.T) {
		draft := NewEmptyDraft(fourSlots)
		if len(draft) != 4 {
			t.Fatalf("Expected 4 draft slots, got %d", len(draft))
		}
		for _, slotID := range fourSlots {
			slot, ok := draft[slotID]
			if !ok {
				t.Errorf("Expected draft slot %s", slotID)
				continue
			}
			if slot.IconID != nil || slot.Color != nil {
				t.Errorf("Expected %s to start empty", slotID)
			}
		}
	})

	t.Run("completeness requires a valid icon on every slot", func(t *testing.T) {
		draft := NewEmptyDraft(fourSlots)
		if IsDraftComplete(draft, fourSlots) {
			t.Error("Expected empty draft to be incomplete")
		}

		for _, slotID := range fourSlots {
			draft[slotID] = models.SlotDraft{IconID: strptr("A01")}
		}
		if !IsDraftComplete(draft, fourSlots) {
			t.Error("Expected fully assigned draft to be complete")
		}

		draft["slot_3"] = models.SlotDraft{IconID: strptr("not valid!")}
		if IsDraftComplete(draft, fourSlots) {
			t.Error("Expected draft with an invalid icon id to be incomplete")
		}
	})

	t.Run("complete draft converts to strict form", func(t *testing.T) {
		draft := models.ConfigurationDraft{
			"slot_1": {IconID: strptr("A01"), Color: strptr("#ff3b30")},
			"slot_2": {IconID: strptr(" B02 ")},
			"slot_3": {IconID: strptr("C03"), Color: strptr("")},
			"slot_4": {IconID: strptr("D04")},
		}

		strict, err := DraftToStrict(draft, fourSlots)
		if err != nil {
			t.Fatalf("Expected conversion to succeed, got %v", err)
		}
		if strict["slot_1"].Color == nil || *strict["slot_1"].Color != "#FF3B30" {
			t.Errorf("Expected normalized color, got %v", strict["slot_1"].Color)
		}
		if strict["slot_2"].IconID != "B02" {
			t.Errorf("Expected trimmed icon id B02, got %q", strict["slot_2"].IconID)
		}
		if strict["slot_3"].Color != nil {
			t.Error("Expected empty color to convert to nil")
		}
	})

	t.Run("incomplete draft refuses to convert", func(t *testing.T) {
		draft := models.ConfigurationDraft{
			"slot_1": {IconID: strptr("A01")},
			"slot_2": {IconID: strptr("B02")},
			"slot_3": {},
			"slot_4": {IconID: strptr("D04")},
		}
		_, err := DraftToStrict(draft, fourSlots)
		assertValidationError(t, err, ErrIncomplete, "slot_3")
	})

	t.Run("invalid draft color refuses to convert", func(t *testing.T) {
		draft := models.ConfigurationDraft{
			"slot_1": {IconID: strptr("A01"), Color: strptr("#nope")},
			"slot_2": {IconID: strptr("B02")},
			"slot_3": {IconID: strptr("C03")},
			"slot_4": {IconID: strptr("D04")},
		}
		_, err := DraftToStrict(draft, fourSlots)
		assertValidationError(t, err, ErrInvalidColor, "slot_1")
	})
}
