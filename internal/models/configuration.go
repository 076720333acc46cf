package models

// SlotConfiguration is one validated slot assignment. Color is nil when the
// shopper picked no ring glow; when set it is canonical uppercase #RRGGBB.
type SlotConfiguration struct {
	IconID string  `json:"iconId"`
	Color  *string `json:"color"`
}

// StrictConfiguration is the validated slot->icon assignment for one keypad.
// Keys are canonical slot ids (slot_1..slot_N). Its JSON form is the unit of
// exchange stored on an order line custom field; the shape must stay stable
// since historical orders hold it.
type StrictConfiguration map[string]SlotConfiguration

// SlotDraft is the in-progress, non-validated form of a slot assignment.
// A nil IconID means the slot is still empty.
type SlotDraft struct {
	IconID *string `json:"iconId"`
	Color  *string `json:"color"`
}

// ConfigurationDraft is the working representation used mid-edit. Only a
// complete draft converts to a StrictConfiguration at submission time.
type ConfigurationDraft map[string]SlotDraft
