package geometry

import "github.com/keypad-studio/backend/internal/models"

const pkp2300SlotSizePct = 11.85

func newPKP2300Geometry() models.KeypadModelGeometry {
	// Slot-by-slot from PKP-2300-SI.psd, transformed to this shell's render frame.
	slots := BuildSlotsFromCenterPercents([]CenterPercent{
		{XPct: 25.25, YPct: 20.87}, // slot_1
		{XPct: 50.15, YPct: 21.04}, // slot_2
		{XPct: 74.55, YPct: 21.04}, // slot_3
		{XPct: 25.65, YPct: 71.56}, // slot_4
		{XPct: 50.25, YPct: 71.39}, // slot_5
		{XPct: 74.45, YPct: 71.56}, // slot_6
	}, pkp2300SlotSizePct)

	return models.KeypadModelGeometry{
		ModelCode:     "PKP-2300-SI",
		LayoutLabel:   "2x3",
		Columns:       3,
		Rows:          2,
		AspectRatio:   1200.0 / 580.0,
		IntrinsicSize: models.IntrinsicSize{Width: 1200, Height: 580},
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         slots,
		ButtonVisual:  DefaultButtonVisual,
	}
}
