package geometry

import "github.com/keypad-studio/backend/internal/models"

const pkp2400SlotSizePct = 10.9

func newPKP2400Geometry() models.KeypadModelGeometry {
	slots := BuildSlotsFromCenterPercents([]CenterPercent{
		{XPct: 13.7, YPct: 18.0}, // slot_1
		{XPct: 38.1, YPct: 16.2}, // slot_2
		{XPct: 61.8, YPct: 16.9}, // slot_3
		{XPct: 84.1, YPct: 16.2}, // slot_4
		{XPct: 13.2, YPct: 75.7}, // slot_5
		{XPct: 38.2, YPct: 74.8}, // slot_6
		{XPct: 61.9, YPct: 74.7}, // slot_7
		{XPct: 84.8, YPct: 74.9}, // slot_8
	}, pkp2400SlotSizePct)

	return models.KeypadModelGeometry{
		ModelCode:     "PKP-2400-SI",
		LayoutLabel:   "2x4",
		Columns:       4,
		Rows:          2,
		AspectRatio:   1320.0 / 580.0,
		IntrinsicSize: models.IntrinsicSize{Width: 1320, Height: 580},
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         slots,
		ButtonVisual:  DefaultButtonVisual,
	}
}
