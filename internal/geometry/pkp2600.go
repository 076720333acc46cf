package geometry

import "github.com/keypad-studio/backend/internal/models"

const pkp2600WellDiameterPctOfSlot = 122

const pkp2600SlotSizePct = (65.0 / 1000.0) * 100

func newPKP2600Geometry() models.KeypadModelGeometry {
	// Exact slot centers from PKP-2600-SI.psd layer bounds.
	slots := BuildSlotsFromCenterPercents([]CenterPercent{
		{XPct: 9.65, YPct: 25.4569},  // slot_1
		{XPct: 25.75, YPct: 25.718},  // slot_2
		{XPct: 41.85, YPct: 25.9791}, // slot_3
		{XPct: 58.05, YPct: 25.9791}, // slot_4
		{XPct: 74.25, YPct: 25.9791}, // slot_5
		{XPct: 90.35, YPct: 25.9791}, // slot_6
		{XPct: 9.75, YPct: 76.3708},  // slot_7
		{XPct: 25.85, YPct: 76.1097}, // slot_8
		{XPct: 41.95, YPct: 76.1097}, // slot_9
		{XPct: 58.15, YPct: 76.1097}, // slot_10
		{XPct: 74.25, YPct: 76.1097}, // slot_11
		{XPct: 90.15, YPct: 76.1097}, // slot_12
	}, pkp2600SlotSizePct)
	slots = overrideWellDiameter(slots, pkp2600WellDiameterPctOfSlot)

	return models.KeypadModelGeometry{
		ModelCode:     "PKP-2600-SI",
		LayoutLabel:   "2x6",
		Columns:       6,
		Rows:          2,
		AspectRatio:   1540.0 / 580.0,
		IntrinsicSize: models.IntrinsicSize{Width: 1540, Height: 580},
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         slots,
		ButtonVisual:  DefaultButtonVisual,
	}
}
