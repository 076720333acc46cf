package geometry

import "github.com/keypad-studio/backend/internal/models"

// Slot wells on the 2500 family are narrower than the default tooling.
const pkp2500WellDiameterPctOfSlot = 122

const pkp2500SlotSizePct = (76.0 / 1001.0) * 100

func newPKP2500Geometry() models.KeypadModelGeometry {
	// Runtime-shell aligned centers for the PKP-2500-SI source artwork.
	// (The runtime shell differs subtly from the local PSD, so use the
	// runtime-aligned measurements.)
	slots := BuildSlotsFromCenterPercents([]CenterPercent{
		{XPct: 11.5884, YPct: 26.2693}, // slot_1
		{XPct: 30.6693, YPct: 26.4901}, // slot_2
		{XPct: 49.7502, YPct: 26.4901}, // slot_3
		{XPct: 68.8312, YPct: 26.4901}, // slot_4
		{XPct: 87.9121, YPct: 26.4901}, // slot_5
		{XPct: 11.7882, YPct: 75.9382}, // slot_6
		{XPct: 30.7692, YPct: 75.7174}, // slot_7
		{XPct: 49.8501, YPct: 75.7174}, // slot_8
		{XPct: 68.8312, YPct: 75.7174}, // slot_9
		{XPct: 87.7123, YPct: 75.7174}, // slot_10
	}, pkp2500SlotSizePct)
	slots = overrideWellDiameter(slots, pkp2500WellDiameterPctOfSlot)

	return models.KeypadModelGeometry{
		ModelCode:     "PKP-2500-SI",
		LayoutLabel:   "2x5",
		Columns:       5,
		Rows:          2,
		AspectRatio:   1420.0 / 580.0,
		IntrinsicSize: models.IntrinsicSize{Width: 1420, Height: 580},
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         slots,
		ButtonVisual:  DefaultButtonVisual,
	}
}
