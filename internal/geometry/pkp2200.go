package geometry

import "github.com/keypad-studio/backend/internal/models"

// PKP-2200-SI slots were hand-authored against the render canvas rather than
// generated, so the placements are written out verbatim.
func pkp2200Slots() map[string]models.SlotGeometry {
	return map[string]models.SlotGeometry{
		"slot_1": {
			Label: "Slot 1",
			// Source placement: left 31.3%, top 14.4%, width 12.4%
			CX: 0.375, CY: 0.206, R: 0.062,
			LeftPct: 31.3, TopPct: 14.4, SizePct: 12.4,
			SafeZone: defaultSafeZoneCopy(),
		},
		"slot_2": {
			Label: "Slot 2",
			// Source placement: left 56.3%, top 14.6%, width 12.4%
			CX: 0.625, CY: 0.208, R: 0.062,
			LeftPct: 56.3, TopPct: 14.6, SizePct: 12.4,
			SafeZone: defaultSafeZoneCopy(),
		},
		"slot_3": {
			Label: "Slot 3",
			// Source placement: left 31.6%, top 65.1%, width 12.4%
			CX: 0.378, CY: 0.713, R: 0.062,
			LeftPct: 31.6, TopPct: 65.1, SizePct: 12.4,
			SafeZone: defaultSafeZoneCopy(),
		},
		"slot_4": {
			Label: "Slot 4",
			// Source placement: left 56.1%, top 64.8%, width 12.4%
			CX: 0.623, CY: 0.71, R: 0.062,
			LeftPct: 56.1, TopPct: 64.8, SizePct: 12.4,
			SafeZone: defaultSafeZoneCopy(),
		},
	}
}

func newPKP2200Geometry() models.KeypadModelGeometry {
	return models.KeypadModelGeometry{
		ModelCode:   "PKP-2200-SI",
		LayoutLabel: "2x2",
		Columns:     2,
		Rows:        2,
		// Render canvas is 1000x580.
		AspectRatio:   1000.0 / 580.0,
		IntrinsicSize: models.IntrinsicSize{Width: 1000, Height: 580},
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         pkp2200Slots(),
		ButtonVisual:  DefaultButtonVisual,
	}
}
