package geometry

import "github.com/keypad-studio/backend/internal/models"

// DefaultSlotSafeZone is the safe-zone tuning shared by every slot unless a
// model overrides it (PKP-2500/2600 use narrower wells).
var DefaultSlotSafeZone = models.SlotSafeZone{
	CenterXPctOfSlot:      50,
	CenterYPctOfSlot:      50,
	WellDiameterPctOfSlot: 145,
	LedOuterPctOfWell:     94,
	LedInnerPctOfWell:     80,
	IconDiameterPctOfSlot: IconFitPercent,
}

// IconFitPercent fills the matte insert area without clipping the well edge.
const IconFitPercent = 60

// DefaultButtonVisual is tuned against 12.4% slot boxes so the ring sits on
// the outer grey channel and matte symbols do not render undersized.
var DefaultButtonVisual = models.ButtonVisual{
	RingDiameterPctOfSlot: 136.3,
	IconDiameterPctOfSlot: IconFitPercent,
}

// GlobalGlowPhysics drives halo blur and intensity in the preview renderer.
// Values were tuned against the reference artwork; derived, not invariant-bearing.
var GlobalGlowPhysics = models.GlowPhysics{
	DefaultAlpha:               0.46,
	ThumbnailAlpha:             0.42,
	HaloNearBlurFactor:         0.022,
	HaloFarBlurFactor:          0.062,
	HaloNearBlurMin:            1.1,
	HaloFarBlurMin:             2.1,
	IntensityBase:              1.1,
	IntensityByDarkness:        0.55,
	ColorMatrixAlphaFloor:      0.85,
	ColorMatrixAlphaMultiplier: 2.25,
	MatteIconFitPct:            58,
}
