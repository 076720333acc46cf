// Package models contains domain types for the keypad configurator backend.
package models

// SlotCoordMode documents which convention a model's LeftPct/TopPct follow.
type SlotCoordMode string

const (
	SlotCoordModeCenter  SlotCoordMode = "center"
	SlotCoordModeTopLeft SlotCoordMode = "topLeft"
)

// SlotSafeZone describes the physical sub-placements inside a slot box.
// All values are percentages.
type SlotSafeZone struct {
	// Offsets measured inside the slot box.
	CenterXPctOfSlot float64 `json:"centerXPctOfSlot"`
	CenterYPctOfSlot float64 `json:"centerYPctOfSlot"`
	// Effective physical button/well diameter relative to slot box size.
	WellDiameterPctOfSlot float64 `json:"wellDiameterPctOfSlot"`
	// LED ring band around the well radius.
	LedOuterPctOfWell float64 `json:"ledOuterPctOfWell"`
	LedInnerPctOfWell float64 `json:"ledInnerPctOfWell"`
	// Icon insert diameter relative to slot box size.
	IconDiameterPctOfSlot float64 `json:"iconDiameterPctOfSlot"`
}

// SlotGeometry places a single slot within the normalized keypad face.
type SlotGeometry struct {
	Label string `json:"label"`
	// Normalized center and radius coordinates in the shared stage space.
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
	// Slot placement used by the percentage-box preview pipeline.
	LeftPct   float64       `json:"leftPct"`
	TopPct    float64       `json:"topPct"`
	SizePct   float64       `json:"sizePct"`
	CoordMode SlotCoordMode `json:"coordMode,omitempty"`
	SafeZone  *SlotSafeZone `json:"safeZone,omitempty"`
}

// PercentBox is the bounding-box form of a slot placement.
type PercentBox struct {
	LeftPct   float64 `json:"leftPct"`
	TopPct    float64 `json:"topPct"`
	WidthPct  float64 `json:"widthPct"`
	HeightPct float64 `json:"heightPct"`
}

// IntrinsicSize is the pixel canvas the reference artwork was authored at.
type IntrinsicSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ButtonVisual is model-wide visual tuning, overridable per-slot via SafeZone.
type ButtonVisual struct {
	RingDiameterPctOfSlot float64 `json:"ringDiameterPctOfSlot"`
	IconDiameterPctOfSlot float64 `json:"iconDiameterPctOfSlot"`
}

// KeypadModelGeometry is the published slot layout for one physical SKU family.
// Instances are built once at startup and never mutated afterwards.
type KeypadModelGeometry struct {
	ModelCode     string                  `json:"modelCode"`
	LayoutLabel   string                  `json:"layoutLabel"`
	Columns       int                     `json:"columns"`
	Rows          int                     `json:"rows"`
	AspectRatio   float64                 `json:"aspectRatio"`
	IntrinsicSize IntrinsicSize           `json:"intrinsicSize"`
	SlotSizeMm    float64                 `json:"slotSizeMm"`
	SlotCoordMode SlotCoordMode           `json:"slotCoordMode"`
	Slots         map[string]SlotGeometry `json:"slots"`
	ButtonVisual  ButtonVisual            `json:"buttonVisual"`
}

// SlotCount returns the number of published slots on the model.
func (g *KeypadModelGeometry) SlotCount() int {
	return len(g.Slots)
}

// GlowPhysics holds the halo/backlight tuning consumed by the preview renderer.
type GlowPhysics struct {
	DefaultAlpha              float64 `json:"defaultAlpha"`
	ThumbnailAlpha            float64 `json:"thumbnailAlpha"`
	HaloNearBlurFactor        float64 `json:"haloNearBlurFactor"`
	HaloFarBlurFactor         float64 `json:"haloFarBlurFactor"`
	HaloNearBlurMin           float64 `json:"haloNearBlurMin"`
	HaloFarBlurMin            float64 `json:"haloFarBlurMin"`
	IntensityBase             float64 `json:"intensityBase"`
	IntensityByDarkness       float64 `json:"intensityByDarkness"`
	ColorMatrixAlphaFloor     float64 `json:"colorMatrixAlphaFloor"`
	ColorMatrixAlphaMultiplier float64 `json:"colorMatrixAlphaMultiplier"`
	MatteIconFitPct           float64 `json:"matteIconFitPct"`
}
