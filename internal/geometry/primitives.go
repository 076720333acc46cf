// Package geometry defines the slot layout tables for every keypad model and
// the pure construction helpers the per-model definitions are built from.
//
// Different models were measured by different methods over time (uniform grid
// math, hand-picked centers, design-tool bounding boxes), so the package
// exposes one construction strategy per authoring style plus a correction
// pass, keeping each per-model file declarative.
package geometry

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/keypad-studio/backend/internal/models"
)

var slotIDPattern = regexp.MustCompile(`(?i)^slot_(\d+)$`)

// CreateSlotID returns the canonical slot id for a 1-based slot index.
func CreateSlotID(index int) string {
	return fmt.Sprintf("slot_%d", index)
}

// SlotIDIndex parses the numeric index out of a slot id. Unparseable ids sort
// after every valid one.
func SlotIDIndex(slotID string) int {
	match := slotIDPattern.FindStringSubmatch(slotID)
	if match == nil {
		return math.MaxInt
	}
	parsed, err := strconv.Atoi(match[1])
	if err != nil {
		return math.MaxInt
	}
	return parsed
}

// IsSlotID reports whether a string is a well-formed slot id.
func IsSlotID(value string) bool {
	return slotIDPattern.MatchString(value)
}

// SortSlotIDs returns a copy of slotIDs ordered by numeric slot index.
func SortSlotIDs(slotIDs []string) []string {
	sorted := make([]string, len(slotIDs))
	copy(sorted, slotIDs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return SlotIDIndex(sorted[i]) < SlotIDIndex(sorted[j])
	})
	return sorted
}

// SlotGeometryToPercentBox converts a slot's center/radius placement to the
// bounding-box form used by the percentage-box rendering pipeline.
func SlotGeometryToPercentBox(slot models.SlotGeometry) models.PercentBox {
	return models.PercentBox{
		LeftPct:   (slot.CX - slot.R) * 100,
		TopPct:    (slot.CY - slot.R) * 100,
		WidthPct:  slot.R * 200,
		HeightPct: slot.R * 200,
	}
}

func clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

func defaultSafeZoneCopy() *models.SlotSafeZone {
	zone := DefaultSlotSafeZone
	return &zone
}

func newSlot(index int, centerXPct, centerYPct, sizePct float64) models.SlotGeometry {
	return models.SlotGeometry{
		Label:   fmt.Sprintf("Slot %d", index),
		CX:      centerXPct / 100,
		CY:      centerYPct / 100,
		R:       sizePct / 200,
		LeftPct: centerXPct - (sizePct / 2),
		TopPct:  centerYPct - (sizePct / 2),
		SizePct: sizePct,
		SafeZone: defaultSafeZoneCopy(),
	}
}

// GridBounds optionally overrides the computed grid span. Explicit center
// arrays (length must equal columns/rows) win over start/end percentages and
// are the escape hatch for hand-measured layouts.
type GridBounds struct {
	XStartPct   *float64
	XEndPct     *float64
	YStartPct   *float64
	YEndPct     *float64
	XCentersPct []float64
	YCentersPct []float64
}

// BuildGridSlots computes evenly-spaced slot centers for a rows x columns
// grid. Defaults are density-adaptive: two-column models use a tighter X span,
// and each row beyond two expands the Y span outward by a fixed increment.
// Slot numbering is row-major starting at 1.
func BuildGridSlots(rows, columns int, sizePct float64, bounds *GridBounds) map[string]models.SlotGeometry {
	xSpanPct := 48.0
	if columns == 2 {
		xSpanPct = 25.0
	}
	ySpreadExpansionPct := math.Max(0, float64(rows-2)) * 2.2

	xStartPct := 50 - (xSpanPct / 2)
	xEndPct := 50 + (xSpanPct / 2)
	yStartPct := 20.7 - ySpreadExpansionPct
	yEndPct := 71.1 + ySpreadExpansionPct

	var xCentersPct, yCentersPct []float64
	if bounds != nil {
		if bounds.XStartPct != nil {
			xStartPct = *bounds.XStartPct
		}
		if bounds.XEndPct != nil {
			xEndPct = *bounds.XEndPct
		}
		if bounds.YStartPct != nil {
			yStartPct = *bounds.YStartPct
		}
		if bounds.YEndPct != nil {
			yEndPct = *bounds.YEndPct
		}
		if len(bounds.XCentersPct) == columns {
			xCentersPct = bounds.XCentersPct
		}
		if len(bounds.YCentersPct) == rows {
			yCentersPct = bounds.YCentersPct
		}
	}

	if xCentersPct == nil {
		xCentersPct = interpolateCenters(columns, xStartPct, xEndPct)
	}
	if yCentersPct == nil {
		yCentersPct = interpolateCenters(rows, yStartPct, yEndPct)
	}

	slots := make(map[string]models.SlotGeometry, rows*columns)
	index := 1
	for row := 0; row < rows; row++ {
		for column := 0; column < columns; column++ {
			slots[CreateSlotID(index)] = newSlot(index, xCentersPct[column], yCentersPct[row], sizePct)
			index++
		}
	}

	return slots
}

func interpolateCenters(count int, startPct, endPct float64) []float64 {
	centers := make([]float64, count)
	for i := range centers {
		if count <= 1 {
			centers[i] = (startPct + endPct) / 2
			continue
		}
		centers[i] = startPct + ((endPct-startPct)*float64(i))/float64(count-1)
	}
	return centers
}

// CenterPercent is one hand-measured slot center, in percent of the canvas.
type CenterPercent struct {
	XPct float64
	YPct float64
}

// BuildSlotsFromCenterPercents builds slots directly from an ordered list of
// pixel-measured centers. Slot ids follow list order starting at slot_1.
func BuildSlotsFromCenterPercents(points []CenterPercent, sizePct float64) map[string]models.SlotGeometry {
	slots := make(map[string]models.SlotGeometry, len(points))
	for i, point := range points {
		slots[CreateSlotID(i+1)] = newSlot(i+1, point.XPct, point.YPct, sizePct)
	}
	return slots
}

// PsdBounds is an absolute pixel bounding box as authored in a design file.
type PsdBounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// PsdBoundsOptions corrects for systematic offsets between design and runtime
// assets. A zero SizePctScale means no scaling.
type PsdBoundsOptions struct {
	SizePctOverride  *float64
	SizePctScale     float64
	CenterOffsetXPct float64
	CenterOffsetYPct float64
}

// BuildSlotsFromPsdBounds converts absolute pixel bounding boxes into
// normalized percent geometry against the authoring canvas size.
func BuildSlotsFromPsdBounds(canvasSize models.IntrinsicSize, bounds []PsdBounds, options *PsdBoundsOptions) map[string]models.SlotGeometry {
	sizeScale := 1.0
	offsetXPct := 0.0
	offsetYPct := 0.0
	var sizeOverride *float64
	if options != nil {
		if options.SizePctScale != 0 {
			sizeScale = options.SizePctScale
		}
		offsetXPct = options.CenterOffsetXPct
		offsetYPct = options.CenterOffsetYPct
		sizeOverride = options.SizePctOverride
	}

	slots := make(map[string]models.SlotGeometry, len(bounds))
	for i, bound := range bounds {
		width := bound.Right - bound.Left
		rawSizePct := (width / float64(canvasSize.Width)) * 100
		sizePct := rawSizePct * sizeScale
		if sizeOverride != nil {
			sizePct = *sizeOverride
		}
		centerX := bound.Left + (width / 2)
		centerY := bound.Top + ((bound.Bottom - bound.Top) / 2)
		centerXPct := ((centerX / float64(canvasSize.Width)) * 100) + offsetXPct
		centerYPct := ((centerY / float64(canvasSize.Height)) * 100) + offsetYPct

		slots[CreateSlotID(i+1)] = newSlot(i+1, centerXPct, centerYPct, sizePct)
	}
	return slots
}

// SlotMicroTweak is a small corrective delta applied to one slot after the
// bulk construction pass. A zero SizeScale means no scaling.
type SlotMicroTweak struct {
	CenterOffsetXPct float64
	CenterOffsetYPct float64
	SizeScale        float64
	SizeOffsetPct    float64
}

// ApplySlotMicroTweaks returns a new slot map with per-slot corrections
// applied. Slots without a tweak entry are carried over untouched.
func ApplySlotMicroTweaks(slots map[string]models.SlotGeometry, tweaks map[string]SlotMicroTweak) map[string]models.SlotGeometry {
	adjusted := make(map[string]models.SlotGeometry, len(slots))

	for slotID, slot := range slots {
		tweak, ok := tweaks[slotID]
		if !ok {
			adjusted[slotID] = slot
			continue
		}

		baseSizePct := slot.SizePct
		if math.IsNaN(baseSizePct) || math.IsInf(baseSizePct, 0) {
			baseSizePct = slot.R * 200
		}
		sizeScale := tweak.SizeScale
		if sizeScale == 0 {
			sizeScale = 1
		}
		sizePct := math.Max(0.1, (baseSizePct*sizeScale)+tweak.SizeOffsetPct)
		centerXPct := (slot.CX * 100) + tweak.CenterOffsetXPct
		centerYPct := (slot.CY * 100) + tweak.CenterOffsetYPct

		slot.CX = centerXPct / 100
		slot.CY = centerYPct / 100
		slot.R = sizePct / 200
		slot.LeftPct = centerXPct - (sizePct / 2)
		slot.TopPct = centerYPct - (sizePct / 2)
		slot.SizePct = sizePct
		adjusted[slotID] = slot
	}

	return adjusted
}

// GridModelSpec is the declarative input for a model whose slots follow the
// uniform grid algorithm.
type GridModelSpec struct {
	ModelCode           string
	LayoutLabel         string
	Columns             int
	Rows                int
	IntrinsicSize       models.IntrinsicSize
	SlotSizePctOverride *float64
	GridBounds          *GridBounds
}

// BuildGridModelGeometry assembles a full model geometry from a grid spec.
// The default slot size shrinks as the grid gets denser.
func BuildGridModelGeometry(spec GridModelSpec) models.KeypadModelGeometry {
	defaultSizePct := clamp(
		12.4-(math.Max(0, float64(spec.Rows-2))*0.72)-(math.Max(0, float64(spec.Columns-2))*0.85),
		8.6,
		12.4,
	)
	slotSizePct := defaultSizePct
	if spec.SlotSizePctOverride != nil {
		slotSizePct = *spec.SlotSizePctOverride
	}

	return models.KeypadModelGeometry{
		ModelCode:     spec.ModelCode,
		LayoutLabel:   spec.LayoutLabel,
		Columns:       spec.Columns,
		Rows:          spec.Rows,
		AspectRatio:   float64(spec.IntrinsicSize.Width) / float64(spec.IntrinsicSize.Height),
		IntrinsicSize: spec.IntrinsicSize,
		SlotSizeMm:    15,
		SlotCoordMode: models.SlotCoordModeTopLeft,
		Slots:         BuildGridSlots(spec.Rows, spec.Columns, slotSizePct, spec.GridBounds),
		ButtonVisual:  DefaultButtonVisual,
	}
}

// overrideWellDiameter replaces the well diameter on every slot's safe zone.
// Used by models whose physical wells differ from the default tooling.
func overrideWellDiameter(slots map[string]models.SlotGeometry, wellDiameterPctOfSlot float64) map[string]models.SlotGeometry {
	adjusted := make(map[string]models.SlotGeometry, len(slots))
	for slotID, slot := range slots {
		zone := DefaultSlotSafeZone
		if slot.SafeZone != nil {
			zone = *slot.SafeZone
		}
		zone.WellDiameterPctOfSlot = wellDiameterPctOfSlot
		slot.SafeZone = &zone
		adjusted[slotID] = slot
	}
	return adjusted
}
