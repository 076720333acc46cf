package geometry

import (
	"fmt"
	"sort"

	"github.com/keypad-studio/backend/internal/models"
)

// Registry maps a canonical model code to its published geometry. It is
// populated once at construction and never mutated afterwards, so any number
// of concurrent readers is safe without locking.
type Registry struct {
	geometries map[string]*models.KeypadModelGeometry
}

// Global registry instance
var globalRegistry = NewRegistry()

func NewRegistry() *Registry {
	r := &Registry{geometries: make(map[string]*models.KeypadModelGeometry)}
	for _, build := range []func() models.KeypadModelGeometry{
		newPKP2200Geometry,
		newPKP2300Geometry,
		newPKP2400Geometry,
		newPKP2500Geometry,
		newPKP2600Geometry,
		newPKP3500Geometry,
	} {
		geometry := build()
		r.geometries[geometry.ModelCode] = &geometry
	}
	return r
}

// GetGlobalRegistry returns the singleton registry.
func GetGlobalRegistry() *Registry {
	return globalRegistry
}

// ModelNotFoundError is returned for a lookup of an unregistered model code.
type ModelNotFoundError struct {
	ModelCode string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("keypad model not found: %s", e.ModelCode)
}

// Get looks up a model by exact canonical code (uppercase, hyphenated).
// There is no fuzzy matching and no default model: an unknown code is an
// error the caller must surface, never silently mapped elsewhere.
func (r *Registry) Get(modelCode string) (*models.KeypadModelGeometry, error) {
	geometry, ok := r.geometries[modelCode]
	if !ok {
		return nil, &ModelNotFoundError{ModelCode: modelCode}
	}
	return geometry, nil
}

// Has reports whether a model code is registered.
func (r *Registry) Has(modelCode string) bool {
	_, ok := r.geometries[modelCode]
	return ok
}

// Codes returns every registered model code, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.geometries))
	for code := range r.geometries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SlotIDs returns the canonical ordered slot id set for a model.
func (r *Registry) SlotIDs(modelCode string) ([]string, error) {
	geometry, err := r.Get(modelCode)
	if err != nil {
		return nil, err
	}
	slotIDs := make([]string, 0, len(geometry.Slots))
	for slotID := range geometry.Slots {
		slotIDs = append(slotIDs, slotID)
	}
	return SortSlotIDs(slotIDs), nil
}

// InferModelCodeFromSlotCount maps a slot count to the unique model carrying
// that many slots. Historical order lines predate the model-code custom field,
// so the count is the only way to recover their layout.
func (r *Registry) InferModelCodeFromSlotCount(slotCount int) (string, bool) {
	if slotCount <= 0 {
		return "", false
	}
	for _, code := range r.Codes() {
		if len(r.geometries[code].Slots) == slotCount {
			return code, true
		}
	}
	return "", false
}
