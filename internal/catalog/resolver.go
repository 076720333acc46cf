// resolver.go - Insert/matte asset resolution shared by catalog build and export
package catalog

import "strings"

// ProductAsset is one asset record from the backend product graph. Fields the
// backend may omit are plain strings with empty meaning absent.
type ProductAsset struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Preview string `json:"preview"`
	Name    string `json:"name"`
}

// ResolutionReason records which branch of the resolver chain picked the
// asset. Diagnostic only; "fallback" is the tolerated ambiguous case.
type ResolutionReason string

const (
	ResolutionExplicit ResolutionReason = "explicit"
	ResolutionHinted   ResolutionReason = "hinted"
	ResolutionFallback ResolutionReason = "fallback"
	ResolutionNone     ResolutionReason = "none"
)

// insertHintKeywords is the fixed heuristic keyword list. The exact list and
// its priority order are load-bearing: downstream rendering assumes them, so
// they must not be "improved" casually.
var insertHintKeywords = []string{"insert", "matte", "overlay"}

// ResolveInsertAsset picks the physical insert/matte asset for a product.
//
// Resolution order:
//  1. Exact match on insertAssetID, when provided.
//  2. Non-featured asset whose name or source hints at insert/matte/overlay.
//  3. First non-featured asset.
//  4. nil.
//
// The backend does not guarantee an explicit insert-asset field on every
// historical product, so the resolver degrades from explicit metadata to
// naming heuristics to blind fallback.
func ResolveInsertAsset(assets []ProductAsset, featuredAssetID, insertAssetID string) (*ProductAsset, ResolutionReason) {
	insertAssetID = strings.TrimSpace(insertAssetID)
	if insertAssetID != "" {
		for i := range assets {
			if strings.TrimSpace(assets[i].ID) == insertAssetID {
				return &assets[i], ResolutionExplicit
			}
		}
	}

	featuredID := strings.TrimSpace(featuredAssetID)
	var nonFeatured []*ProductAsset
	for i := range assets {
		if strings.TrimSpace(assets[i].ID) != featuredID {
			nonFeatured = append(nonFeatured, &assets[i])
		}
	}

	for _, asset := range nonFeatured {
		text := strings.ToLower(asset.Name + " " + asset.Source)
		for _, keyword := range insertHintKeywords {
			if strings.Contains(text, keyword) {
				return asset, ResolutionHinted
			}
		}
	}

	if len(nonFeatured) > 0 {
		return nonFeatured[0], ResolutionFallback
	}
	return nil, ResolutionNone
}

// assetPath returns the renderable path of an asset, preferring the full
// source image over the preview derivative.
func assetPath(asset *ProductAsset) string {
	if asset == nil {
		return ""
	}
	if asset.Source != "" {
		return asset.Source
	}
	return asset.Preview
}
