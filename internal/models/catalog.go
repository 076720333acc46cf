package models

// IconCatalogItem is a resolved, denormalized icon record. IconID is the
// stable external key configurations reference, not the backend product id.
type IconCatalogItem struct {
	ID              string   `json:"id"`
	ProductID       string   `json:"productId"`
	VariantID       string   `json:"variantId"`
	IconID          string   `json:"iconId"`
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	Categories      []string `json:"categories"`
	SizeMm          int      `json:"sizeMm"`
	GlossyAssetPath string   `json:"glossyAssetPath"`
	MatteAssetPath  string   `json:"matteAssetPath"`
}

// RingGlowOption is one selectable backlight color. Value is nil for "no glow".
type RingGlowOption struct {
	Label string  `json:"label"`
	Value *string `json:"value"`
}
