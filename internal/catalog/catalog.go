package catalog

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/keypad-studio/backend/internal/models"
)

const pageSize = 100

var (
	iconIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	sizeMmPattern = regexp.MustCompile(`(?i)(\d+(\.\d+)?)\s*mm`)
)

// DefaultSizeMm is assumed when neither the variant nor the product carries a
// parseable insert size.
const DefaultSizeMm = 15

const iconCatalogQuery = `
  query ConfiguratorIconCatalog($options: ProductListOptions) {
    products(options: $options) {
      totalItems
      items {
        id
        name
        featuredAsset { id preview source name }
        assets { id preview source name }
        customFields { iconId iconCategories insertAssetId size }
        variants {
          id
          name
          sku
          customFields { iconId insertAssetId sizeMm }
        }
      }
    }
  }
`

// VariantCustomFields is the variant-level custom-field payload. The backend
// ships these loosely typed; missing and empty are both treated as absent.
type VariantCustomFields struct {
	IconID        string   `json:"iconId"`
	InsertAssetID string   `json:"insertAssetId"`
	SizeMm        *float64 `json:"sizeMm"`
}

// ProductCustomFields is the product-level custom-field payload.
type ProductCustomFields struct {
	IconID         string   `json:"iconId"`
	IconCategories []string `json:"iconCategories"`
	InsertAssetID  string   `json:"insertAssetId"`
	Size           string   `json:"size"`
}

// ProductVariantNode is one variant from the backend product graph.
type ProductVariantNode struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	SKU          string               `json:"sku"`
	CustomFields *VariantCustomFields `json:"customFields"`
}

// IconProductNode is one icon-like product from the backend product graph.
type IconProductNode struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	FeaturedAsset *ProductAsset        `json:"featuredAsset"`
	Assets        []ProductAsset       `json:"assets"`
	CustomFields  *ProductCustomFields `json:"customFields"`
	Variants      []ProductVariantNode `json:"variants"`
}

type productListData struct {
	Products struct {
		TotalItems int               `json:"totalItems"`
		Items      []IconProductNode `json:"items"`
	} `json:"products"`
}

type productListOptions struct {
	Take   int                    `json:"take"`
	Skip   int                    `json:"skip"`
	Filter map[string]interface{} `json:"filter,omitempty"`
}

// FetchIconCatalog paginates the backend's icon products and reduces them to
// the deduplicated catalog, sorted by iconId. Pages are fetched sequentially
// because the termination condition depends on the previous page's reported
// total. Any failed page fails the whole fetch; no partial catalog is returned.
func (c *Client) FetchIconCatalog(ctx context.Context) ([]models.IconCatalogItem, error) {
	var products []IconProductNode
	skip := 0

	for {
		var data productListData
		err := c.Execute(ctx, iconCatalogQuery, map[string]interface{}{
			"options": productListOptions{
				Take:   pageSize,
				Skip:   skip,
				Filter: map[string]interface{}{"isIconProduct": map[string]interface{}{"eq": true}},
			},
		}, &data)
		if err != nil {
			return nil, err
		}

		pageItems := data.Products.Items
		products = append(products, pageItems...)

		nextSkip := skip + len(pageItems)
		if len(pageItems) == 0 || nextSkip >= data.Products.TotalItems {
			break
		}
		skip = nextSkip
	}

	return ReduceCatalog(products), nil
}

// ReduceCatalog flattens icon products into catalog items and resolves
// duplicate icon ids by completeness score. First-seen wins ties.
func ReduceCatalog(products []IconProductNode) []models.IconCatalogItem {
	byIconID := make(map[string]models.IconCatalogItem)
	var order []string

	for _, product := range products {
		categories := resolveCategories(product.CustomFields)
		glossyAssetPath := assetPath(product.FeaturedAsset)

		for _, variant := range product.Variants {
			iconID := resolveIconID(product, variant)
			if iconID == "" {
				continue
			}

			insertAsset, _ := resolveInsertAssetForVariant(product, variant)
			item := models.IconCatalogItem{
				ID:              variant.ID,
				ProductID:       product.ID,
				VariantID:       variant.ID,
				IconID:          iconID,
				Name:            product.Name,
				SKU:             strings.TrimSpace(variant.SKU),
				Categories:      categories,
				SizeMm:          resolveSizeMm(product.CustomFields, variant.CustomFields),
				GlossyAssetPath: glossyAssetPath,
				MatteAssetPath:  assetPath(insertAsset),
			}

			existing, seen := byIconID[iconID]
			if !seen {
				byIconID[iconID] = item
				order = append(order, iconID)
				continue
			}
			// Duplicate import artifact: keep the richer record.
			if completenessScore(item) > completenessScore(existing) {
				byIconID[iconID] = item
			}
		}
	}

	items := make([]models.IconCatalogItem, 0, len(order))
	for _, iconID := range order {
		items = append(items, byIconID[iconID])
	}
	sort.Slice(items, func(i, j int) bool { return items[i].IconID < items[j].IconID })
	return items
}

// completenessScore counts how many of the record's optional facets are
// populated. Used only to pick between duplicate icon ids.
func completenessScore(item models.IconCatalogItem) int {
	score := 0
	if item.MatteAssetPath != "" {
		score++
	}
	if item.GlossyAssetPath != "" {
		score++
	}
	if len(item.Categories) > 0 {
		score++
	}
	if item.SKU != "" {
		score++
	}
	return score
}

func resolveIconID(product IconProductNode, variant ProductVariantNode) string {
	raw := ""
	if variant.CustomFields != nil {
		raw = variant.CustomFields.IconID
	}
	if raw == "" && product.CustomFields != nil {
		raw = product.CustomFields.IconID
	}
	iconID := strings.TrimSpace(raw)
	if iconID == "" || !iconIDPattern.MatchString(iconID) {
		return ""
	}
	return iconID
}

func resolveInsertAssetForVariant(product IconProductNode, variant ProductVariantNode) (*ProductAsset, ResolutionReason) {
	insertAssetID := ""
	if variant.CustomFields != nil {
		insertAssetID = strings.TrimSpace(variant.CustomFields.InsertAssetID)
	}
	if insertAssetID == "" && product.CustomFields != nil {
		insertAssetID = strings.TrimSpace(product.CustomFields.InsertAssetID)
	}
	featuredID := ""
	if product.FeaturedAsset != nil {
		featuredID = product.FeaturedAsset.ID
	}
	return ResolveInsertAsset(product.Assets, featuredID, insertAssetID)
}

func resolveCategories(fields *ProductCustomFields) []string {
	if fields == nil {
		return nil
	}
	var categories []string
	for _, value := range fields.IconCategories {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

// resolveSizeMm prefers the numeric variant field, then the free-text product
// field ("... 15mm ..."), then the default.
func resolveSizeMm(product *ProductCustomFields, variant *VariantCustomFields) int {
	if variant != nil && variant.SizeMm != nil && *variant.SizeMm > 0 {
		return int(math.Round(*variant.SizeMm))
	}
	if product != nil {
		if parsed, ok := parseSizeMmText(product.Size); ok {
			return parsed
		}
	}
	return DefaultSizeMm
}

func parseSizeMmText(value string) (int, bool) {
	match := sizeMmPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(match[1], 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return int(math.Round(parsed)), true
}

// MissingIconsError reports configured icon ids that have no catalog entry.
type MissingIconsError struct {
	IconIDs []string
}

func (e *MissingIconsError) Error() string {
	return "configured icons are no longer available: " + strings.Join(e.IconIDs, ", ")
}

// FindMissingIconIDs reports configured icon ids that have no catalog entry.
// Used at design-save and export time so a stale configuration is caught
// before it reaches the PDF pipeline.
func FindMissingIconIDs(config models.StrictConfiguration, items []models.IconCatalogItem) []string {
	available := make(map[string]struct{}, len(items))
	for _, item := range items {
		available[item.IconID] = struct{}{}
	}

	required := make(map[string]struct{})
	for _, slot := range config {
		required[slot.IconID] = struct{}{}
	}

	var missing []string
	for iconID := range required {
		if _, ok := available[iconID]; !ok {
			missing = append(missing, iconID)
		}
	}
	sort.Strings(missing)
	return missing
}
