// Package export builds the order payload consumed by the PDF export
// pipeline. Stored line configurations are re-validated before use: they
// crossed a trust boundary when they were written and may predate the current
// schema.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keypad-studio/backend/internal/catalog"
	"github.com/keypad-studio/backend/internal/configuration"
	"github.com/keypad-studio/backend/internal/geometry"
	"github.com/keypad-studio/backend/internal/models"
)

var (
	// ErrOrderNotFound is returned when the commerce backend has no order
	// with the requested code.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNoConfiguredLines is returned when none of an order's lines carry
	// a keypad configuration.
	ErrNoConfiguredLines = errors.New("no configured keypad lines")
)

const orderExportQuery = `
  query OrderPdfExport($code: String!) {
    orderByCode(code: $code) {
      id
      code
      createdAt
      customer { id emailAddress firstName lastName }
      lines {
        id
        quantity
        productVariant { id name sku }
        customFields { configuration modelCode }
      }
    }
  }
`

type orderLineNode struct {
	ID             string `json:"id"`
	Quantity       int    `json:"quantity"`
	ProductVariant *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		SKU  string `json:"sku"`
	} `json:"productVariant"`
	CustomFields *struct {
		Configuration *string `json:"configuration"`
		ModelCode     string  `json:"modelCode"`
	} `json:"customFields"`
}

type orderExportData struct {
	OrderByCode *struct {
		ID        string    `json:"id"`
		Code      string    `json:"code"`
		CreatedAt time.Time `json:"createdAt"`
		Customer  *struct {
			ID           string `json:"id"`
			EmailAddress string `json:"emailAddress"`
			FirstName    string `json:"firstName"`
			LastName     string `json:"lastName"`
		} `json:"customer"`
		Lines []orderLineNode `json:"lines"`
	} `json:"orderByCode"`
}

// Service assembles export payloads from the commerce backend's order graph.
type Service struct {
	client   *catalog.Client
	registry *geometry.Registry
}

// NewService creates an export service.
func NewService(client *catalog.Client, registry *geometry.Registry) *Service {
	return &Service{client: client, registry: registry}
}

// BuildOrderPayload fetches an order by code and re-validates every
// configured line. Lines with no configuration custom field are skipped;
// an order with no configured lines at all is an error.
func (s *Service) BuildOrderPayload(ctx context.Context, orderCode string) (*models.OrderExportPayload, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return nil, fmt.Errorf("order code is required")
	}

	var data orderExportData
	if err := s.client.Execute(ctx, orderExportQuery, map[string]interface{}{"code": orderCode}, &data); err != nil {
		return nil, err
	}
	order := data.OrderByCode
	if order == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderCode)
	}

	var lines []models.OrderExportLine
	var stricts []models.StrictConfiguration
	for _, line := range order.Lines {
		if line.CustomFields == nil || line.CustomFields.Configuration == nil {
			continue
		}

		strict, normalized, err := s.revalidateLine(line)
		if err != nil {
			return nil, fmt.Errorf("order line %s: %w", line.ID, err)
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		variantID := "unknown-variant"
		variantName := "Configured keypad"
		variantSKU := ""
		if line.ProductVariant != nil {
			variantID = line.ProductVariant.ID
			if name := strings.TrimSpace(line.ProductVariant.Name); name != "" {
				variantName = name
			}
			variantSKU = strings.TrimSpace(line.ProductVariant.SKU)
		}

		lines = append(lines, models.OrderExportLine{
			LineID:        line.ID,
			Quantity:      quantity,
			VariantID:     variantID,
			VariantName:   variantName,
			VariantSKU:    variantSKU,
			Configuration: normalized,
		})
		stricts = append(stricts, strict)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order %s", ErrNoConfiguredLines, orderCode)
	}

	// The PDF pipeline renders icons straight from the catalog, so an icon
	// retired since the order was placed must fail the export here.
	items, err := s.client.FetchIconCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for i, strict := range stricts {
		if missing := catalog.FindMissingIconIDs(strict, items); len(missing) > 0 {
			return nil, fmt.Errorf("order line %s: %w", lines[i].LineID, &catalog.MissingIconsError{IconIDs: missing})
		}
	}

	payload := &models.OrderExportPayload{
		OrderID:   order.ID,
		OrderCode: order.Code,
		OrderDate: order.CreatedAt,
		Lines:     lines,
	}
	if order.Customer != nil {
		payload.CustomerID = order.Customer.ID
		payload.CustomerEmail = order.Customer.EmailAddress
		payload.CustomerName = strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName)
	}
	return payload, nil
}

// revalidateLine resolves the line's slot set and runs the stored
// configuration back through the strict codec, returning the validated form
// and its canonical serialization.
func (s *Service) revalidateLine(line orderLineNode) (models.StrictConfiguration, string, error) {
	raw := *line.CustomFields.Configuration

	modelCode := strings.TrimSpace(line.CustomFields.ModelCode)
	slotIDs, err := s.resolveSlotIDs(modelCode, raw)
	if err != nil {
		return nil, "", err
	}

	strict, err := configuration.ParseAndValidate(raw, slotIDs)
	if err != nil {
		return nil, "", err
	}
	serialized, err := configuration.Serialize(strict)
	if err != nil {
		return nil, "", err
	}
	return strict, serialized, nil
}

// resolveSlotIDs prefers the line's model code; historical lines without one
// fall back to inferring the model from the stored slot count.
func (s *Service) resolveSlotIDs(modelCode, raw string) ([]string, error) {
	if modelCode != "" {
		return s.registry.SlotIDs(modelCode)
	}

	slotCount, err := configuredSlotCount(raw)
	if err != nil {
		return nil, err
	}
	inferred, ok := s.registry.InferModelCodeFromSlotCount(slotCount)
	if !ok {
		return nil, fmt.Errorf("no keypad model has %d slots", slotCount)
	}
	return s.registry.SlotIDs(inferred)
}

func configuredSlotCount(raw string) (int, error) {
	keys, err := configuration.TopLevelSlotKeys(raw)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// VerifyIconAvailability checks a validated configuration against the live
// icon catalog and fails when any configured icon no longer exists.
func (s *Service) VerifyIconAvailability(ctx context.Context, strict models.StrictConfiguration) error {
	items, err := s.client.FetchIconCatalog(ctx)
	if err != nil {
		return err
	}
	if missing := catalog.FindMissingIconIDs(strict, items); len(missing) > 0 {
		return &catalog.MissingIconsError{IconIDs: missing}
	}
	return nil
}
