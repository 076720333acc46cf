package models

import "time"

// SavedDesign is a named, persisted shopper configuration. Configuration holds
// the serialized StrictConfiguration JSON exactly as validated at save time.
type SavedDesign struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Name          string    `json:"name"`
	ModelCode     string    `json:"modelCode"`
	Configuration string    `json:"configuration"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// OrderExportLine is one configured keypad line in an order export payload.
type OrderExportLine struct {
	LineID        string `json:"lineId"`
	Quantity      int    `json:"quantity"`
	VariantID     string `json:"variantId"`
	VariantName   string `json:"variantName"`
	VariantSKU    string `json:"variantSku"`
	Configuration string `json:"configuration"`
}

// OrderExportPayload is the data handed to the PDF export pipeline for one order.
type OrderExportPayload struct {
	OrderID       string            `json:"orderId"`
	OrderCode     string            `json:"orderCode"`
	OrderDate     time.Time         `json:"orderDate"`
	CustomerID    string            `json:"customerId"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	CustomerName  string            `json:"customerName,omitempty"`
	Lines         []OrderExportLine `json:"lines"`
}
