package domain

import "time"

// Order lifecycle event types published to Kafka.
const (
	EventOrderOpened      = "order_opened"
	EventItemAdded        = "item_added"
	EventInvoiceGenerated = "invoice_generated"
)

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	TableID   int       `json:"table_id,omitempty"`
	DishID    int       `json:"dish_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	InvoiceID int       `json:"invoice_id,omitempty"`
	AmountTTC string    `json:"amount_ttc,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
