package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentMethod = "cash"
	DefaultOrderStatus   = "inProgress"
)

type Order struct {
	ID            int64           `db:"id" json:"id"`
	Date          string          `db:"date" json:"date"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Change        decimal.Decimal `db:"change" json:"change"`
	TotalPaid     decimal.Decimal `db:"total_paid" json:"totalPaid"`
	ItemCount     int64           `db:"item_count" json:"itemCount"`
	TableNumber   int64           `db:"table_number" json:"tableNumber"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	TicketPath    *string         `db:"ticket_path" json:"ticketPath,omitempty"`
	Status        string          `db:"status" json:"status"`
	Items         []OrderItem     `db:"-" json:"items"`
}

// ApplyDefaults fills the payment method and status when the caller left them empty.
func (o *Order) ApplyDefaults() {
	if o.PaymentMethod == "" {
		o.PaymentMethod = DefaultPaymentMethod
	}
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
}

// OrderItem is a copy of the product taken at the time of sale; later
// product edits never reach it.
type OrderItem struct {
	ProductID int64           `db:"product_id" json:"productId"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	Category  *string         `db:"category" json:"category,omitempty"`
}

// UnmarshalJSON also accepts the legacy "id" key that older desktop
// exports used for the product id.
func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type plain OrderItem
	aux := struct {
		*plain
		LegacyID *int64 `json:"id"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if i.ProductID == 0 && aux.LegacyID != nil {
		i.ProductID = *aux.LegacyID
	}
	return nil
}
