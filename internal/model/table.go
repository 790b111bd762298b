package model

// Table.CurrentOrderID is a soft reference: the order may have been deleted
// since, and readers must treat a dangling id as a normal state.
type Table struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Available      bool   `db:"available" json:"available"`
	CurrentOrderID *int64 `db:"current_order_id" json:"currentOrderId,omitempty"`
}
