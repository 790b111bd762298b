package model

import "github.com/shopspring/decimal"

func init() {
	// Money values travel as JSON numbers, matching what the UI and older
	// export files carry.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is a full export of the store. On import, Tables and Users are
// optional: a nil slice means the source format did not carry them.
type Snapshot struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Orders     []Order    `json:"orders"`
	Tables     []Table    `json:"tables"`
	Users      []User     `json:"users"`
}
