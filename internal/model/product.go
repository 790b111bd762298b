package model

import "github.com/shopspring/decimal"

// Product.Category is a free-text label, not a reference to Category.
type Product struct {
	ID            int64           `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Category      string          `db:"category" json:"category"`
	Brand         *string         `db:"brand" json:"brand,omitempty"`
	IconType      *string         `db:"icon_type" json:"iconType,omitempty"`
	SelectedIcon  *string         `db:"selected_icon" json:"selectedIcon,omitempty"`
	UploadedImage *string         `db:"uploaded_image" json:"uploadedImage,omitempty"`
	Stock         *int64          `db:"stock" json:"stock,omitempty"`
}
