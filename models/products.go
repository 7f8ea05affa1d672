package models

import (
	"github.com/shopspring/decimal"
)

// Product is a priced catalog entry served on /products.
type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Title string          `gorm:"not null" json:"title"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (p *Product) TableName() string {
	return "products"
}
