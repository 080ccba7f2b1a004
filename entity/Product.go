package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Title       string          `gorm:"not null" json:"title"`
	Slug        string          `gorm:"index" json:"slug"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unitPrice"`
	Inventory   int             `gorm:"not null;default:0" json:"inventory"`

	CollectionID uint       `json:"collectionId"`
	Collection   Collection `json:"-"`

	// preload only when needed
	OrderItems []OrderItem `json:"-"`
	Reviews    []Review    `json:"-"`
}
