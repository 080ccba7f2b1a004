package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`

	// snapshot of the product price at order time, never recomputed
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unitPrice"`
}
