package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	// partial so soft-deleted lines never block re-adding the product
	CartID string `gorm:"size:36;uniqueIndex:idx_cart_product,where:deleted_at IS NULL" json:"cartId"`
	Cart   Cart   `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_product,where:deleted_at IS NULL" json:"productId"`
	Product   Product `json:"-"`

	// adding the same product again increments Quantity on the existing row
	Quantity int `gorm:"not null" json:"quantity"`
}
