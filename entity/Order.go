package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending  = "Pending"
	PaymentComplete = "Complete"
	PaymentFailed   = "Failed"
)

type Order struct {
	gorm.Model
	CustomerID    uint      `gorm:"not null" json:"customerId"`
	Customer      Customer  `json:"-"`
	PlacedAt      time.Time `json:"placedAt"`
	PaymentStatus string    `gorm:"not null;default:Pending" json:"paymentStatus"`

	// frozen copies, never shared with cart items
	OrderItems []OrderItem `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentComplete, PaymentFailed:
		return true
	}
	return false
}
