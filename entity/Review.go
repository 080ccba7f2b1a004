package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
