package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`
	Street     string   `json:"street"`
	City       string   `json:"city"`
}
