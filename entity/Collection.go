package entity

import (
	"gorm.io/gorm"
)

type Collection struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`

	// optional showcase product; membership in the collection is not enforced
	FeaturedProductID *uint `json:"featuredProductId"`

	Products []Product `json:"-"`
}
