package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	MembershipBronze = "Bronze"
	MembershipSilver = "Silver"
	MembershipGold   = "Gold"
)

// Customer is created lazily on a user's first profile or order access.
type Customer struct {
	gorm.Model
	UserID     uint       `gorm:"uniqueIndex;not null" json:"userId"`
	User       User       `json:"-"`
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birthDate"`
	Membership string     `gorm:"not null;default:Bronze" json:"membership"`

	Orders    []Order   `json:"-"`
	Addresses []Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func ValidMembership(m string) bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}
