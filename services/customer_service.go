package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

var ErrBadMembership = errors.New("membership must be Bronze, Silver or Gold")

type CustomerService struct {
	DB   *gorm.DB
	Repo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, Repo: repo}
}

type CustomerOut struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"userId"`
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birthDate"`
	Membership string     `json:"membership"`
}

func customerOut(c *entity.Customer) *CustomerOut {
	return &CustomerOut{
		ID:         c.ID,
		UserID:     c.UserID,
		Phone:      c.Phone,
		BirthDate:  c.BirthDate,
		Membership: c.Membership,
	}
}

type UpdateCustomerIn struct {
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birthDate"`
	Membership string     `json:"membership"`
}

// Me resolves the acting user's profile, creating a blank one on first
// access.
func (s *CustomerService) Me(userID uint) (*CustomerOut, error) {
	customer, err := s.Repo.GetOrCreate(s.DB, userID)
	if err != nil {
		return nil, err
	}
	return customerOut(customer), nil
}

func (s *CustomerService) UpdateMe(userID uint, in *UpdateCustomerIn) (*CustomerOut, error) {
	if in.Membership != "" && !entity.ValidMembership(in.Membership) {
		return nil, ErrBadMembership
	}
	if _, err := s.Repo.GetOrCreate(s.DB, userID); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"phone":      in.Phone,
		"birth_date": in.BirthDate,
	}
	if in.Membership != "" {
		fields["membership"] = in.Membership
	}
	if _, err := s.Repo.Update(userID, fields); err != nil {
		return nil, err
	}
	return s.Me(userID)
}

func (s *CustomerService) ListAdmin(search string) ([]repository.CustomerRow, error) {
	return s.Repo.ListWithOrdersCount(search)
}
