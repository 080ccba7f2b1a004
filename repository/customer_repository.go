package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/entity"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// GetOrCreate resolves the customer profile for a user, creating a blank
// one on first access. The insert is an atomic upsert so concurrent first
// requests for the same user cannot race a duplicate row.
func (r *CustomerRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Customer, error) {
	blank := entity.Customer{UserID: userID, Membership: entity.MembershipBronze}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&blank).Error; err != nil {
		return nil, err
	}

	var customer entity.Customer
	if err := tx.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(userID uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Customer{}).Where("user_id = ?", userID).Updates(fields)
	return res.RowsAffected, res.Error
}

// CustomerRow is the administrative read model with the per-request
// grouped order count.
type CustomerRow struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Membership  string `json:"membership"`
	OrdersCount int64  `json:"ordersCount"`
}

func (r *CustomerRepository) ListWithOrdersCount(search string) ([]CustomerRow, error) {
	db := r.DB.Model(&entity.Customer{}).
		Select("customers.id, customers.user_id, users.first_name, users.last_name, customers.membership, COUNT(orders.id) AS orders_count").
		Joins("JOIN users ON users.id = customers.user_id").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id AND orders.deleted_at IS NULL").
		Group("customers.id, customers.user_id, users.first_name, users.last_name, customers.membership").
		Order("users.first_name, users.last_name")
	if search != "" {
		like := search + "%"
		db = db.Where("users.first_name LIKE ? OR users.last_name LIKE ?", like, like)
	}
	var rows []CustomerRow
	err := db.Scan(&rows).Error
	return rows, err
}
