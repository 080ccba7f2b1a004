package repository

import (
	"time"

	"gorm.io/gorm"

	"storefront/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// CreateOrderItems bulk-inserts all frozen lines in one statement.
func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the list read model.
type OrderSummary struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customerId"`
	PaymentStatus string    `json:"paymentStatus"`
	PlacedAt      time.Time `json:"placedAt"`
}

func (r *OrderRepository) ListAll(page, limit int) ([]OrderSummary, int64, error) {
	return r.list(r.DB.Model(&entity.Order{}), page, limit)
}

func (r *OrderRepository) ListForCustomer(customerID uint, page, limit int) ([]OrderSummary, int64, error) {
	db := r.DB.Model(&entity.Order{}).Where("customer_id = ?", customerID)
	return r.list(db, page, limit)
}

func (r *OrderRepository) list(db *gorm.DB, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := db.Select("id, customer_id, payment_status, placed_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) UpdatePaymentStatus(orderID uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(orderID uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Order{}, orderID)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
