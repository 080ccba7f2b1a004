package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/entity"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// ProductFilter mirrors the list query params.
type ProductFilter struct {
	CollectionID *uint
	UnitPriceGT  *decimal.Decimal
	UnitPriceLT  *decimal.Decimal
	Search       string
	Ordering     string // "unit_price" or "-unit_price"
	Page         int
	Limit        int
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	db := r.DB.Model(&entity.Product{})
	if f.CollectionID != nil {
		db = db.Where("collection_id = ?", *f.CollectionID)
	}
	if f.UnitPriceGT != nil {
		db = db.Where("unit_price > ?", *f.UnitPriceGT)
	}
	if f.UnitPriceLT != nil {
		db = db.Where("unit_price < ?", *f.UnitPriceLT)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Ordering {
	case "unit_price":
		db = db.Order("unit_price ASC")
	case "-unit_price":
		db = db.Order("unit_price DESC")
	default:
		db = db.Order("id ASC")
	}

	var products []entity.Product
	err := db.Limit(f.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&entity.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// OrderItemCount is the delete guard: products referenced by any order
// item must not be removed.
func (r *ProductRepository) OrderItemCount(productID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// AdminProductRow is the administrative read model for products.
type AdminProductRow struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Inventory       int             `json:"inventory"`
	CollectionTitle string          `json:"collectionTitle"`
	OrderedTimes    int64           `json:"orderedTimes"`
}

func (r *ProductRepository) ListWithOrderedTimes(lowInventory bool) ([]AdminProductRow, error) {
	db := r.DB.Model(&entity.Product{}).
		Select("products.id, products.title, products.unit_price, products.inventory, collections.title AS collection_title, COUNT(order_items.id) AS ordered_times").
		Joins("LEFT JOIN collections ON collections.id = products.collection_id").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.id AND order_items.deleted_at IS NULL").
		Group("products.id, products.title, products.unit_price, products.inventory, collections.title").
		Order("products.id")
	if lowInventory {
		db = db.Where("products.inventory < ?", 10)
	}
	var rows []AdminProductRow
	err := db.Scan(&rows).Error
	return rows, err
}

// ClearInventory zeroes the inventory of the given products and reports
// how many rows changed.
func (r *ProductRepository) ClearInventory(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.Model(&entity.Product{}).Where("id IN ?", ids).Update("inventory", 0)
	return res.RowsAffected, res.Error
}
