package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

type CollectionRepository struct{ DB *gorm.DB }

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{DB: db}
}

// CollectionRow carries the live products count; never persisted.
type CollectionRow struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	FeaturedProductID *uint  `json:"featuredProductId"`
	ProductsCount     int64  `json:"productsCount"`
}

func (r *CollectionRepository) ListWithCounts(minProducts *int64) ([]CollectionRow, error) {
	var rows []CollectionRow
	db := r.DB.Model(&entity.Collection{}).
		Select("collections.id, collections.title, collections.featured_product_id, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.collection_id = collections.id AND products.deleted_at IS NULL").
		Group("collections.id").
		Order("collections.id")
	if minProducts != nil {
		db = db.Having("COUNT(products.id) >= ?", *minProducts)
	}
	err := db.Scan(&rows).Error
	return rows, err
}

func (r *CollectionRepository) Get(id uint) (*entity.Collection, error) {
	var col entity.Collection
	if err := r.DB.First(&col, id).Error; err != nil {
		return nil, err
	}
	return &col, nil
}

func (r *CollectionRepository) Create(col *entity.Collection) error {
	return r.DB.Create(col).Error
}

func (r *CollectionRepository) Update(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Collection{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *CollectionRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Collection{}, id).Error
}

func (r *CollectionRepository) ProductsCount(id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Where("collection_id = ?", id).Count(&count).Error
	return count, err
}
