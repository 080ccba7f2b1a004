package repository

import (
	"gorm.io/gorm"

	"storefront/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ListByProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("product_id = ?", productID).Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Get(productID, reviewID uint) (*entity.Review, error) {
	var review entity.Review
	err := r.DB.Where("id = ? AND product_id = ?", reviewID, productID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Update(reviewID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", reviewID).Updates(fields).Error
}

func (r *ReviewRepository) Delete(reviewID uint) error {
	return r.DB.Delete(&entity.Review{}, reviewID).Error
}
