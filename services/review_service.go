package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotAuthor      = errors.New("only the author or staff may modify a review")
)

type ReviewService struct {
	DB          *gorm.DB
	Repo        *repository.ReviewRepository
	ProductRepo *repository.ProductRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, productRepo *repository.ProductRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, ProductRepo: productRepo}
}

type ReviewIn struct {
	Description string `json:"description" binding:"required"`
}

func (s *ReviewService) List(productID uint) ([]entity.Review, error) {
	if err := s.checkProduct(productID); err != nil {
		return nil, err
	}
	return s.Repo.ListByProduct(productID)
}

func (s *ReviewService) Get(productID, reviewID uint) (*entity.Review, error) {
	review, err := s.Repo.Get(productID, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	return review, err
}

// Create attributes the review to the authenticated identity.
func (s *ReviewService) Create(productID, userID uint, in *ReviewIn) (*entity.Review, error) {
	if err := s.checkProduct(productID); err != nil {
		return nil, err
	}
	review := entity.Review{
		ProductID:   productID,
		UserID:      userID,
		Description: in.Description,
		Date:        time.Now(),
	}
	if err := s.Repo.Create(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Update(productID, reviewID, actorID uint, staff bool, in *ReviewIn) (*entity.Review, error) {
	review, err := s.Get(productID, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != actorID && !staff {
		return nil, ErrNotAuthor
	}
	if err := s.Repo.Update(reviewID, map[string]any{"description": in.Description}); err != nil {
		return nil, err
	}
	return s.Get(productID, reviewID)
}

func (s *ReviewService) Delete(productID, reviewID, actorID uint, staff bool) error {
	review, err := s.Get(productID, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actorID && !staff {
		return ErrNotAuthor
	}
	return s.Repo.Delete(reviewID)
}

func (s *ReviewService) checkProduct(productID uint) error {
	ok, err := s.ProductRepo.Exists(s.DB, productID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
