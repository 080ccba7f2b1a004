package services

import (
	"errors"

	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

var ErrCollectionNotEmpty = errors.New("collection still contains products")

type CollectionService struct {
	Repo *repository.CollectionRepository
}

func NewCollectionService(repo *repository.CollectionRepository) *CollectionService {
	return &CollectionService{Repo: repo}
}

type CollectionIn struct {
	Title             string `json:"title" binding:"required"`
	FeaturedProductID *uint  `json:"featuredProductId"`
}

func (s *CollectionService) List() ([]repository.CollectionRow, error) {
	return s.Repo.ListWithCounts(nil)
}

func (s *CollectionService) Get(id uint) (*repository.CollectionRow, error) {
	col, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	count, err := s.Repo.ProductsCount(id)
	if err != nil {
		return nil, err
	}
	return &repository.CollectionRow{
		ID:                col.ID,
		Title:             col.Title,
		FeaturedProductID: col.FeaturedProductID,
		ProductsCount:     count,
	}, nil
}

func (s *CollectionService) Create(in *CollectionIn) (*repository.CollectionRow, error) {
	col := entity.Collection{Title: in.Title, FeaturedProductID: in.FeaturedProductID}
	if err := s.Repo.Create(&col); err != nil {
		return nil, err
	}
	return s.Get(col.ID)
}

func (s *CollectionService) Update(id uint, in *CollectionIn) (*repository.CollectionRow, error) {
	fields := map[string]any{
		"title":               in.Title,
		"featured_product_id": in.FeaturedProductID,
	}
	affected, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCollectionNotFound
	}
	return s.Get(id)
}

type CollectionPatch struct {
	Title             *string `json:"title"`
	FeaturedProductID *uint   `json:"featuredProductId"`
}

// Patch writes only the fields present in the body; omitted fields keep
// their stored values.
func (s *CollectionService) Patch(id uint, in *CollectionPatch) (*repository.CollectionRow, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.FeaturedProductID != nil {
		fields["featured_product_id"] = *in.FeaturedProductID
	}
	if len(fields) == 0 {
		return s.Get(id)
	}
	affected, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCollectionNotFound
	}
	return s.Get(id)
}

// Delete refuses to remove a collection that still has products.
func (s *CollectionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.Repo.ProductsCount(id)
	if err != nil {
		return err
	}
	if count >= 1 {
		return ErrCollectionNotEmpty
	}
	return s.Repo.Delete(id)
}
