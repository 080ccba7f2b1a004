package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

var (
	ErrProductNotFound    = errors.New("there is no product with given ID")
	ErrProductInUse       = errors.New("product is referenced by order items")
	ErrCollectionNotFound = errors.New("there is no collection with given ID")
	ErrNegativePrice      = errors.New("unit price must not be negative")
	ErrNegativeInventory  = errors.New("inventory must not be negative")
)

// taxMultiplier is the fixed rate applied to derived prices.
var taxMultiplier = decimal.RequireFromString("1.10")

type ProductService struct {
	Repo           *repository.ProductRepository
	CollectionRepo *repository.CollectionRepository
}

func NewProductService(repo *repository.ProductRepository, collectionRepo *repository.CollectionRepository) *ProductService {
	return &ProductService{Repo: repo, CollectionRepo: collectionRepo}
}

// ----- DTOs -----

type ProductBrief struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type ProductOut struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`

	// derived per read, never stored
	PriceWithTax decimal.Decimal `json:"priceWithTax"`
	Inventory    int             `json:"inventory"`
	CollectionID uint            `json:"collectionId"`
}

func productOut(p *entity.Product) ProductOut {
	return ProductOut{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.UnitPrice.Mul(taxMultiplier).Round(2),
		Inventory:    p.Inventory,
		CollectionID: p.CollectionID,
	}
}

type ProductIn struct {
	Title        string          `json:"title" binding:"required"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Inventory    int             `json:"inventory"`
	CollectionID uint            `json:"collectionId" binding:"required"`
}

type ProductListOut struct {
	Items []ProductOut `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// ----- Operations -----

func (s *ProductService) List(f repository.ProductFilter) (*ProductListOut, error) {
	products, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]ProductOut, 0, len(products))
	for i := range products {
		items = append(items, productOut(&products[i]))
	}
	return &ProductListOut{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *ProductService) Get(id uint) (*ProductOut, error) {
	p, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	out := productOut(p)
	return &out, nil
}

func (s *ProductService) Create(in *ProductIn) (*ProductOut, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	p := entity.Product{
		Title:        in.Title,
		Slug:         in.Slug,
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		Inventory:    in.Inventory,
		CollectionID: in.CollectionID,
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	out := productOut(&p)
	return &out, nil
}

func (s *ProductService) Replace(id uint, in *ProductIn) (*ProductOut, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	fields := map[string]any{
		"title":         in.Title,
		"slug":          slug,
		"description":   in.Description,
		"unit_price":    in.UnitPrice,
		"inventory":     in.Inventory,
		"collection_id": in.CollectionID,
	}
	affected, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	return s.Get(id)
}

type ProductPatch struct {
	Title        *string          `json:"title"`
	Slug         *string          `json:"slug"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Inventory    *int             `json:"inventory"`
	CollectionID *uint            `json:"collectionId"`
}

func (s *ProductService) Patch(id uint, in *ProductPatch) (*ProductOut, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Slug != nil {
		fields["slug"] = *in.Slug
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		fields["unit_price"] = *in.UnitPrice
	}
	if in.Inventory != nil {
		if *in.Inventory < 0 {
			return nil, ErrNegativeInventory
		}
		fields["inventory"] = *in.Inventory
	}
	if in.CollectionID != nil {
		if err := s.checkCollection(*in.CollectionID); err != nil {
			return nil, err
		}
		fields["collection_id"] = *in.CollectionID
	}
	if len(fields) == 0 {
		return s.Get(id)
	}
	affected, err := s.Repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	return s.Get(id)
}

// Delete refuses to remove a product that any order item still references.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	count, err := s.Repo.OrderItemCount(id)
	if err != nil {
		return err
	}
	if count >= 1 {
		return ErrProductInUse
	}
	return s.Repo.Delete(id)
}

func (s *ProductService) validate(in *ProductIn) error {
	if in.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if in.Inventory < 0 {
		return ErrNegativeInventory
	}
	return s.checkCollection(in.CollectionID)
}

func (s *ProductService) checkCollection(id uint) error {
	if _, err := s.CollectionRepo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCollectionNotFound
		}
		return err
	}
	return nil
}

// Slugify derives a url-safe slug from a title.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
