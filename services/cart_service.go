package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/entity"
	"storefront/repository"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService struct {
	DB          *gorm.DB
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, productRepo *repository.ProductRepository) *CartService {
	return &CartService{DB: db, Repo: repo, ProductRepo: productRepo}
}

// ----- DTOs -----

type CartItemOut struct {
	ID       uint         `json:"id"`
	Product  ProductBrief `json:"product"`
	Quantity int          `json:"quantity"`

	// quantity times the product's current price; carts track live
	// pricing until checkout freezes it
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type CartOut struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	Items      []CartItemOut   `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func cartItemOut(it *entity.CartItem) CartItemOut {
	return CartItemOut{
		ID: it.ID,
		Product: ProductBrief{
			ID:        it.Product.ID,
			Title:     it.Product.Title,
			UnitPrice: it.Product.UnitPrice,
		},
		Quantity:   it.Quantity,
		TotalPrice: it.Product.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
	}
}

func cartOut(c *entity.Cart) *CartOut {
	items := make([]CartItemOut, 0, len(c.Items))
	total := decimal.Zero
	for i := range c.Items {
		out := cartItemOut(&c.Items[i])
		total = total.Add(out.TotalPrice)
		items = append(items, out)
	}
	return &CartOut{ID: c.ID, CreatedAt: c.CreatedAt, Items: items, TotalPrice: total}
}

type AddCartItemIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemIn struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ----- Operations -----

func (s *CartService) Create() (*CartOut, error) {
	c, err := s.Repo.Create()
	if err != nil {
		return nil, err
	}
	return cartOut(c), nil
}

func (s *CartService) Get(cartID string) (*CartOut, error) {
	c, err := s.Repo.GetWithItems(cartID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return cartOut(c), nil
}

func (s *CartService) Delete(cartID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteCart(tx, cartID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartNotFound
		}
		return nil
	})
}

func (s *CartService) ListItems(cartID string) ([]CartItemOut, error) {
	c, err := s.Get(cartID)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

func (s *CartService) GetItem(cartID string, itemID uint) (*CartItemOut, error) {
	it, err := s.Repo.GetItem(cartID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	out := cartItemOut(it)
	return &out, nil
}

// AddItem adds a product to the cart; adding a product already present
// increments the existing line instead of creating a second row. The
// existence checks run inside the same transaction as the insert, so a
// cart deleted mid-request never gains an orphan line.
func (s *CartService) AddItem(cartID string, in *AddCartItemIn) (*CartItemOut, error) {
	var itemID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.Exists(tx, cartID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCartNotFound
		}
		ok, err = s.ProductRepo.Exists(tx, in.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrProductNotFound
		}

		row, err := s.Repo.UpsertItem(tx, cartID, in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		itemID = row.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(cartID, itemID)
}

func (s *CartService) UpdateItem(cartID string, itemID uint, in *UpdateCartItemIn) (*CartItemOut, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateItemQty(tx, cartID, itemID, in.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetItem(cartID, itemID)
}

func (s *CartService) RemoveItem(cartID string, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.RemoveItem(tx, cartID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}
