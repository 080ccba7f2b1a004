package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/entity"
	"storefront/pkg/logger"
	"storefront/repository"
)

var (
	ErrCartNotFound  = errors.New("no cart with given ID was found")
	ErrEmptyCart     = errors.New("this shopping cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrBadStatus     = errors.New("invalid payment status")
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	CustomerRepo *repository.CustomerRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	customerRepo *repository.CustomerRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CustomerRepo: customerRepo}
}

// ----- DTOs -----

type CreateOrderReq struct {
	CartID string `json:"cartId" binding:"required"`
}

type OrderItemOut struct {
	ID       uint         `json:"id"`
	Product  ProductBrief `json:"product"`
	Quantity int          `json:"quantity"`

	// Kept exactly as the read model always exposed it: current product
	// price times quantity, a line total under a per-unit name. The
	// stored column still holds the frozen per-unit snapshot.
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderOut struct {
	ID            uint           `json:"id"`
	CustomerID    uint           `json:"customerId"`
	PaymentStatus string         `json:"paymentStatus"`
	PlacedAt      time.Time      `json:"placedAt"`
	Items         []OrderItemOut `json:"items"`
}

func orderOut(o *entity.Order) *OrderOut {
	items := make([]OrderItemOut, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, OrderItemOut{
			ID: it.ID,
			Product: ProductBrief{
				ID:        it.Product.ID,
				Title:     it.Product.Title,
				UnitPrice: it.Product.UnitPrice,
			},
			Quantity:  it.Quantity,
			UnitPrice: it.Product.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return &OrderOut{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PaymentStatus: o.PaymentStatus,
		PlacedAt:      o.PlacedAt,
		Items:         items,
	}
}

// ----- Checkout -----

// CreateFromCart converts a cart into a durable order in one all-or-nothing
// transaction: resolve the acting user's customer profile, create a Pending
// order, copy every cart line with the product's current price frozen in,
// then delete the cart. Later catalog price edits never touch the copies.
func (s *OrderService) CreateFromCart(userID uint, cartID string) (*OrderOut, error) {
	ok, err := s.CartRepo.Exists(s.DB, cartID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartNotFound
	}
	count, err := s.CartRepo.CountItems(cartID)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, ErrEmptyCart
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := s.CustomerRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		order := entity.Order{
			CustomerID:    customer.ID,
			PlacedAt:      time.Now(),
			PaymentStatus: entity.PaymentPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items, err := s.CartRepo.ItemsWithProducts(tx, cartID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			// emptied between the precheck and the transaction
			return ErrEmptyCart
		}

		rows := make([]entity.OrderItem, 0, len(items))
		for _, it := range items {
			rows = append(rows, entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.Product.UnitPrice,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, rows); err != nil {
			return err
		}

		affected, err := s.CartRepo.DeleteCart(tx, cartID)
		if err != nil {
			return err
		}
		if affected == 0 {
			// a concurrent checkout won; keep nothing from this attempt
			return ErrCartNotFound
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info().
		Uint("orderId", orderID).
		Str("cartId", cartID).
		Int64("items", count).
		Msg("cart converted to order")

	o, err := s.Repo.GetWithItems(orderID)
	if err != nil {
		return nil, err
	}
	return orderOut(o), nil
}

// ----- List & Detail -----

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

// ListForUser returns every order for staff and only the acting customer's
// orders otherwise. The customer profile is created lazily like everywhere
// else.
func (s *OrderService) ListForUser(userID uint, staff bool, page, limit int) (*OrderListOut, error) {
	var (
		items []repository.OrderSummary
		total int64
		err   error
	)
	if staff {
		items, total, err = s.Repo.ListAll(page, limit)
	} else {
		var customer *entity.Customer
		customer, err = s.CustomerRepo.GetOrCreate(s.DB, userID)
		if err != nil {
			return nil, err
		}
		items, total, err = s.Repo.ListForCustomer(customer.ID, page, limit)
	}
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForUser(userID uint, staff bool, orderID uint) (*OrderOut, error) {
	o, err := s.Repo.GetWithItems(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if !staff {
		customer, err := s.CustomerRepo.GetOrCreate(s.DB, userID)
		if err != nil {
			return nil, err
		}
		if o.CustomerID != customer.ID {
			// not the owner; indistinguishable from a missing order
			return nil, ErrOrderNotFound
		}
	}
	return orderOut(o), nil
}

// ----- Staff mutations -----

func (s *OrderService) UpdateStatus(orderID uint, status string) (*OrderOut, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, ErrBadStatus
	}
	affected, err := s.Repo.UpdatePaymentStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}
	o, err := s.Repo.GetWithItems(orderID)
	if err != nil {
		return nil, err
	}
	return orderOut(o), nil
}

func (s *OrderService) Delete(orderID uint) error {
	affected, err := s.Repo.Delete(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
