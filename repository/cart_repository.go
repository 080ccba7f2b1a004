package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) Create() (*entity.Cart, error) {
	cart := &entity.Cart{}
	if err := r.DB.Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) GetWithItems(cartID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("id = ?", cartID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Exists(db *gorm.DB, cartID string) (bool, error) {
	var count int64
	if err := db.Model(&entity.Cart{}).Where("id = ?", cartID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CartRepository) CountItems(cartID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

// ItemsWithProducts loads the cart lines with their products, inside the
// caller's transaction when one is given.
func (r *CartRepository) ItemsWithProducts(tx *gorm.DB, cartID string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Preload("Product").Find(&items).Error
	return items, err
}

// UpsertItem merges a duplicate product into the existing line in a
// single statement: the partial unique index on (cart_id, product_id)
// turns a concurrent second add into a quantity increment instead of a
// second row.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID string, productID uint, qty int) (*entity.CartItem, error) {
	row := entity.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}
	err := tx.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("deleted_at IS NULL")}},
		DoUpdates:   clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + ?", qty)}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// on the conflict path the insert id is not the merged line's id
	var merged entity.CartItem
	if err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&merged).Error; err != nil {
		return nil, err
	}
	return &merged, nil
}

func (r *CartRepository) GetItem(cartID string, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).
		Preload("Product").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) UpdateItemQty(tx *gorm.DB, cartID string, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID string, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteCart removes the cart and its items. The delete takes the row
// lock, so of two concurrent checkouts of the same cart the loser sees
// zero rows affected.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID string) (int64, error) {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Where("id = ?", cartID).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}
