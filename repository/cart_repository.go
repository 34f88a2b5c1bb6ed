package repository

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/gorm"
)

// CartRepository hard-deletes carts and lines: a cart is transient and the
// one-cart-per-user index must free up once it is gone.
type CartRepository struct{ db *gorm.DB }

func (r *CartRepository) FindByUserID(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindWithItems loads the user's cart, its lines and each line's food.
func (r *CartRepository) FindWithItems(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Food").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *CartRepository) Delete(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Cart{}, cartID).Error
}

func (r *CartRepository) FindItemByFood(ctx context.Context, cartID, foodID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).Where("cart_id = ? AND food_id = ?", cartID, foodID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemForUser only resolves lines that sit in the given user's cart.
func (r *CartRepository) FindItemForUser(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FirstItem(ctx context.Context, cartID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).Preload("Food").Where("cart_id = ?", cartID).Order("id").First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit("Food").Create(item).Error
}

func (r *CartRepository) SaveItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit("Food").Save(item).Error
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.CartItem{}, itemID).Error
}

func (r *CartRepository) DeleteItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Unscoped().Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *CartRepository) CountItems(ctx context.Context, cartID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}
