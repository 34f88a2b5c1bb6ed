package services

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type CartService struct {
	repos *repository.Repositories
}

func NewCartService(repos *repository.Repositories) *CartService {
	return &CartService{repos: repos}
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.repos.Carts.FindWithItems(ctx, userID)
	if err != nil {
		return nil, lookup(err, "cart not found")
	}
	return cart, nil
}

// AddItem puts a food into the user's cart, creating the cart on first use.
// The line price is always the food's effective price at add time. A price
// sent by the client is only compared against it. The bool reports whether a
// new line was created.
func (s *CartService) AddItem(ctx context.Context, userID uint, data models.AddCartItemData) (*models.CartItem, bool, error) {
	if data.FoodID == 0 {
		return nil, false, errors.Mark(errors.New("please provide food id"), ErrMissingFields)
	}
	if data.Quantity < 1 {
		return nil, false, validationf("quantity must be at least 1")
	}

	var (
		item    *models.CartItem
		created bool
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		food, err := tx.Foods.FindByID(ctx, data.FoodID)
		if err != nil {
			return lookup(err, "food does not exist")
		}

		cart, err := s.findOrCreateCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		price := food.EffectivePrice().Round(2)
		if data.Price.IsPositive() && !data.Price.Round(2).Equal(price) {
			return validationf("price does not match the current food price")
		}

		existing, err := tx.Carts.FindItemByFood(ctx, cart.ID, food.ID)
		switch {
		case err == nil:
			// Only the quantity grows. The line keeps the price it was first
			// added at, so a line never mixes two unit prices.
			existing.Quantity += data.Quantity
			if err := tx.Carts.SaveItem(ctx, existing); err != nil {
				return errors.Wrap(err, "updating cart item")
			}
			item = existing
			return nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return errors.Wrap(err, "finding cart item")
		}

		first, err := tx.Carts.FirstItem(ctx, cart.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(err, "finding cart items")
		}
		if first != nil && first.Food != nil && first.Food.RestaurantID != food.RestaurantID {
			return validationf("cart already holds food from another restaurant")
		}

		item = &models.CartItem{
			CartID:   cart.ID,
			FoodID:   food.ID,
			Quantity: data.Quantity,
			Price:    price,
		}
		if err := tx.Carts.CreateItem(ctx, item); err != nil {
			return errors.Wrap(err, "creating cart item")
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return item, created, nil
}

func (s *CartService) findOrCreateCart(ctx context.Context, tx *repository.Repositories, userID uint) (*models.Cart, error) {
	cart, err := tx.Carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "finding cart")
	}
	cart = &models.Cart{UserID: userID}
	if err := tx.Carts.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "creating cart")
	}
	return cart, nil
}

// UpdateQuantity overwrites a line's quantity. The price snapshot is untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, validationf("quantity must be at least 1")
	}
	item, err := s.repos.Carts.FindItemForUser(ctx, userID, itemID)
	if err != nil {
		return nil, lookup(err, "cart item not found")
	}
	item.Quantity = quantity
	if err := s.repos.Carts.SaveItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "updating cart item")
	}
	return item, nil
}

// RemoveItem deletes a line and, when it was the last one, the cart too.
// The bool reports whether the cart was deleted.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (bool, error) {
	var cartDeleted bool
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		item, err := tx.Carts.FindItemForUser(ctx, userID, itemID)
		if err != nil {
			return lookup(err, "cart item not found")
		}
		if err := tx.Carts.DeleteItem(ctx, item.ID); err != nil {
			return errors.Wrap(err, "deleting cart item")
		}

		remaining, err := tx.Carts.CountItems(ctx, item.CartID)
		if err != nil {
			return errors.Wrap(err, "counting cart items")
		}
		if remaining > 0 {
			return nil
		}
		if err := tx.Carts.Delete(ctx, item.CartID); err != nil {
			return errors.Wrap(err, "deleting cart")
		}
		cartDeleted = true
		return nil
	})
	return cartDeleted, err
}

// ClearCart deletes the user's cart together with all of its lines.
func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := s.repos.Carts.FindByUserID(ctx, userID)
	if err != nil {
		return lookup(err, "cart not found")
	}
	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		return clearCart(ctx, tx, cart.ID)
	})
}

func clearCart(ctx context.Context, tx *repository.Repositories, cartID uint) error {
	if err := tx.Carts.DeleteItems(ctx, cartID); err != nil {
		return errors.Wrap(err, "deleting cart items")
	}
	return errors.Wrap(tx.Carts.Delete(ctx, cartID), "deleting cart")
}
