package repository

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/gorm"
)

type AddressRepository struct{ db *gorm.DB }

func (r *AddressRepository) CreateUserAddress(ctx context.Context, address *models.UserAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *AddressRepository) FindUserAddress(ctx context.Context, id uint) (*models.UserAddress, error) {
	var address models.UserAddress
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) SaveUserAddress(ctx context.Context, address *models.UserAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *AddressRepository) DeleteUserAddress(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.UserAddress{}, id).Error
}

func (r *AddressRepository) ListUserAddresses(ctx context.Context, userID uint) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) FindRestaurantAddress(ctx context.Context, restaurantID uint) (*models.RestaurantAddress, error) {
	var address models.RestaurantAddress
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) SaveRestaurantAddress(ctx context.Context, address *models.RestaurantAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

// DeleteRestaurantAddress hard-deletes so the one-address-per-restaurant index frees up.
func (r *AddressRepository) DeleteRestaurantAddress(ctx context.Context, restaurantID uint) error {
	return r.db.WithContext(ctx).Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&models.RestaurantAddress{}).Error
}
