package repository

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ db *gorm.DB }

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindDetail loads a restaurant with its owner, address, menu and reviews.
func (r *RestaurantRepository) FindDetail(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Address").
		Preload("Foods").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&restaurant, id).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Save(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Omit("Owner", "Address", "Foods", "Reviews").Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Restaurant{}, id).Error
}

func (r *RestaurantRepository) List(ctx context.Context, q ListQuery) ([]models.Restaurant, int64, error) {
	var count int64
	if err := q.search(r.db.WithContext(ctx).Model(&models.Restaurant{}), "name").Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	query := q.search(r.db.WithContext(ctx).Preload("Owner").Preload("Reviews"), "name")
	if err := q.page(query).Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, count, nil
}
