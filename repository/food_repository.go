package repository

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/gorm"
)

type FoodRepository struct{ db *gorm.DB }

func (r *FoodRepository) Create(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *FoodRepository) FindByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) FindDetail(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).Preload("Restaurant").Preload("Reviews").First(&food, id).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Save(ctx context.Context, food *models.Food) error {
	return r.db.WithContext(ctx).Omit("Restaurant", "Reviews").Save(food).Error
}

func (r *FoodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Food{}, id).Error
}

func (r *FoodRepository) DeleteByRestaurant(ctx context.Context, restaurantID uint) error {
	return r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&models.Food{}).Error
}

func (r *FoodRepository) List(ctx context.Context, q ListQuery) ([]models.Food, int64, error) {
	var count int64
	if err := q.search(r.db.WithContext(ctx).Model(&models.Food{}), "name").Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var foods []models.Food
	query := q.search(r.db.WithContext(ctx).Preload("Restaurant"), "name")
	if err := q.page(query).Find(&foods).Error; err != nil {
		return nil, 0, err
	}
	return foods, count, nil
}
