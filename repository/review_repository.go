package repository

import (
	"context"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/gorm"
)

// ReviewRepository hard-deletes reviews so a user can review the same
// food or restaurant again after removing the old review.
type ReviewRepository struct{ db *gorm.DB }

func (r *ReviewRepository) CreateFoodReview(ctx context.Context, review *models.FoodRatingAndReview) error {
	return r.db.WithContext(ctx).Omit("User").Create(review).Error
}

func (r *ReviewRepository) FindFoodReview(ctx context.Context, id uint) (*models.FoodRatingAndReview, error) {
	var review models.FoodRatingAndReview
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FoodReviewExists(ctx context.Context, userID, foodID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FoodRatingAndReview{}).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) SaveFoodReview(ctx context.Context, review *models.FoodRatingAndReview) error {
	return r.db.WithContext(ctx).Omit("User").Save(review).Error
}

func (r *ReviewRepository) DeleteFoodReview(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.FoodRatingAndReview{}, id).Error
}

func (r *ReviewRepository) ListFoodReviews(ctx context.Context, foodID uint) ([]models.FoodRatingAndReview, error) {
	var reviews []models.FoodRatingAndReview
	err := r.db.WithContext(ctx).Preload("User").Where("food_id = ?", foodID).Order("created_at desc, id desc").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) CreateRestaurantReview(ctx context.Context, review *models.RestaurantRatingAndReview) error {
	return r.db.WithContext(ctx).Omit("User").Create(review).Error
}

func (r *ReviewRepository) FindRestaurantReview(ctx context.Context, id uint) (*models.RestaurantRatingAndReview, error) {
	var review models.RestaurantRatingAndReview
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) RestaurantReviewExists(ctx context.Context, userID, restaurantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RestaurantRatingAndReview{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) SaveRestaurantReview(ctx context.Context, review *models.RestaurantRatingAndReview) error {
	return r.db.WithContext(ctx).Omit("User").Save(review).Error
}

func (r *ReviewRepository) DeleteRestaurantReview(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.RestaurantRatingAndReview{}, id).Error
}

func (r *ReviewRepository) ListRestaurantReviews(ctx context.Context, restaurantID uint) ([]models.RestaurantRatingAndReview, error) {
	var reviews []models.RestaurantRatingAndReview
	err := r.db.WithContext(ctx).Preload("User").Where("restaurant_id = ?", restaurantID).Order("created_at desc, id desc").Find(&reviews).Error
	return reviews, err
}
