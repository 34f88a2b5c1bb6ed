package models

import "gorm.io/gorm"

type FoodRatingAndReview struct {
	gorm.Model
	UserID uint   `json:"userId" gorm:"uniqueIndex:idx_food_review_user;not null"`
	FoodID uint   `json:"foodId" gorm:"uniqueIndex:idx_food_review_user;not null"`
	Rating int    `json:"rating" gorm:"not null"`
	Review string `json:"review" gorm:"type:text"`
	User   *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type RestaurantRatingAndReview struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"uniqueIndex:idx_restaurant_review_user;not null"`
	RestaurantID uint   `json:"restaurantId" gorm:"uniqueIndex:idx_restaurant_review_user;not null"`
	Rating       int    `json:"rating" gorm:"not null"`
	Review       string `json:"review" gorm:"type:text"`
	User         *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type ReviewInput struct {
	Rating *int    `json:"rating"`
	Review *string `json:"review"`
}
