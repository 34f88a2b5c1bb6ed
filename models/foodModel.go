package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name          string                `json:"name" gorm:"type:varchar(150);not null;index"`
	Description   string                `json:"description" gorm:"type:text"`
	Price         decimal.Decimal       `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountPrice decimal.Decimal       `json:"discountPrice" gorm:"type:decimal(10,2);not null;default:0"`
	ImageUrl      string                `json:"imageUrl"`
	RestaurantID  uint                  `json:"restaurantId" gorm:"index;not null"`
	Restaurant    *Restaurant           `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Reviews       []FoodRatingAndReview `json:"reviews,omitempty" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
}

// EffectivePrice is the price a cart line snapshots: the discount price when one is set.
func (f Food) EffectivePrice() decimal.Decimal {
	if f.DiscountPrice.IsPositive() {
		return f.DiscountPrice
	}
	return f.Price
}

type FoodInput struct {
	Name          *string          `form:"name" json:"name"`
	Description   *string          `form:"description" json:"description"`
	Price         *decimal.Decimal `form:"price" json:"price"`
	DiscountPrice *decimal.Decimal `form:"discountPrice" json:"discountPrice"`
}
