package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID   uint            `json:"cartId" gorm:"index;not null"`
	FoodID   uint            `json:"foodId" gorm:"index;not null"`
	Food     *Food           `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex;not null"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// Total is the sum of price x quantity over the cart lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

type AddCartItemData struct {
	FoodID   uint            `json:"foodId" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

type UpdateCartItemData struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
