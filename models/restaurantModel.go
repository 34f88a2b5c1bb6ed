package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string                      `json:"name" gorm:"type:varchar(150);not null;index"`
	About    string                      `json:"about" gorm:"type:text"`
	Phone    string                      `json:"phone" gorm:"type:varchar(30)"`
	ImageUrl string                      `json:"imageUrl"`
	Cuisines datatypes.JSONSlice[string] `json:"cuisines"`
	OwnerID  uint                        `json:"ownerId" gorm:"index;not null"`
	Owner    *User                       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Address  *RestaurantAddress          `json:"address,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Foods    []Food                      `json:"foods,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Reviews  []RestaurantRatingAndReview `json:"reviews,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

type RestaurantInput struct {
	Name     *string  `form:"name" json:"name"`
	About    *string  `form:"about" json:"about"`
	Phone    *string  `form:"phone" json:"phone"`
	Cuisines []string `form:"cuisines" json:"cuisines"`
}
