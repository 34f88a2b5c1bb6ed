package models

import "gorm.io/gorm"

type Address struct {
	Street  string `json:"street" gorm:"type:varchar(191)"`
	City    string `json:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" gorm:"type:varchar(100)"`
	Country string `json:"country" gorm:"type:varchar(100)"`
	Zipcode string `json:"zipcode" gorm:"type:varchar(20)"`
}

type UserAddress struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index;not null"`
	Address
}

type RestaurantAddress struct {
	gorm.Model
	RestaurantID uint `json:"restaurantId" gorm:"uniqueIndex;not null"`
	Address
}

// AddressInput carries a full address on create and a partial one on update.
type AddressInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Zipcode *string `json:"zipcode"`
}

func (in AddressInput) Complete() bool {
	for _, v := range []*string{in.Street, in.City, in.State, in.Country, in.Zipcode} {
		if v == nil || *v == "" {
			return false
		}
	}
	return true
}

// Apply copies the supplied, non-empty fields onto a.
func (in AddressInput) Apply(a *Address) {
	set := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	set(&a.Street, in.Street)
	set(&a.City, in.City)
	set(&a.State, in.State)
	set(&a.Country, in.Country)
	set(&a.Zipcode, in.Zipcode)
}
