package models

import "gorm.io/gorm"

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name        string        `json:"name" gorm:"type:varchar(100);not null"`
	Email       string        `json:"email" gorm:"type:varchar(191);uniqueIndex;not null"`
	Phone       string        `json:"phone" gorm:"type:varchar(30)"`
	Password    string        `json:"-" gorm:"not null"`
	Role        Role          `json:"role" gorm:"type:varchar(20);default:user"`
	Restaurants []Restaurant  `json:"restaurants,omitempty" gorm:"foreignKey:OwnerID"`
	Addresses   []UserAddress `json:"addresses,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type SignupData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
