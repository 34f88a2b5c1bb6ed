package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderAccepted  OrderStatus = "ACCEPTED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	gorm.Model
	UserID         uint            `json:"userId" gorm:"index;not null"`
	RestaurantID   uint            `json:"restaurantId" gorm:"index;not null"`
	TotalAmount    decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(20);not null"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus" gorm:"type:varchar(20);not null"`
	GatewayOrderID string          `json:"gatewayOrderId" gorm:"type:varchar(100);index"`
	OrderItems     []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment        *Payment        `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID  uint            `json:"orderId" gorm:"index;not null"`
	FoodID   uint            `json:"foodId" gorm:"not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
