package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "ONLINE"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

type Payment struct {
	gorm.Model
	UserID           uint            `json:"userId" gorm:"index;not null"`
	OrderID          uint            `json:"orderId" gorm:"uniqueIndex;not null"`
	Method           PaymentMethod   `json:"paymentMethod" gorm:"type:varchar(20);not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency         string          `json:"currency" gorm:"type:varchar(3);not null"`
	Status           PaymentStatus   `json:"status" gorm:"type:varchar(20);not null"`
	PaymentGateway   string          `json:"paymentGateway" gorm:"type:varchar(30)"`
	GatewayOrderID   string          `json:"gatewayOrderId" gorm:"type:varchar(100);index"`
	GatewayPaymentID string          `json:"gatewayPaymentId" gorm:"type:varchar(100)"`
	GatewaySignature string          `json:"gatewaySignature" gorm:"type:varchar(128)"`
	GatewayPayload   datatypes.JSON  `json:"gatewayPayload,omitempty"`
}

type CheckoutData struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"required"`
}

type GatewayOrderData struct {
	OrderID uint `json:"orderId" binding:"required"`
}

type VerifyPaymentData struct {
	PaymentID        string `json:"paymentId"`
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewaySignature string `json:"gatewaySignature"`
}
