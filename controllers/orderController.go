package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkout *services.CheckoutService
}

func NewOrderController(checkout *services.CheckoutService) *OrderController {
	return &OrderController{checkout: checkout}
}

func (c *OrderController) Checkout(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.CheckoutData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "please provide payment method")
		return
	}

	result, err := c.checkout.CreateCheckout(ctx.Request.Context(), identity.UserID, data.PaymentMethod)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":    "Order placed successfully",
		"order":      result.Order,
		"payment":    result.Payment,
		"totalPrice": result.TotalPrice,
	})
}

// CreateOrder issues the gateway order for an online checkout.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.GatewayOrderData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "please provide order id")
		return
	}

	gatewayOrder, order, err := c.checkout.CreateGatewayOrder(ctx.Request.Context(), identity.UserID, data.OrderID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"gatewayOrder": gatewayOrder, "order": order})
}

// VerifyPayment takes the payment id from the body, falling back to the path.
func (c *OrderController) VerifyPayment(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.VerifyPaymentData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	pathID := ctx.Param("id")
	if data.PaymentID == "" {
		data.PaymentID = pathID
	}
	if data.PaymentID != pathID {
		sendErrorResponse(ctx, http.StatusBadRequest, "payment id does not match the request path")
		return
	}

	payment, err := c.checkout.VerifyPayment(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment verified successfully", "payment": payment})
}

func (c *OrderController) GetOrderHistory(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	orders, err := c.checkout.OrderHistory(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *OrderController) GetPaymentHistory(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	payments, err := c.checkout.PaymentHistory(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"payments": payments})
}
