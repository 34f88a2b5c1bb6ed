package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (c *CartController) CreateCartItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var data models.AddCartItemData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, created, err := c.carts.AddItem(ctx.Request.Context(), identity.UserID, data)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	if !created {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated", "cartItem": item})
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Item added to cart", "cartItem": item})
}

func (c *CartController) GetCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	cart, err := c.carts.GetCart(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart, "totalPrice": cart.Total()})
}

func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var data models.UpdateCartItemData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, err := c.carts.UpdateQuantity(ctx.Request.Context(), identity.UserID, id, data.Quantity)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item updated", "cartItem": item})
}

func (c *CartController) DeleteCartItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	cartDeleted, err := c.carts.RemoveItem(ctx.Request.Context(), identity.UserID, id)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed", "cartDeleted": cartDeleted})
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	if err := c.carts.ClearCart(ctx.Request.Context(), identity.UserID); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
