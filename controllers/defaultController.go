package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Amexan Eats API. Order food from your favourite restaurants.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/forgot-password" - Request password reset
- PUT "/auth/update-password/:token" - Set a new password
- GET "/auth/me" - Get the signed in user
- GET|POST "/auth/user-address", PUT|DELETE "/auth/user-address/:id" - Manage addresses

RESTAURANT
- GET "/restaurants" - Search restaurants
- POST "/restaurants" - Create restaurant
- GET|PUT|DELETE "/restaurants/:id" - Get, update or delete a restaurant
- GET|POST|PUT|DELETE "/restaurants/:id/address" - Manage restaurant address
- GET|POST "/restaurants/:id/ratings", PUT|DELETE "/restaurants/ratings/:id" - Restaurant reviews

FOOD
- GET "/foods" - Search foods
- POST "/restaurants/:id/foods" - Add food to a restaurant
- GET|PUT|DELETE "/foods/:id" - Get, update or delete a food
- GET|POST "/foods/:id/ratings", PUT|DELETE "/foods/ratings/:id" - Food reviews

CART
- GET|POST|DELETE "/carts" - Get cart, add item, clear cart
- PUT|DELETE "/carts/:id" - Update or remove a cart item

ORDER
- POST "/orders/checkout" - Checkout the cart
- POST "/orders" - Create a payment gateway order
- POST "/orders/payment/:id" - Verify an online payment
- GET "/orders/history" - Order history
- GET "/orders/payment-history" - Payment history`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
