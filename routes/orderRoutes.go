package routes

import (
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, c *controllers.OrderController, g guards) {
	orders := server.Group("/orders", g.requireAuth)
	{
		orders.POST("/checkout", c.Checkout)
		orders.POST("", c.CreateOrder)
		orders.POST("/payment/:id", c.VerifyPayment)
		orders.GET("/history", c.GetOrderHistory)
		orders.GET("/payment-history", c.GetPaymentHistory)
	}
}
