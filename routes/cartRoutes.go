package routes

import (
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, c *controllers.CartController, g guards) {
	carts := server.Group("/carts", g.requireAuth)
	{
		carts.GET("", c.GetCart)
		carts.POST("", c.CreateCartItem)
		carts.DELETE("", c.ClearCart)
		carts.PUT("/:id", c.UpdateCartItem)
		carts.DELETE("/:id", c.DeleteCartItem)
	}
}
