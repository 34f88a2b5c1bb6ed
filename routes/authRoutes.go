package routes

import (
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, c *controllers.AuthController, g guards) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", g.rateLimit, c.Signup)
		auth.POST("/login", g.rateLimit, c.Login)
		auth.POST("/forgot-password", g.rateLimit, c.ForgotPassword)
		auth.PUT("/update-password/:token", c.UpdatePassword)
	}

	account := auth.Group("", g.requireAuth)
	{
		account.GET("/me", c.Me)
		account.GET("/user-address", c.GetAddresses)
		account.POST("/user-address", c.CreateAddress)
		account.PUT("/user-address/:id", c.UpdateAddress)
		account.DELETE("/user-address/:id", c.DeleteAddress)
	}
}
