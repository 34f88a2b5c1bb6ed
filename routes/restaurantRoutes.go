package routes

import (
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/gin-gonic/gin"
)

func RestaurantRoutes(server *gin.Engine, c *controllers.RestaurantController, foods *controllers.FoodController, ratings *controllers.RatingController, g guards) {
	server.GET("/restaurants", c.GetRestaurants)

	restaurants := server.Group("/restaurants", g.requireAuth)
	{
		restaurants.GET("/:id", c.GetRestaurant)
		restaurants.GET("/:id/address", c.GetAddress)
		restaurants.GET("/:id/ratings", ratings.GetRestaurantReviews)
		restaurants.POST("/:id/ratings", ratings.CreateRestaurantReview)
		restaurants.PUT("/ratings/:id", ratings.UpdateRestaurantReview)
		restaurants.DELETE("/ratings/:id", ratings.DeleteRestaurantReview)
	}

	managed := server.Group("/restaurants", g.requireAuth, g.manager)
	{
		managed.POST("", c.CreateRestaurant)
		managed.PUT("/:id", c.UpdateRestaurant)
		managed.DELETE("/:id", c.DeleteRestaurant)
		managed.POST("/:id/address", c.CreateAddress)
		managed.PUT("/:id/address", c.UpdateAddress)
		managed.DELETE("/:id/address", c.DeleteAddress)
		managed.POST("/:id/foods", foods.CreateFood)
	}
}
