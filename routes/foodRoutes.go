package routes

import (
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/gin-gonic/gin"
)

func FoodRoutes(server *gin.Engine, c *controllers.FoodController, ratings *controllers.RatingController, g guards) {
	server.GET("/foods", c.GetFoods)

	foods := server.Group("/foods", g.requireAuth)
	{
		foods.GET("/:id", c.GetFood)
		foods.GET("/:id/ratings", ratings.GetFoodReviews)
		foods.POST("/:id/ratings", ratings.CreateFoodReview)
		foods.PUT("/ratings/:id", ratings.UpdateFoodReview)
		foods.DELETE("/ratings/:id", ratings.DeleteFoodReview)
	}

	managed := server.Group("/foods", g.requireAuth, g.manager)
	{
		managed.PUT("/:id", c.UpdateFood)
		managed.DELETE("/:id", c.DeleteFood)
	}
}
