package routes

import (
	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/Kariqs/amexan-eats-api/middlewares"
	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Restaurants *controllers.RestaurantController
	Foods       *controllers.FoodController
	Ratings     *controllers.RatingController
	Carts       *controllers.CartController
	Orders      *controllers.OrderController
}

// guards are the middlewares shared by the route groups.
type guards struct {
	requireAuth gin.HandlerFunc
	manager     gin.HandlerFunc
	rateLimit   gin.HandlerFunc
}

// Register mounts every route. A nil limiter disables rate limiting.
func Register(server *gin.Engine, c Controllers, tokens *auth.TokenMaker, limiter middlewares.Limiter, logger zerolog.Logger) {
	g := guards{
		requireAuth: middlewares.RequireAuth(tokens),
		manager:     middlewares.RequireRole(models.RoleOwner, models.RoleAdmin),
		rateLimit:   middlewares.RateLimit(limiter, logger),
	}

	DefaultRoutes(server)
	AuthRoutes(server, c.Auth, g)
	RestaurantRoutes(server, c.Restaurants, c.Foods, c.Ratings, g)
	FoodRoutes(server, c.Foods, c.Ratings, g)
	CartRoutes(server, c.Carts, g)
	OrderRoutes(server, c.Orders, g)
}
