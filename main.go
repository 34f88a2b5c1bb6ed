package main

import (
	"context"
	"os"
	"time"

	"github.com/Kariqs/amexan-eats-api/auth"
	"github.com/Kariqs/amexan-eats-api/controllers"
	"github.com/Kariqs/amexan-eats-api/gateway"
	"github.com/Kariqs/amexan-eats-api/initializers"
	"github.com/Kariqs/amexan-eats-api/middlewares"
	"github.com/Kariqs/amexan-eats-api/repository"
	"github.com/Kariqs/amexan-eats-api/routes"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/Kariqs/amexan-eats-api/storage"
	"github.com/Kariqs/amexan-eats-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}
	logger := initializers.NewLogger(cfg.LogLevel)

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := initializers.SyncDatabase(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to sync database")
	}

	// money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	repos := repository.New(db)
	tokens := auth.NewTokenMaker(cfg.JWTSecret, cfg.JWTTTL, cfg.ResetTokenTTL)
	mailer := &utils.SMTPMailer{
		From:     cfg.FromEmail,
		Password: cfg.FromEmailPassword,
		Host:     cfg.FromEmailSMTP,
		Address:  cfg.SMTPAddress,
	}

	var images storage.ImageStore
	if s3Store, err := storage.NewS3ImageStore(ctx, cfg.S3Bucket); err != nil {
		logger.Warn().Err(err).Msg("image uploads disabled")
	} else {
		images = s3Store
	}

	var limiter middlewares.Limiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, rate limiting disabled")
		} else {
			limiter = middlewares.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute)
		}
	}

	paymentGateway := gateway.NewRazorpayClient(cfg.PaymentGatewayURL, cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.PaymentTimeout)
	verifier := gateway.NewVerifier(cfg.PaymentKeySecret)

	authService := services.NewAuthService(repos, tokens, mailer, cfg.ClientURL, logger)
	addressService := services.NewAddressService(repos)
	catalogService := services.NewCatalogService(repos, images)
	cartService := services.NewCartService(repos)
	checkoutService := services.NewCheckoutService(repos, paymentGateway, verifier, cfg.PaymentCurrency, logger)
	ratingService := services.NewRatingService(repos)

	gin.SetMode(cfg.GinMode)
	server := gin.New()
	server.Use(gin.Recovery(), middlewares.RequestLogger(logger))
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(server, routes.Controllers{
		Auth:        controllers.NewAuthController(authService, addressService),
		Restaurants: controllers.NewRestaurantController(catalogService, addressService),
		Foods:       controllers.NewFoodController(catalogService),
		Ratings:     controllers.NewRatingController(ratingService),
		Carts:       controllers.NewCartController(cartService),
		Orders:      controllers.NewOrderController(checkoutService),
	}, tokens, limiter, logger)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
