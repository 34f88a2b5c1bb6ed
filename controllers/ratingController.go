package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

const (
	msgReviewCreated = "Review added successfully"
	msgReviewUpdated = "Review updated successfully"
	msgReviewDeleted = "Review deleted successfully"
)

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

func bindReview(ctx *gin.Context) (models.ReviewInput, bool) {
	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return input, false
	}
	return input, true
}

func (c *RatingController) CreateFoodReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	foodID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	input, ok := bindReview(ctx)
	if !ok {
		return
	}

	review, err := c.ratings.CreateFoodReview(ctx.Request.Context(), identity.UserID, foodID, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgReviewCreated, "review": review})
}

func (c *RatingController) UpdateFoodReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	input, ok := bindReview(ctx)
	if !ok {
		return
	}

	review, err := c.ratings.UpdateFoodReview(ctx.Request.Context(), identity, id, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgReviewUpdated, "review": review})
}

func (c *RatingController) DeleteFoodReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.ratings.DeleteFoodReview(ctx.Request.Context(), identity, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgReviewDeleted})
}

func (c *RatingController) GetFoodReviews(ctx *gin.Context) {
	foodID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.ratings.ListFoodReviews(ctx.Request.Context(), foodID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	if reviews == nil {
		reviews = []models.FoodRatingAndReview{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

func (c *RatingController) CreateRestaurantReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	restaurantID, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	input, ok := bindReview(ctx)
	if !ok {
		return
	}

	review, err := c.ratings.CreateRestaurantReview(ctx.Request.Context(), identity.UserID, restaurantID, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgReviewCreated, "review": review})
}

func (c *RatingController) UpdateRestaurantReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	input, ok := bindReview(ctx)
	if !ok {
		return
	}

	review, err := c.ratings.UpdateRestaurantReview(ctx.Request.Context(), identity, id, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgReviewUpdated, "review": review})
}

func (c *RatingController) DeleteRestaurantReview(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.ratings.DeleteRestaurantReview(ctx.Request.Context(), identity, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgReviewDeleted})
}

func (c *RatingController) GetRestaurantReviews(ctx *gin.Context) {
	restaurantID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.ratings.ListRestaurantReviews(ctx.Request.Context(), restaurantID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	if reviews == nil {
		reviews = []models.RestaurantRatingAndReview{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}
