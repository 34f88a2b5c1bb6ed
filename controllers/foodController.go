package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

// CreateFood adds a food to the restaurant in the path.
func (c *FoodController) CreateFood(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	restaurantID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var input models.FoodInput
	if err := ctx.ShouldBind(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	image, closer, err := formImage(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer closer.Close()

	food, err := c.catalog.CreateFood(ctx.Request.Context(), identity, restaurantID, input, image)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Food created successfully", "food": food})
}

func (c *FoodController) UpdateFood(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var input models.FoodInput
	if err := ctx.ShouldBind(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	image, closer, err := formImage(ctx)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer closer.Close()

	food, err := c.catalog.UpdateFood(ctx.Request.Context(), identity, id, input, image)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Food updated successfully", "food": food})
}

func (c *FoodController) DeleteFood(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalog.DeleteFood(ctx.Request.Context(), identity, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Food deleted successfully"})
}

func (c *FoodController) GetFood(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	food, err := c.catalog.GetFood(ctx.Request.Context(), id)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"food": food})
}

func (c *FoodController) GetFoods(ctx *gin.Context) {
	page, err := c.catalog.ListFoods(ctx.Request.Context(), listParams(ctx))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	foods := page.Items
	if foods == nil {
		foods = []models.Food{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"foods":    foods,
		"metadata": pageMetadata(page),
	})
}
