package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	catalog   *services.CatalogService
	addresses *services.AddressService
}

func NewRestaurantController(catalog *services.CatalogService, addresses *services.AddressService) *RestaurantController {
	return &RestaurantController{catalog: catalog, addresses: addresses}
}

// CreateRestaurant accepts JSON or a multipart form with an optional "image" file.
func (c *RestaurantController) CreateRestaurant(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var input models.RestaurantInput
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

	restaurant, err := c.catalog.CreateRestaurant(ctx.Request.Context(), identity, input, image)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Restaurant created successfully", "restaurant": restaurant})
}

func (c *RestaurantController) UpdateRestaurant(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var input models.RestaurantInput
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

	restaurant, err := c.catalog.UpdateRestaurant(ctx.Request.Context(), identity, id, input, image)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Restaurant updated successfully", "restaurant": restaurant})
}

func (c *RestaurantController) DeleteRestaurant(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalog.DeleteRestaurant(ctx.Request.Context(), identity, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Restaurant deleted successfully"})
}

func (c *RestaurantController) GetRestaurant(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	restaurant, err := c.catalog.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"restaurant": restaurant})
}

func (c *RestaurantController) GetRestaurants(ctx *gin.Context) {
	page, err := c.catalog.ListRestaurants(ctx.Request.Context(), listParams(ctx))
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	restaurants := page.Items
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"restaurants": restaurants,
		"metadata":    pageMetadata(page),
	})
}

func (c *RestaurantController) CreateAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var input models.AddressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	address, err := c.addresses.CreateRestaurantAddress(ctx.Request.Context(), identity, id, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgAddressCreated, "address": address})
}

func (c *RestaurantController) UpdateAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	var input models.AddressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	address, err := c.addresses.UpdateRestaurantAddress(ctx.Request.Context(), identity, id, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgAddressUpdated, "address": address})
}

func (c *RestaurantController) DeleteAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.addresses.DeleteRestaurantAddress(ctx.Request.Context(), identity, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgAddressDeleted})
}

func (c *RestaurantController) GetAddress(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	address, err := c.addresses.GetRestaurantAddress(ctx.Request.Context(), id)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"address": address})
}
