package controllers

import (
	"net/http"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/Kariqs/amexan-eats-api/services"
	"github.com/gin-gonic/gin"
)

const (
	msgUserCreated     = "User created successfully."
	msgResetLinkSent   = "Check your email for a password reset link."
	msgPasswordUpdated = "Password updated successfully"
	msgAddressCreated  = "Address added successfully"
	msgAddressUpdated  = "Address updated successfully"
	msgAddressDeleted  = "Address deleted successfully"
)

type AuthController struct {
	auth      *services.AuthService
	addresses *services.AddressService
}

func NewAuthController(auth *services.AuthService, addresses *services.AddressService) *AuthController {
	return &AuthController{auth: auth, addresses: addresses}
}

// Signup handles user registration
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.auth.Signup(ctx.Request.Context(), signUpData)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "user": user})
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	token, user, err := c.auth.Login(ctx.Request.Context(), loginData)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token, "user": user})
}

// ForgotPassword sends a password reset link to the user's email
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	type ForgotPasswordBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	var forgotPasswordData ForgotPasswordBody
	if err := ctx.ShouldBindJSON(&forgotPasswordData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.auth.ForgotPassword(ctx.Request.Context(), forgotPasswordData.Email); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgResetLinkSent})
}

// UpdatePassword sets a new password using the token from the reset link
func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	type UpdatePasswordInfo struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	var data UpdatePasswordInfo
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := c.auth.UpdatePassword(ctx.Request.Context(), ctx.Param("token"), data.Password, data.ConfirmPassword)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgPasswordUpdated})
}

func (c *AuthController) Me(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	user, err := c.auth.Me(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func (c *AuthController) CreateAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var input models.AddressInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	address, err := c.addresses.CreateUserAddress(ctx.Request.Context(), identity.UserID, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgAddressCreated, "address": address})
}

func (c *AuthController) GetAddresses(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	addresses, err := c.addresses.ListUserAddresses(ctx.Request.Context(), identity.UserID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	if addresses == nil {
		addresses = []models.UserAddress{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"addresses": addresses})
}

func (c *AuthController) UpdateAddress(ctx *gin.Context) {
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

	address, err := c.addresses.UpdateUserAddress(ctx.Request.Context(), identity.UserID, id, input)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgAddressUpdated, "address": address})
}

func (c *AuthController) DeleteAddress(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.addresses.DeleteUserAddress(ctx.Request.Context(), identity.UserID, id); err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgAddressDeleted})
}
