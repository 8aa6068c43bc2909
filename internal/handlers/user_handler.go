package handlers

import (
	"net/http"

	"food_order/internal/middleware"
	"food_order/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"phone":           user.Phone,
		"default_address": user.DefaultAddress,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var input services.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	_, err := h.userService.UpdateProfile(claims.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "profile updated"
	if input.NewPassword != "" {
		message = "profile and password updated"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
