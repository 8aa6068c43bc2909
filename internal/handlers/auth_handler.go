package handlers

import (
	"net/http"

	"food_order/internal/auth"
	"food_order/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	tokens      *auth.TokenManager
}

func NewAuthHandler(userService services.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	user, err := h.userService.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "registration successful",
		"email":   user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request format")
		return
	}

	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}
