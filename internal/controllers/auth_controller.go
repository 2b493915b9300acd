package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

type registerRequest struct {
	Name     string `json:"name"     binding:"required"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController регистрация, вход и текущий пользователь.
type AuthController struct {
	users UserManager
}

func NewAuthController(users UserManager) *AuthController {
	return &AuthController{users: users}
}

// Register POST /api/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	user, err := c.users.Register(reqCtx, services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"user": newUserResource(user)})
}

// Login POST /api/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	token, user, err := c.users.Login(reqCtx, req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"user":       newUserResource(user),
	})
}

// Me GET /api/user
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	user, err := c.users.GetByID(reqCtx, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResource(user))
}

// Logout POST /api/logout. Токены не хранятся на сервере, клиенту достаточно его удалить.
func (c *AuthController) Logout(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}
