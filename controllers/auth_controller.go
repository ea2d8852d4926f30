package controllers

import (
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/models"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
	Me(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	logger  *zap.Logger
}

func NewAuthController(service services.IAuthService, logger *zap.Logger) IAuthController {
	return &AuthController{service: service, logger: logger}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, token, err := c.service.Signup(ctx.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusCreated, "User registered successfully", dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, token, err := c.service.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Login successful", dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var input dto.ResetPasswordInput
	if !bindJSON(ctx, &input) {
		return
	}

	if err := c.service.RequestPasswordReset(ctx.Request.Context(), input.Email); err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Password reset requested. Please check your email for further instructions.", nil)
}

func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	user, err := c.service.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"user": user})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString := ctx.GetString(constants.ContextToken)
	if tokenString == "" {
		respondError(ctx, http.StatusUnauthorized, constants.ErrUnauthorized)
		return
	}

	if err := c.service.Logout(tokenString); err != nil {
		c.logger.Warn("logout failed", zap.Error(err))
		respondError(ctx, http.StatusUnauthorized, constants.ErrInvalidToken)
		return
	}
	respond(ctx, http.StatusOK, "Logout successful", nil)
}
