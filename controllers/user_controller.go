package controllers

import (
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IUserController interface {
	GetProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	UpdatePreferences(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	DeleteAccount(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
	logger  *zap.Logger
}

func NewUserController(service services.IUserService, logger *zap.Logger) IUserController {
	return &UserController{service: service, logger: logger}
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	user, preferences, err := c.service.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"user": user, "preferences": preferences})
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.UpdateProfileInput
	if !bindJSON(ctx, &input) {
		return
	}

	user, err := c.service.UpdateProfile(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.UpdatePreferencesInput
	if !bindJSON(ctx, &input) {
		return
	}

	preferences, err := c.service.UpdatePreferences(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Preferences updated successfully", gin.H{"preferences": preferences})
}

func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.ChangePasswordInput
	if !bindJSON(ctx, &input) {
		return
	}

	if err := c.service.ChangePassword(ctx.Request.Context(), userID, input); err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Password changed successfully", nil)
}

func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteAccount(ctx.Request.Context(), userID); err != nil {
		handleError(ctx, c.logger, err, constants.ErrUserNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Account deleted successfully", nil)
}
