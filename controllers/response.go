package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gin-pantry/ai"
	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/repositories"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func respond(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, dto.Response{Success: true, Message: message, Data: data})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, dto.Response{Success: false, Message: message})
}

func userIDFrom(ctx *gin.Context) (uint, bool) {
	userID := ctx.GetUint(constants.ContextUserID)
	if userID == 0 {
		respondError(ctx, http.StatusUnauthorized, constants.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(ctx, http.StatusBadRequest, constants.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

func queryInt(ctx *gin.Context, key string) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func bindJSON(ctx *gin.Context, input any) bool {
	if err := ctx.ShouldBindJSON(input); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError writes the status for err. notFound is the message used for missing rows.
func handleError(ctx *gin.Context, logger *zap.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, repositories.ErrUserNotFound):
		respondError(ctx, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrInvalidDate):
		respondError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrStartDateRequired):
		respondError(ctx, http.StatusBadRequest, constants.ErrStartDateRequired)
	case errors.Is(err, services.ErrInvalidDateRange):
		respondError(ctx, http.StatusBadRequest, constants.ErrInvalidDateRange)
	case errors.Is(err, services.ErrBlankName):
		respondError(ctx, http.StatusBadRequest, constants.ErrInvalidInput)
	case errors.Is(err, services.ErrNoIngredients):
		respondError(ctx, http.StatusBadRequest, constants.ErrIngredientsRequired)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(ctx, http.StatusUnauthorized, constants.ErrInvalidCredentials)
	case errors.Is(err, services.ErrInvalidPassword):
		respondError(ctx, http.StatusUnauthorized, constants.ErrInvalidPassword)
	case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrTokenBlacklisted):
		respondError(ctx, http.StatusUnauthorized, constants.ErrInvalidToken)
	case errors.Is(err, services.ErrEmailInUse):
		respondError(ctx, http.StatusConflict, constants.ErrEmailInUse)
	case errors.Is(err, services.ErrAIDisabled):
		respondError(ctx, http.StatusServiceUnavailable, constants.ErrAIUnavailable)
	default:
		fields := []zap.Field{zap.Error(err), zap.String("path", ctx.FullPath())}
		if requestID := ctx.GetString(constants.ContextRequestID); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if isModelError(err) {
			logger.Warn("model reply rejected", fields...)
		} else {
			logger.Error("request failed", fields...)
		}
		_ = ctx.Error(err)
		respondError(ctx, http.StatusInternalServerError, err.Error())
	}
}

func isModelError(err error) bool {
	return errors.Is(err, ai.ErrEmptyResponse) ||
		errors.Is(err, ai.ErrNoJSONObject) ||
		errors.Is(err, ai.ErrNoJSONArray) ||
		errors.Is(err, ai.ErrInvalidJSON)
}
