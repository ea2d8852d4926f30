package controllers

import (
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IMealPlanController interface {
	Add(ctx *gin.Context)
	Weekly(ctx *gin.Context)
	Upcoming(ctx *gin.Context)
	Stats(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type MealPlanController struct {
	service services.IMealPlanService
	logger  *zap.Logger
}

func NewMealPlanController(service services.IMealPlanService, logger *zap.Logger) IMealPlanController {
	return &MealPlanController{service: service, logger: logger}
}

func (c *MealPlanController) Add(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.AddMealPlanInput
	if !bindJSON(ctx, &input) {
		return
	}

	entry, err := c.service.Add(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusCreated, "Meal plan added successfully", gin.H{"meal_plan": entry})
}

func (c *MealPlanController) Weekly(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	startDate := ctx.Query("start_date")
	if startDate == "" {
		startDate = ctx.Query("week_start_date")
	}

	entries, err := c.service.Weekly(ctx.Request.Context(), userID, startDate)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrMealPlanNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"meal_plans": entries})
}

func (c *MealPlanController) Upcoming(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	meals, err := c.service.Upcoming(ctx.Request.Context(), userID, queryInt(ctx, "limit"))
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrMealPlanNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"meals": meals})
}

func (c *MealPlanController) Stats(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	stats, err := c.service.Stats(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrMealPlanNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"stats": stats})
}

func (c *MealPlanController) Delete(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	entryID, ok := idParam(ctx)
	if !ok {
		return
	}

	entry, err := c.service.Delete(ctx.Request.Context(), entryID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrMealPlanNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Meal plan entry deleted successfully", gin.H{"meal_plan": entry})
}
