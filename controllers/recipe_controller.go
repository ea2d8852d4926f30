package controllers

import (
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IRecipeController interface {
	Generate(ctx *gin.Context)
	Suggestions(ctx *gin.Context)
	Tips(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Recent(ctx *gin.Context)
	Stats(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type RecipeController struct {
	service services.IRecipeService
	logger  *zap.Logger
}

func NewRecipeController(service services.IRecipeService, logger *zap.Logger) IRecipeController {
	return &RecipeController{service: service, logger: logger}
}

func (c *RecipeController) Generate(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.GenerateRecipeInput
	if !bindJSON(ctx, &input) {
		return
	}

	recipe, err := c.service.Generate(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Recipe generated successfully", gin.H{"recipe": recipe})
}

func (c *RecipeController) Suggestions(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	suggestions, err := c.service.Suggestions(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"suggestions": suggestions})
}

func (c *RecipeController) Tips(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	recipeID, ok := idParam(ctx)
	if !ok {
		return
	}

	tips, err := c.service.Tips(ctx.Request.Context(), recipeID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"tips": tips})
}

func (c *RecipeController) FindAll(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var filter dto.RecipeFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	recipes, err := c.service.FindAll(ctx.Request.Context(), userID, filter)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"recipes": recipes})
}

func (c *RecipeController) Recent(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	recipes, err := c.service.FindRecent(ctx.Request.Context(), userID, queryInt(ctx, "limit"))
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"recipes": recipes})
}

func (c *RecipeController) Stats(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	stats, err := c.service.Stats(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"stats": stats})
}

func (c *RecipeController) FindById(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	recipeID, ok := idParam(ctx)
	if !ok {
		return
	}

	recipe, err := c.service.FindById(ctx.Request.Context(), recipeID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"recipe": recipe})
}

func (c *RecipeController) Create(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.CreateRecipeInput
	if !bindJSON(ctx, &input) {
		return
	}

	recipe, err := c.service.Create(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusCreated, "Recipe saved successfully", gin.H{"recipe": recipe})
}

func (c *RecipeController) Update(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	recipeID, ok := idParam(ctx)
	if !ok {
		return
	}
	var input dto.UpdateRecipeInput
	if !bindJSON(ctx, &input) {
		return
	}

	recipe, err := c.service.Update(ctx.Request.Context(), recipeID, userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Recipe updated successfully", gin.H{"recipe": recipe})
}

func (c *RecipeController) Delete(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	recipeID, ok := idParam(ctx)
	if !ok {
		return
	}

	recipe, err := c.service.Delete(ctx.Request.Context(), recipeID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrRecipeNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Recipe deleted successfully", gin.H{"recipe": recipe})
}
