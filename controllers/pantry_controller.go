package controllers

import (
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IPantryController interface {
	FindAll(ctx *gin.Context)
	Stats(ctx *gin.Context)
	ExpiringSoon(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type PantryController struct {
	service services.IPantryService
	logger  *zap.Logger
}

func NewPantryController(service services.IPantryService, logger *zap.Logger) IPantryController {
	return &PantryController{service: service, logger: logger}
}

func (c *PantryController) FindAll(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var filter dto.PantryFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	items, err := c.service.FindAll(ctx.Request.Context(), userID, filter)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"items": items})
}

func (c *PantryController) Stats(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	stats, err := c.service.Stats(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"stats": stats})
}

func (c *PantryController) ExpiringSoon(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	items, err := c.service.FindExpiring(ctx.Request.Context(), userID, queryInt(ctx, "days"))
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"items": items})
}

func (c *PantryController) Create(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.CreatePantryItemInput
	if !bindJSON(ctx, &input) {
		return
	}

	newItem, err := c.service.Create(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusCreated, "Pantry item added successfully", gin.H{"item": newItem})
}

func (c *PantryController) Update(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	itemID, ok := idParam(ctx)
	if !ok {
		return
	}
	var input dto.UpdatePantryItemInput
	if !bindJSON(ctx, &input) {
		return
	}

	updatedItem, err := c.service.Update(ctx.Request.Context(), itemID, userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Pantry item updated successfully", gin.H{"item": updatedItem})
}

func (c *PantryController) Delete(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	itemID, ok := idParam(ctx)
	if !ok {
		return
	}

	deletedItem, err := c.service.Delete(ctx.Request.Context(), itemID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrPantryItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Pantry item deleted successfully", gin.H{"item": deletedItem})
}
