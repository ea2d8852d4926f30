package controllers

import (
	"fmt"
	"net/http"

	"gin-pantry/constants"
	"gin-pantry/dto"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IShoppingListController interface {
	FindAll(ctx *gin.Context)
	Generate(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Toggle(ctx *gin.Context)
	Delete(ctx *gin.Context)
	ClearChecked(ctx *gin.Context)
	ClearAll(ctx *gin.Context)
	AddToPantry(ctx *gin.Context)
}

type ShoppingListController struct {
	service services.IShoppingListService
	logger  *zap.Logger
}

func NewShoppingListController(service services.IShoppingListService, logger *zap.Logger) IShoppingListController {
	return &ShoppingListController{service: service, logger: logger}
}

func (c *ShoppingListController) FindAll(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	if ctx.Query("grouped") == "true" {
		groups, err := c.service.FindGrouped(ctx.Request.Context(), userID)
		if err != nil {
			handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
			return
		}
		respond(ctx, http.StatusOK, "", gin.H{"groups": groups})
		return
	}

	items, err := c.service.FindAll(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"items": items})
}

func (c *ShoppingListController) Generate(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.GenerateShoppingListInput
	if !bindJSON(ctx, &input) {
		return
	}

	items, err := c.service.Generate(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Shopping list generated successfully", gin.H{"items": items})
}

func (c *ShoppingListController) Create(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	var input dto.CreateShoppingListItemInput
	if !bindJSON(ctx, &input) {
		return
	}

	item, err := c.service.Create(ctx.Request.Context(), userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusCreated, "Item added to shopping list successfully", gin.H{"item": item})
}

func (c *ShoppingListController) Update(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	itemID, ok := idParam(ctx)
	if !ok {
		return
	}
	var input dto.UpdateShoppingListItemInput
	if !bindJSON(ctx, &input) {
		return
	}

	item, err := c.service.Update(ctx.Request.Context(), itemID, userID, input)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Shopping list item updated successfully", gin.H{"item": item})
}

func (c *ShoppingListController) Toggle(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	itemID, ok := idParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.Toggle(ctx.Request.Context(), itemID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "", gin.H{"item": item})
}

func (c *ShoppingListController) Delete(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}
	itemID, ok := idParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.Delete(ctx.Request.Context(), itemID, userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Shopping list item deleted successfully", gin.H{"item": item})
}

func (c *ShoppingListController) ClearChecked(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	items, err := c.service.ClearChecked(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, fmt.Sprintf("%d checked items cleared from shopping list", len(items)), gin.H{"items": items})
}

func (c *ShoppingListController) ClearAll(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	items, err := c.service.ClearAll(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, "Shopping list cleared successfully", gin.H{"items": items})
}

func (c *ShoppingListController) AddToPantry(ctx *gin.Context) {
	userID, ok := userIDFrom(ctx)
	if !ok {
		return
	}

	items, err := c.service.AddCheckedToPantry(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, c.logger, err, constants.ErrShoppingItemNotFound)
		return
	}
	respond(ctx, http.StatusOK, fmt.Sprintf("%d checked items added to pantry", len(items)), gin.H{"items": items})
}
