// Package shopping nets planned-meal ingredient requirements against pantry stock.
package shopping

import (
	"sort"
	"strings"

	"gin-pantry/dto"
	"gin-pantry/models"
)

// Requirement is the total quantity of one ingredient, in one unit, needed by the
// recipes scheduled in a planning window.
type Requirement struct {
	IngredientName string
	Unit           string
	TotalQuantity  float64
}

// Shortfall is the part of a requirement that the pantry does not cover.
type Shortfall struct {
	IngredientName string
	Unit           string
	Quantity       float64
}

type stockKey struct {
	name string
	unit string
}

func keyOf(name, unit string) stockKey {
	return stockKey{name: strings.ToLower(name), unit: unit}
}

// ComputeShortfalls returns max(0, required - stock) for each requirement, keeping
// only positive values, ordered by name then unit.
//
// Stock is matched on lower-cased name and exact unit. The same ingredient held in
// a different unit counts as zero stock; units are never converted.
func ComputeShortfalls(required []Requirement, pantry []models.PantryItem) []Shortfall {
	stock := make(map[stockKey]float64, len(pantry))
	for _, item := range pantry {
		stock[keyOf(item.Name, item.Unit)] += item.Quantity
	}

	shortfalls := make([]Shortfall, 0, len(required))
	for _, req := range required {
		needed := req.TotalQuantity - stock[keyOf(req.IngredientName, req.Unit)]
		if needed <= 0 {
			continue
		}
		shortfalls = append(shortfalls, Shortfall{
			IngredientName: req.IngredientName,
			Unit:           req.Unit,
			Quantity:       needed,
		})
	}

	sort.Slice(shortfalls, func(i, j int) bool {
		if shortfalls[i].IngredientName != shortfalls[j].IngredientName {
			return shortfalls[i].IngredientName < shortfalls[j].IngredientName
		}
		return shortfalls[i].Unit < shortfalls[j].Unit
	})
	return shortfalls
}

// GroupByCategory buckets items by category, preserving the input order inside each bucket
// and ordering buckets by category name.
func GroupByCategory(items []models.ShoppingListItem) []dto.ShoppingListGroup {
	index := map[string]int{}
	groups := []dto.ShoppingListGroup{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, dto.ShoppingListGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}
