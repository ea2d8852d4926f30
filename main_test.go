package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"gin-pantry/ai"
	"gin-pantry/infra"
	"gin-pantry/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type cannedModel struct {
	reply string
}

func (m cannedModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return m.reply, nil
}

func newTestApp(t *testing.T, assistant services.IRecipeAssistant) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := infra.SetupInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))
	tokenDB, err := infra.SetupInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrateTokens(tokenDB))

	cfg := &infra.Config{
		Env:             "test",
		SecretKey:       "test-secret",
		TokenTTL:        time.Hour,
		AIRatePerMinute: 60,
		AIRateBurst:     2,
	}
	return setupRouter(db, tokenDB, cfg, zap.NewNop(), assistant)
}

func call(t *testing.T, a *app, method, path, token string, body any) (int, gjson.Result) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w.Code, gjson.ParseBytes(w.Body.Bytes())
}

func signup(t *testing.T, a *app, email string) string {
	t.Helper()
	status, res := call(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": email, "password": "password123", "name": "Cook",
	})
	require.Equal(t, http.StatusCreated, status, res.Raw)
	return res.Get("data.token").String()
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t, nil)

	status, res := call(t, a, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, res.Get("success").Bool())

	token := signup(t, a, "cook@example.com")
	require.NotEmpty(t, token)

	status, res = call(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "COOK@example.com", "password": "password123", "name": "Again",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, res = call(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, a, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, res.Get("success").Bool())
	assert.Equal(t, "cook@example.com", res.Get("data.user.email").String())
	assert.False(t, res.Get("data.user.password").Exists())

	status, _ = call(t, a, http.MethodPost, "/api/auth/login", "", gin.H{"email": "cook@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, res = call(t, a, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, res.Get("data.preferences.default_servings").Int())

	status, _ = call(t, a, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, a, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPantryEndpoints(t *testing.T) {
	a := newTestApp(t, nil)
	token := signup(t, a, "cook@example.com")
	other := signup(t, a, "other@example.com")

	status, res := call(t, a, http.MethodPost, "/api/pantry", token, gin.H{"name": "Milk", "quantity": 1, "unit": "l", "category": "Dairy"})
	require.Equal(t, http.StatusCreated, status, res.Raw)
	id := res.Get("data.item.id").Int()

	status, _ = call(t, a, http.MethodPost, "/api/pantry", token, gin.H{"name": "Eggs", "expiration_date": "31/12/2026"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, a, http.MethodGet, "/api/pantry", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, res.Get("data.items").Array(), 1)

	status, res = call(t, a, http.MethodGet, "/api/pantry", other, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, res.Get("data.items").Array())

	status, res = call(t, a, http.MethodPut, "/api/pantry/99999", token, gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Pantry item not found", res.Get("message").String())

	status, _ = call(t, a, http.MethodDelete, "/api/pantry/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, a, http.MethodDelete, "/api/pantry/"+strconv.FormatInt(id, 10), other, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, res = call(t, a, http.MethodGet, "/api/pantry/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, res.Get("data.stats.total_items").Int())
}

func TestShoppingListFromMealPlan(t *testing.T) {
	a := newTestApp(t, nil)
	token := signup(t, a, "cook@example.com")

	status, res := call(t, a, http.MethodPost, "/api/recipes", token, gin.H{
		"name":        "Salsa",
		"ingredients": []gin.H{{"name": "tomato", "quantity": 3, "unit": "pcs"}},
	})
	require.Equal(t, http.StatusCreated, status, res.Raw)
	recipeID := res.Get("data.recipe.id").Int()

	status, res = call(t, a, http.MethodPost, "/api/meal-plans", token, gin.H{
		"recipe_id": recipeID, "meal_date": "2026-03-10", "meal_type": "lunch",
	})
	require.Equal(t, http.StatusCreated, status, res.Raw)

	status, _ = call(t, a, http.MethodPost, "/api/meal-plans", token, gin.H{
		"recipe_id": recipeID, "meal_date": "2026-03-10", "meal_type": "brunch",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, a, http.MethodGet, "/api/meal-plans/weekly", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, a, http.MethodGet, "/api/meal-plans/weekly?start_date=2026-03-09", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, res.Get("data.meal_plans").Array(), 1)

	status, _ = call(t, a, http.MethodPost, "/api/pantry", token, gin.H{"name": "Tomato", "quantity": 1, "unit": "pcs"})
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, a, http.MethodPost, "/api/shopping-list/generate", token, gin.H{"start_date": "2026-03-15", "end_date": "2026-03-09"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, a, http.MethodPost, "/api/shopping-list/generate", token, gin.H{"start_date": "2026-03-09", "end_date": "2026-03-15"})
	require.Equal(t, http.StatusOK, status, res.Raw)
	items := res.Get("data.items").Array()
	require.Len(t, items, 1)
	assert.Equal(t, "tomato", items[0].Get("ingredient_name").String())
	assert.Equal(t, 2.0, items[0].Get("quantity").Float())

	itemID := items[0].Get("id").Int()
	status, res = call(t, a, http.MethodPut, "/api/shopping-list/"+strconv.FormatInt(itemID, 10)+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, res.Get("data.item.is_checked").Bool())

	status, res = call(t, a, http.MethodPost, "/api/shopping-list/add-to-pantry", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1 checked items added to pantry", res.Get("message").String())

	status, res = call(t, a, http.MethodGet, "/api/pantry?search=tomato", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, res.Get("data.items").Array(), 2)
}

func TestRecipeGenerationEndpoints(t *testing.T) {
	disabled := newTestApp(t, nil)
	token := signup(t, disabled, "cook@example.com")
	status, _ := call(t, disabled, http.MethodPost, "/api/recipes/generate", token, gin.H{"ingredients": []string{"eggs"}})
	assert.Equal(t, http.StatusServiceUnavailable, status)

	model := cannedModel{reply: "```json\n" + `{"name":"Egg fried rice","ingredients":[{"name":"eggs","quantity":2,"unit":"pcs"},{"name":"soy sauce","quantity":1,"unit":"tbsp"}]}` + "\n```"}
	a := newTestApp(t, ai.NewRecipeAssistant(model))
	token = signup(t, a, "cook@example.com")

	status, _ = call(t, a, http.MethodPost, "/api/recipes/generate", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res := call(t, a, http.MethodPost, "/api/recipes/generate", token, gin.H{"ingredients": []string{"eggs", "rice"}})
	require.Equal(t, http.StatusOK, status, res.Raw)
	assert.Equal(t, "Egg fried rice", res.Get("data.recipe.name").String())
	assert.False(t, res.Get("data.recipe.ingredients.0.required").Bool())
	assert.True(t, res.Get("data.recipe.ingredients.1.required").Bool())

	status, _ = call(t, a, http.MethodPost, "/api/recipes/generate", token, gin.H{"ingredients": []string{"eggs"}})
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t, nil)

	status, res := call(t, a, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", res.Get("status").String())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pantry_http_requests_total")
}

func TestRecipeEndpoints_RejectInvalidNames(t *testing.T) {
	a := newTestApp(t, nil)
	token := signup(t, a, "cook@example.com")

	status, _ := call(t, a, http.MethodPost, "/api/recipes", token, gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res := call(t, a, http.MethodPost, "/api/recipes", token, gin.H{
		"name":        "Salsa",
		"ingredients": []gin.H{{"name": "tomato", "quantity": 3, "unit": "pcs"}},
	})
	require.Equal(t, http.StatusCreated, status, res.Raw)
	path := "/api/recipes/" + strconv.FormatInt(res.Get("data.recipe.id").Int(), 10)

	status, _ = call(t, a, http.MethodPut, path, token, gin.H{
		"ingredients": []gin.H{{"quantity": -5, "unit": "pcs"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, a, http.MethodPut, path, token, gin.H{
		"ingredients": []gin.H{{"name": "  ", "quantity": 1, "unit": "pcs"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = call(t, a, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, status)
	ingredients := res.Get("data.recipe.ingredients").Array()
	require.Len(t, ingredients, 1)
	assert.Equal(t, "tomato", ingredients[0].Get("name").String())
	assert.Equal(t, 3.0, ingredients[0].Get("quantity").Float())
}
