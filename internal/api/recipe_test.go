package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

func createRecipe(t *testing.T, ts *testServer, token string, body gin.H) model.Recipe {
	t.Helper()

	w := ts.doJSON(t, http.MethodPost, "/api/v1/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	return recipe
}

func TestCreateRecipeParsesFormInput(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")

	recipe := createRecipe(t, ts, pair.AccessToken, gin.H{
		"name":         "  Lemon Chicken  ",
		"category":     "Chicken",
		"ingredients":  "chicken, lemon\ngarlic,  ,thyme",
		"instructions": "Roast it.",
		"prep_hours":   1,
		"prep_minutes": 15,
		"cook_hours":   0,
		"cook_minutes": 45,
	})

	assert.Equal(t, "Lemon Chicken", recipe.Name)
	assert.Equal(t, model.CommaSeparatedList{"chicken", "lemon", "garlic", "thyme"}, recipe.Ingredients)
	assert.Equal(t, 75, recipe.PrepTime)
	assert.Equal(t, 45, recipe.CookTime)
	// No signature supplied, so the default applies.
	assert.Equal(t, model.DefaultSignature, recipe.Signature)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")

	recipe := createRecipe(t, ts, pair.AccessToken, gin.H{
		"name":     "Mystery Dish",
		"category": "Street Food",
	})
	assert.Equal(t, model.CategoryOther, recipe.Category)
}

func TestListRecipesFilters(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	createRecipe(t, ts, token, gin.H{"name": "Chicken Soup", "category": "Chicken", "signature": "Mom"})
	createRecipe(t, ts, token, gin.H{"name": "Beef Stew", "category": "Beef", "is_favorite": true})
	createRecipe(t, ts, token, gin.H{"name": "Chicken Curry", "category": "Chicken"})

	list := func(query string) []model.Recipe {
		w := ts.doJSON(t, http.MethodGet, "/api/v1/recipes"+query, token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Recipes []model.Recipe `json:"recipes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Recipes
	}

	all := list("")
	require.Len(t, all, 3)
	// Insertion order is preserved.
	assert.Equal(t, "Chicken Soup", all[0].Name)
	assert.Equal(t, "Chicken Curry", all[2].Name)

	assert.Len(t, list("?category=Chicken"), 2)
	assert.Len(t, list("?q=stew"), 1)
	assert.Len(t, list("?favorites=true"), 1)
	assert.Len(t, list("?signature=Mom"), 1)
	assert.Len(t, list("?category=Chicken&q=curry"), 1)
	// "All" means no filter.
	assert.Len(t, list("?category=All"), 3)
}

func TestPatchRecipeLeavesOmittedFields(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	recipe := createRecipe(t, ts, token, gin.H{
		"name":        "Chicken Soup",
		"category":    "Chicken",
		"signature":   "Mom",
		"ingredients": "chicken, stock, noodles",
	})

	w := ts.doJSON(t, http.MethodPatch, "/api/v1/recipes/"+recipe.ID.String(), token, gin.H{
		"is_favorite": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.doJSON(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.IsFavorite)
	assert.Equal(t, model.CommaSeparatedList{"chicken", "stock", "noodles"}, got.Ingredients)
	assert.Equal(t, "Mom", got.Signature)
	assert.Equal(t, "Chicken Soup", got.Name)
}

func TestEditRecipeBlankFieldsFallBack(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	recipe := createRecipe(t, ts, token, gin.H{
		"name":      "Chicken Soup",
		"category":  "Chicken",
		"signature": "Mom",
	})

	// Blank name keeps the original; blank signature resets to default.
	w := ts.doJSON(t, http.MethodPut, "/api/v1/recipes/"+recipe.ID.String(), token, gin.H{
		"name":        "",
		"category":    "Chicken",
		"signature":   "",
		"ingredients": "chicken, rice",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Chicken Soup", got.Name)
	assert.Equal(t, model.DefaultSignature, got.Signature)
	assert.Equal(t, model.CommaSeparatedList{"chicken", "rice"}, got.Ingredients)
}

func TestDeleteRecipeIsIdempotent(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	recipe := createRecipe(t, ts, token, gin.H{"name": "Chicken Soup"})

	w := ts.doJSON(t, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again still succeeds.
	w = ts.doJSON(t, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecipesAreScopedToUser(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.registerAndLogin(t, "alice@example.com", "password123")
	bob := ts.registerAndLogin(t, "bob@example.com", "password123")

	recipe := createRecipe(t, ts, alice.AccessToken, gin.H{"name": "Alice's Soup"})

	w := ts.doJSON(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), bob.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/v1/recipes", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Recipes []model.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
}

func TestShoppingListAggregation(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	createRecipe(t, ts, token, gin.H{"name": "Pancakes", "ingredients": "egg, flour, milk"})
	createRecipe(t, ts, token, gin.H{"name": "Omelette", "ingredients": "egg, cheese"})
	createRecipe(t, ts, token, gin.H{"name": "Toast", "ingredients": "bread, butter"})

	w := ts.doJSON(t, http.MethodPost, "/api/v1/recipes/shopping-list", token, gin.H{
		"names": []string{"Pancakes", "Omelette"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"cheese", "egg", "flour", "milk"}, resp.Items)
}

func TestShareRecipe(t *testing.T) {
	ts := setupTestServer(t)
	pair := ts.registerAndLogin(t, "cook@example.com", "password123")
	token := pair.AccessToken

	recipe := createRecipe(t, ts, token, gin.H{
		"name":        "Chicken Soup",
		"category":    "Chicken",
		"ingredients": "chicken, stock",
	})

	w := ts.doJSON(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String()+"/share?to=friend@example.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
		Mailto  string `json:"mailto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Recipe: Chicken Soup", resp.Subject)
	assert.Contains(t, resp.Body, "- chicken")
	assert.Contains(t, resp.Mailto, "mailto:friend@example.com?")
}
