package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kmwhite/dinner-recipes/backend/internal/core"
	"github.com/kmwhite/dinner-recipes/backend/internal/model"
	"github.com/kmwhite/dinner-recipes/backend/internal/service"
)

// CreateRecipeRequest mirrors the add-recipe form: ingredients arrive as
// free text (comma and/or newline separated) and times as hours+minutes.
type CreateRecipeRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Signature    string `json:"signature"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepHours    int    `json:"prep_hours"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookHours    int    `json:"cook_hours"`
	CookMinutes  int    `json:"cook_minutes"`
	IsFavorite   bool   `json:"is_favorite"`
}

// EditRecipeRequest is the edit form: every field is submitted, and blank
// name/signature fall back per the merge rules.
type EditRecipeRequest struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Signature    string `json:"signature"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	PrepHours    int    `json:"prep_hours"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookHours    int    `json:"cook_hours"`
	CookMinutes  int    `json:"cook_minutes"`
	IsFavorite   bool   `json:"is_favorite"`
}

// PatchRecipeRequest is a partial update: only fields present in the JSON
// body are written. Omitted ingredients are left untouched server-side.
type PatchRecipeRequest struct {
	Name         *string   `json:"name"`
	Category     *string   `json:"category"`
	Signature    *string   `json:"signature"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	PrepTime     *int      `json:"prep_time"`
	CookTime     *int      `json:"cook_time"`
	IsFavorite   *bool     `json:"is_favorite"`
}

type ShoppingListRequest struct {
	Names []string `json:"names" binding:"required"`
}

type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes attaches the recipe routes to an already-authenticated
// route group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.POST("/shopping-list", h.ShoppingList)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.EditRecipe)
		recipes.PATCH("/:id", h.PatchRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.GET("/:id/share", h.ShareRecipe)
	}
}

// ListRecipes returns the user's recipes, filtered in memory. Filters
// compose with AND; "All" or an absent parameter means no filter, and the
// stored order is preserved.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	filter := core.Filter{
		Search:        c.Query("q"),
		Category:      c.Query("category"),
		Signature:     c.Query("signature"),
		FavoritesOnly: c.Query("favorites") == "true",
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": core.FilterRecipes(recipes, filter),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := model.Recipe{
		Name:         strings.TrimSpace(req.Name),
		Category:     req.Category,
		Signature:    req.Signature,
		Ingredients:  model.CommaSeparatedList(core.ParseIngredients(req.Ingredients)),
		Instructions: req.Instructions,
		PrepTime:     core.ToMinutes(req.PrepHours, req.PrepMinutes),
		CookTime:     core.ToMinutes(req.CookHours, req.CookMinutes),
		IsFavorite:   req.IsFavorite,
		UserID:       userID,
	}

	if err := h.recipeService.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// EditRecipe applies a full edit form over the stored recipe. A blank name
// never overwrites the saved one and a blank signature becomes "Unknown".
func (h *RecipeHandler) EditRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req EditRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	original, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	merged := core.MergeEdit(*original, core.RecipeEdit{
		Name:         req.Name,
		Category:     req.Category,
		Signature:    req.Signature,
		Ingredients:  core.ParseIngredients(req.Ingredients),
		Instructions: req.Instructions,
		PrepTime:     core.ToMinutes(req.PrepHours, req.PrepMinutes),
		CookTime:     core.ToMinutes(req.CookHours, req.CookMinutes),
		IsFavorite:   req.IsFavorite,
	})

	ingredients := []string(merged.Ingredients)
	update := service.RecipeUpdate{
		Name:         &merged.Name,
		Category:     &merged.Category,
		Signature:    &merged.Signature,
		Ingredients:  &ingredients,
		Instructions: &merged.Instructions,
		PrepTime:     &merged.PrepTime,
		CookTime:     &merged.CookTime,
		IsFavorite:   &merged.IsFavorite,
	}
	if err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, id, update); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, merged)
}

// PatchRecipe writes only the fields present in the request body.
func (h *RecipeHandler) PatchRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req PatchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := service.RecipeUpdate{
		Name:         req.Name,
		Category:     req.Category,
		Signature:    req.Signature,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		IsFavorite:   req.IsFavorite,
	}
	if err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, id, update); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "recipe updated",
		"id":      id,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "recipe deleted",
		"id":      id,
	})
}

// ShareRecipe renders a recipe as email subject/body plus a mailto link.
func (h *RecipeHandler) ShareRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	subject, body := core.BuildShareText(*recipe)
	response := gin.H{
		"subject": subject,
		"body":    body,
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		response["mailto"] = core.MailtoLink(to, subject, body)
	}

	c.JSON(http.StatusOK, response)
}

// ShoppingList aggregates the ingredients of the named recipes into a
// sorted, deduplicated list.
func (h *RecipeHandler) ShoppingList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": core.BuildShoppingList(recipes, req.Names),
	})
}
