package httpHandler

import (
	"net/http"
	"strings"

	"recipe-api/entities"
	"recipe-api/middleware"
	"recipe-api/repositories"
	"recipe-api/storage"
	"recipe-api/usecases"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	useCase *usecases.RecipeUseCase
	images  *storage.ImageStore
}

func NewRecipeHandler(useCase *usecases.RecipeUseCase, images *storage.ImageStore) *RecipeHandler {
	return &RecipeHandler{
		useCase: useCase,
		images:  images,
	}
}

// List handles GET /api/recipe/recipes/ with optional ?tags= and
// ?ingredients= comma-separated id filters.
func (h *RecipeHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	filter := repositories.RecipeFilter{
		TagIDs:        splitIDParam(c.Query("tags")),
		IngredientIDs: splitIDParam(c.Query("ingredients")),
	}

	recipes, err := h.useCase.List(user.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	for i := range recipes {
		h.decorate(&recipes[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  recipes,
		"count": len(recipes),
	})
}

// Create handles POST /api/recipe/recipes/
func (h *RecipeHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var in usecases.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	recipe, err := h.useCase.Create(user.ID, in)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	h.decorate(recipe)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// Get handles GET /api/recipe/recipes/:id/
func (h *RecipeHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipe, err := h.useCase.Get(user.ID, c.Param("id"))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	h.decorate(recipe)

	c.JSON(http.StatusOK, gin.H{"data": recipe})
}

// Update handles PUT and PATCH /api/recipe/recipes/:id/
func (h *RecipeHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	partial := c.Request.Method == http.MethodPatch

	var in usecases.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	recipe, err := h.useCase.Update(user.ID, c.Param("id"), in, partial)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	h.decorate(recipe)

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// Delete handles DELETE /api/recipe/recipes/:id/
func (h *RecipeHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.useCase.Delete(user.ID, c.Param("id")); err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// decorate fills the computed fields and keeps empty relations as [] in the
// JSON representation.
func (h *RecipeHandler) decorate(recipe *entities.Recipe) {
	recipe.ImageURL = h.images.URL(recipe.ImagePath)
	if recipe.Tags == nil {
		recipe.Tags = []entities.Tag{}
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []entities.Ingredient{}
	}
}

func splitIDParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
