package httpHandler

import (
	"net/http"

	"recipe-api/middleware"
	"recipe-api/usecases"

	"github.com/gin-gonic/gin"
)

type attrRequest struct {
	Name string `json:"name" binding:"required"`
}

type TagHandler struct {
	useCase *usecases.TagUseCase
}

func NewTagHandler(useCase *usecases.TagUseCase) *TagHandler {
	return &TagHandler{useCase: useCase}
}

// List handles GET /api/recipe/tags/
func (h *TagHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tags, err := h.useCase.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  tags,
		"count": len(tags),
	})
}

// Create handles POST /api/recipe/tags/
func (h *TagHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req attrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	tag, err := h.useCase.Create(user.ID, req.Name)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tag created successfully",
		"data":    tag,
	})
}

type IngredientHandler struct {
	useCase *usecases.IngredientUseCase
}

func NewIngredientHandler(useCase *usecases.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{useCase: useCase}
}

// List handles GET /api/recipe/ingredients/
func (h *IngredientHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	ingredients, err := h.useCase.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  ingredients,
		"count": len(ingredients),
	})
}

// Create handles POST /api/recipe/ingredients/
func (h *IngredientHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req attrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ingredient, err := h.useCase.Create(user.ID, req.Name)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ingredient created successfully",
		"data":    ingredient,
	})
}
