package httpHandler

import (
	"net/http"

	"recipe-api/middleware"

	"github.com/gin-gonic/gin"
)

// UploadImage handles POST /api/recipe/recipes/:id/upload-image/ with a
// multipart "image" part.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing multipart field: image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}
	defer file.Close()

	recipe, err := h.useCase.AttachImage(user.ID, c.Param("id"), file)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	h.decorate(recipe)

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"data":    recipe,
	})
}
