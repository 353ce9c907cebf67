package httpHandler

import (
	"net/http"

	"recipe-api/usecases"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	useCase *usecases.AuthUseCase
}

func NewTokenHandler(useCase *usecases.AuthUseCase) *TokenHandler {
	return &TokenHandler{useCase: useCase}
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Issue handles POST /api/user/token/
func (h *TokenHandler) Issue(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	key, err := h.useCase.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": key})
}
