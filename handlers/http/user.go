package httpHandler

import (
	"errors"
	"net/http"

	"recipe-api/middleware"
	"recipe-api/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// Create handles POST /api/user/create/
func (h *UserHandler) Create(c *gin.Context) {
	var in usecases.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.useCase.Register(in)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    user,
	})
}

// Me handles GET /api/user/me/
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.useCase.GetProfile(user.ID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateMe handles PUT and PATCH /api/user/me/
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	partial := c.Request.Method == http.MethodPatch

	var in usecases.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.useCase.UpdateProfile(c.Request.Context(), user.ID, in, partial)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// writeUseCaseError maps the use case sentinels onto HTTP statuses.
func writeUseCaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrEmailTaken),
		errors.Is(err, usecases.ErrEmailRequired),
		errors.Is(err, usecases.ErrPasswordTooShort),
		errors.Is(err, usecases.ErrNameRequired),
		errors.Is(err, usecases.ErrDuplicateName),
		errors.Is(err, usecases.ErrTitleRequired),
		errors.Is(err, usecases.ErrNegativeValue),
		errors.Is(err, usecases.ErrUnknownAttr),
		errors.Is(err, usecases.ErrNotAnImage),
		errors.Is(err, usecases.ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
