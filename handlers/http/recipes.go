package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-server/usecases"
)

type RecipeHandler struct {
	useCase *usecases.RecipeUseCase
}

func NewRecipeHandler(useCase *usecases.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{
		useCase: useCase,
	}
}

type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
}

// GetRecipes handles GET /recipes
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recipes, err := h.useCase.ListForOwner(userID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// CreateRecipe handles POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID := CurrentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid input"})
		return
	}

	recipe, err := h.useCase.Create(userID, req.Title, req.Instructions, req.MinutesToComplete)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}
